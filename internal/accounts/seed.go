package accounts

import (
	"time"

	"github.com/dmitrijs2005/collabboard/internal/cryptox"
)

// SamplePassword is the password of every seeded account.
const SamplePassword = "password123"

var seedTime = time.Date(2024, time.November, 1, 9, 0, 0, 0, time.UTC)

// sampleRecords builds the accounts written to an empty store. The output is
// fully determined by the secret.
func sampleRecords(secret string) []record {
	credential := cryptox.DeriveCredential(SamplePassword, secret)

	return []record{
		{
			Account: Account{
				ID:             "univ1",
				Kind:           KindUniversity,
				UniversityName: "Київський національний університет імені Тараса Шевченка",
				Email:          "info@knu.ua",
				Phone:          "+380442393111",
				Address:        "вул. Володимирська, 60, Київ, 01033",
				Website:        "https://knu.ua",
				Description:    "Провідний класичний університет України, заснований у 1834 році. Готуємо фахівців за широким спектром спеціальностей.",
				ContactPerson:  "Іванов Іван Іванович",
				IsActive:       true,
				EmailVerified:  true,
				CreatedAt:      seedTime,
			},
			Password: credential,
		},
		{
			Account: Account{
				ID:            "comp1",
				Kind:          KindCompany,
				CompanyName:   "TechUkraine",
				Email:         "hr@techukraine.com",
				Phone:         "+380443334455",
				Address:       "вул. Хрещатик, 22, Київ, 01001",
				Website:       "https://techukraine.com",
				Industry:      "it",
				Description:   "Провідна IT-компанія України, що спеціалізується на розробці програмного забезпечення та цифрових рішень.",
				ContactPerson: "Петренко Марія Олександрівна",
				IsActive:      true,
				EmailVerified: true,
				CreatedAt:     seedTime,
			},
			Password: credential,
		},
		{
			Account: Account{
				ID:             "univ2",
				Kind:           KindUniversity,
				UniversityName: `Національний технічний університет України "КПІ"`,
				Email:          "info@kpi.ua",
				Phone:          "+380442048888",
				Address:        "просп. Перемоги, 37, Київ, 03056",
				Website:        "https://kpi.ua",
				Description:    "Провідний технічний університет України, готує інженерів та IT-фахівців світового рівня.",
				ContactPerson:  "Сидоренко Олег Петрович",
				IsActive:       true,
				EmailVerified:  true,
				CreatedAt:      seedTime,
			},
			Password: credential,
		},
	}
}
