package announcements

import (
	"time"

	"github.com/dmitrijs2005/collabboard/internal/accounts"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// sampleAnnouncements is written to an empty store. Authors refer to the
// sample accounts.
func sampleAnnouncements() []Announcement {
	return []Announcement{
		{
			ID:               "ann1",
			Title:            "Лекція з штучного інтелекту для студентів",
			Category:         CategoryLecture,
			Description:      "Запрошуємо експертів з галузі штучного інтелекту для проведення лекції для студентів комп'ютерних наук. Розглянемо сучасні тенденції в машинному навчанні та практичні застосування AI.",
			AuthorID:         "univ1",
			OrganizationKind: accounts.KindUniversity,
			EventDate:        "2024-12-15",
			EventTime:        "14:00",
			Duration:         "2hours",
			Location:         "Аудиторія 101, головний корпус",
			Format:           FormatOffline,
			TargetAudience:   `Студенти 3-4 курсів спеціальності "Комп'ютерні науки"`,
			Requirements:     "Досвід роботи з AI/ML мінімум 3 роки, публікації в галузі",
			Compensation:     "Гонорар 5000 грн, сертифікат лектора",
			ContactEmail:     "ai.lectures@knu.ua",
			ContactPhone:     "+380442393111",
			Urgent:           true,
			CreatedAt:        at("2024-11-10T10:00:00Z"),
			UpdatedAt:        at("2024-11-10T10:00:00Z"),
			IsActive:         true,
			ViewCount:        45,
			Status:           StatusActive,
		},
		{
			ID:               "ann2",
			Title:            "Пошук університету для проведення воркшопу з кібербезпеки",
			Category:         CategoryWorkshop,
			Description:      "Наша компанія шукає партнера-університет для проведення практичного воркшопу з кібербезпеки. Маємо досвідчених спеціалістів та готові поділитися знаннями зі студентами.",
			AuthorID:         "comp1",
			OrganizationKind: accounts.KindCompany,
			EventDate:        "2024-12-20",
			EventTime:        "10:00",
			Duration:         "halfday",
			Location:         "Буде узгоджено з університетом",
			Format:           FormatHybrid,
			TargetAudience:   "Студенти IT-спеціальностей, викладачі",
			Requirements:     "Наявність комп'ютерного класу, проектор, інтернет",
			Compensation:     "Безкоштовно, сертифікати учасникам",
			ContactEmail:     "workshops@techukraine.com",
			ContactPhone:     "+380443334455",
			CreatedAt:        at("2024-11-12T09:30:00Z"),
			UpdatedAt:        at("2024-11-12T09:30:00Z"),
			IsActive:         true,
			ViewCount:        32,
			Status:           StatusActive,
		},
		{
			ID:               "ann3",
			Title:            "Семінар з інноваційних технологій в освіті",
			Category:         CategorySeminar,
			Description:      "КПІ організовує семінар для представників IT-компаній щодо впровадження інноваційних технологій в освітній процес. Обговоримо можливості співпраці та спільні проекти.",
			AuthorID:         "univ2",
			OrganizationKind: accounts.KindUniversity,
			EventDate:        "2024-12-10",
			EventTime:        "15:30",
			Duration:         "3hours",
			Location:         "Конференц-зал, корпус №7",
			Format:           FormatOffline,
			TargetAudience:   "Представники IT-компаній, стартапів",
			Requirements:     "Досвід роботи в IT-галузі, інтерес до освітніх технологій",
			Compensation:     "Нетворкінг, можливості для партнерства",
			ContactEmail:     "innovation@kpi.ua",
			ContactPhone:     "+380442048888",
			CreatedAt:        at("2024-11-08T14:15:00Z"),
			UpdatedAt:        at("2024-11-08T14:15:00Z"),
			IsActive:         true,
			ViewCount:        28,
			Status:           StatusActive,
		},
	}
}
