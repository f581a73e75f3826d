package i18n

// Result message codes. Validation codes come from the accounts package and
// share the catalog.
const (
	MsgRegistered          = "account.registered"
	MsgLoggedIn            = "session.logged_in"
	MsgLoggedOut           = "session.logged_out"
	MsgSessionRequired     = "session.required"
	MsgDuplicateEmail      = "account.duplicate_email"
	MsgEmailNotFound       = "account.email_not_found"
	MsgAccountNotFound     = "account.not_found"
	MsgDeactivated         = "account.deactivated"
	MsgBadPassword         = "account.bad_password"
	MsgProfileUpdated      = "profile.updated"
	MsgPasswordChanged     = "password.changed"
	MsgCurrentPasswordBad  = "password.current_bad"
	MsgNewPasswordTooShort = "password.new_too_short"

	MsgAnnouncementCreated  = "announcement.created"
	MsgAnnouncementUpdated  = "announcement.updated"
	MsgAnnouncementDeleted  = "announcement.deleted"
	MsgAnnouncementNotFound = "announcement.not_found"

	MsgInternal = "error.internal"
)

var uk = map[string]string{
	"required.email":           `Поле "Email" є обов'язковим`,
	"required.password":        `Поле "Пароль" є обов'язковим`,
	"required.confirmPassword": `Поле "Підтвердження пароля" є обов'язковим`,
	"required.type":            `Поле "Тип організації" є обов'язковим`,
	"required.universityName":  "Назва університету є обов'язковою",
	"required.companyName":     "Назва компанії є обов'язковою",
	"required.industry":        "Галузь діяльності є обов'язковою",
	"required.contactPerson":   "Контактна особа є обов'язковою",
	"type.invalid":             "Невідомий тип організації",
	"email.invalid":            "Невірний формат email",
	"password.too_short":       "Пароль повинен містити мінімум 6 символів",
	"password.mismatch":        "Паролі не співпадають",
	"phone.invalid":            "Невірний формат телефону",
	"universityName.blank":     "Назва університету не може бути пустою",
	"companyName.blank":        "Назва компанії не може бути пустою",
	"name.wrong_type":          "Ця назва не відповідає типу організації",

	MsgRegistered:          "Реєстрація успішна! Тепер ви можете увійти в систему.",
	MsgLoggedIn:            "Успішний вхід в систему!",
	MsgLoggedOut:           "Ви успішно вийшли з системи",
	MsgSessionRequired:     "Спочатку увійдіть в систему",
	MsgDuplicateEmail:      "Користувач з таким email вже існує",
	MsgEmailNotFound:       "Користувача з таким email не знайдено",
	MsgAccountNotFound:     "Користувача не знайдено",
	MsgDeactivated:         "Акаунт деактивовано. Зверніться до адміністратора.",
	MsgBadPassword:         "Невірний пароль",
	MsgProfileUpdated:      "Профіль успішно оновлено",
	MsgPasswordChanged:     "Пароль успішно змінено",
	MsgCurrentPasswordBad:  "Поточний пароль невірний",
	MsgNewPasswordTooShort: "Новий пароль повинен містити мінімум 6 символів",

	MsgAnnouncementCreated:  "Оголошення успішно створено",
	MsgAnnouncementUpdated:  "Оголошення успішно оновлено",
	MsgAnnouncementDeleted:  "Оголошення успішно видалено",
	MsgAnnouncementNotFound: "Оголошення не знайдено",

	MsgInternal: "Сталася помилка. Спробуйте ще раз.",
}

var en = map[string]string{
	"required.email":           `Field "Email" is required`,
	"required.password":        `Field "Password" is required`,
	"required.confirmPassword": `Field "Confirm password" is required`,
	"required.type":            `Field "Organization type" is required`,
	"required.universityName":  "University name is required",
	"required.companyName":     "Company name is required",
	"required.industry":        "Industry is required",
	"required.contactPerson":   "Contact person is required",
	"type.invalid":             "Unknown organization type",
	"email.invalid":            "Invalid email format",
	"password.too_short":       "Password must be at least 6 characters long",
	"password.mismatch":        "Passwords do not match",
	"phone.invalid":            "Invalid phone format",
	"universityName.blank":     "University name cannot be empty",
	"companyName.blank":        "Company name cannot be empty",
	"name.wrong_type":          "This name does not match the organization type",

	MsgRegistered:          "Registration successful! You can now log in.",
	MsgLoggedIn:            "Logged in successfully!",
	MsgLoggedOut:           "You have logged out",
	MsgSessionRequired:     "Please log in first",
	MsgDuplicateEmail:      "An account with this email already exists",
	MsgEmailNotFound:       "No account with this email",
	MsgAccountNotFound:     "Account not found",
	MsgDeactivated:         "Account is deactivated. Contact the administrator.",
	MsgBadPassword:         "Wrong password",
	MsgProfileUpdated:      "Profile updated",
	MsgPasswordChanged:     "Password changed",
	MsgCurrentPasswordBad:  "Current password is wrong",
	MsgNewPasswordTooShort: "New password must be at least 6 characters long",

	MsgAnnouncementCreated:  "Announcement created",
	MsgAnnouncementUpdated:  "Announcement updated",
	MsgAnnouncementDeleted:  "Announcement deleted",
	MsgAnnouncementNotFound: "Announcement not found",

	MsgInternal: "Something went wrong. Please try again.",
}
