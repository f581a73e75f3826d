// Package accounts owns organization accounts (universities and companies)
// and the single persisted session of the running application.
package accounts

import "time"

// Kind is the organization type. It is fixed at registration.
type Kind string

const (
	KindUniversity Kind = "university"
	KindCompany    Kind = "company"
)

func (k Kind) Valid() bool {
	return k == KindUniversity || k == KindCompany
}

// Account is the sanitized view of an organization account. It never carries
// the stored credential.
type Account struct {
	ID             string     `json:"id"`
	Kind           Kind       `json:"type"`
	Email          string     `json:"email"`
	UniversityName string     `json:"universityName,omitempty"`
	CompanyName    string     `json:"companyName,omitempty"`
	Industry       string     `json:"industry,omitempty"`
	ContactPerson  string     `json:"contactPerson"`
	Phone          string     `json:"phone"`
	Address        string     `json:"address"`
	Website        string     `json:"website"`
	Description    string     `json:"description"`
	IsActive       bool       `json:"isActive"`
	EmailVerified  bool       `json:"emailVerified"`
	LastLogin      *time.Time `json:"lastLogin"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// Name returns the kind-specific organization name.
func (a Account) Name() string {
	if a.Kind == KindUniversity {
		return a.UniversityName
	}
	return a.CompanyName
}

func (a Account) clone() Account {
	a.LastLogin = cloneTime(a.LastLogin)
	a.UpdatedAt = cloneTime(a.UpdatedAt)
	return a
}

// record is the persisted form: the account plus its derived credential.
type record struct {
	Account
	Password string `json:"password"`
}

func (r record) sanitize() Account {
	return r.Account.clone()
}

// Draft is the registration input as entered by the user.
type Draft struct {
	Kind            Kind
	Email           string
	Password        string
	ConfirmPassword string
	UniversityName  string
	CompanyName     string
	Industry        string
	ContactPerson   string
	Phone           string
	Address         string
	Website         string
	Description     string
}

// Patch is a partial profile update. Nil fields are left untouched; non-nil
// fields overwrite the stored value, including with an empty string.
type Patch struct {
	Email          *string
	UniversityName *string
	CompanyName    *string
	Industry       *string
	ContactPerson  *string
	Phone          *string
	Address        *string
	Website        *string
	Description    *string
	IsActive       *bool
}

func (p Patch) apply(a *Account) {
	setString(&a.Email, p.Email)
	setString(&a.UniversityName, p.UniversityName)
	setString(&a.CompanyName, p.CompanyName)
	setString(&a.Industry, p.Industry)
	setString(&a.ContactPerson, p.ContactPerson)
	setString(&a.Phone, p.Phone)
	setString(&a.Address, p.Address)
	setString(&a.Website, p.Website)
	setString(&a.Description, p.Description)
	if p.IsActive != nil {
		a.IsActive = *p.IsActive
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
