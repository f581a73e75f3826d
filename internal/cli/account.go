package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/collabboard/internal/accounts"
	"github.com/dmitrijs2005/collabboard/internal/common"
)

// getSimpleText and getPassword are indirections swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) ask(prompt string) (string, error) {
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) askPassword(prompt string) ([]byte, error) {
	return getPassword(a.reader, a.fd, prompt, a.out)
}

type textField struct {
	prompt string
	dst    *string
}

func (a *App) askAll(fields []textField) error {
	for _, f := range fields {
		v, err := a.ask(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

// Register collects a registration form and submits it. All violated rules
// are reported at once by the service.
func (a *App) Register(ctx context.Context) error {
	kind, err := a.ask("Organization type (university/company)")
	if err != nil {
		return err
	}

	var d accounts.Draft
	d.Kind = accounts.Kind(strings.ToLower(kind))
	if d.Email, err = a.ask("Email"); err != nil {
		return err
	}

	password, err := a.askPassword("Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := a.askPassword("Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	d.Password, d.ConfirmPassword = string(password), string(confirm)

	switch d.Kind {
	case accounts.KindUniversity:
		if d.UniversityName, err = a.ask("University name"); err != nil {
			return err
		}
	case accounts.KindCompany:
		if d.CompanyName, err = a.ask("Company name"); err != nil {
			return err
		}
		if d.Industry, err = a.ask("Industry"); err != nil {
			return err
		}
	}

	err = a.askAll([]textField{
		{"Contact person", &d.ContactPerson},
		{"Phone (optional)", &d.Phone},
		{"Address (optional)", &d.Address},
		{"Website (optional)", &d.Website},
		{"Description (optional)", &d.Description},
	})
	if err != nil {
		return err
	}

	report(a, a.svc.Register(ctx, d))
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := a.ask("Email")
	if err != nil {
		return err
	}
	password, err := a.askPassword("Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	remember, err := GetYesNo(a.reader, "Remember me?", a.out)
	if err != nil {
		return err
	}

	report(a, a.svc.Login(ctx, email, string(password), remember))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	report(a, a.svc.Logout(ctx))
	return nil
}

// WhoAmI prints the session account and its announcement counters.
func (a *App) WhoAmI(ctx context.Context) error {
	res := a.svc.Session()
	if !report(a, res) {
		return nil
	}
	acc := res.Data
	a.println(renderAccount(acc))
	st := a.svc.MyStatistics()
	a.println(fmt.Sprintf("Announcements: %d total, %d active", st.Total, st.Active))
	return nil
}

type optionalField struct {
	prompt  string
	current string
	dst     **string
}

// Profile edits the session account. Empty answers keep the current value.
func (a *App) Profile(ctx context.Context) error {
	res := a.svc.Session()
	if !report(a, res) {
		return nil
	}
	acc := res.Data

	var p accounts.Patch
	fields := []optionalField{{"Email", acc.Email, &p.Email}}
	if acc.Kind == accounts.KindUniversity {
		fields = append(fields, optionalField{"University name", acc.UniversityName, &p.UniversityName})
	} else {
		fields = append(fields,
			optionalField{"Company name", acc.CompanyName, &p.CompanyName},
			optionalField{"Industry", acc.Industry, &p.Industry},
		)
	}
	fields = append(fields,
		optionalField{"Contact person", acc.ContactPerson, &p.ContactPerson},
		optionalField{"Phone", acc.Phone, &p.Phone},
		optionalField{"Address", acc.Address, &p.Address},
		optionalField{"Website", acc.Website, &p.Website},
		optionalField{"Description", acc.Description, &p.Description},
	)

	if err := a.askOptional(fields); err != nil {
		return err
	}
	report(a, a.svc.UpdateProfile(ctx, p))
	return nil
}

func (a *App) askOptional(fields []optionalField) error {
	for _, f := range fields {
		v, err := GetOptionalText(a.reader, f.prompt, f.current, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

func (a *App) Passwd(ctx context.Context) error {
	if !report(a, a.svc.Session()) {
		return nil
	}
	current, err := a.askPassword("Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)
	next, err := a.askPassword("New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	report(a, a.svc.ChangePassword(ctx, string(current), string(next)))
	return nil
}
