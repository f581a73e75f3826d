package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/collabboard/internal/announcements"
)

const dateLayout = "2006-01-02"

// parseDate reads a calendar date as midnight UTC.
func parseDate(s string) (*time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("date must look like %s", dateLayout)
	}
	return &t, nil
}

func parseCategory(s string) announcements.Category {
	c := announcements.Category(strings.ToLower(s))
	if !c.Valid() {
		return announcements.CategoryOther
	}
	return c
}

func parseFormat(s string) announcements.Format {
	f := announcements.Format(strings.ToLower(s))
	if !f.Valid() {
		return announcements.FormatOffline
	}
	return f
}

func joinNames[T ~string](vs []T) string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return strings.Join(out, "/")
}

// Post collects a new announcement for the session account.
func (a *App) Post(ctx context.Context) error {
	session := a.svc.Session()
	if !report(a, session) {
		return nil
	}

	var (
		d   announcements.Draft
		err error
	)
	if d.Title, err = a.ask("Title"); err != nil {
		return err
	}
	category, err := a.ask("Category (" + joinNames(announcements.Categories) + ")")
	if err != nil {
		return err
	}
	d.Category = parseCategory(category)
	if d.Description, err = GetMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}

	err = a.askAll([]textField{
		{"Event date (YYYY-MM-DD)", &d.EventDate},
		{"Event time (HH:MM)", &d.EventTime},
		{"Duration", &d.Duration},
		{"Location", &d.Location},
	})
	if err != nil {
		return err
	}

	format, err := a.ask("Format (" + joinNames(announcements.Formats) + ")")
	if err != nil {
		return err
	}
	d.Format = parseFormat(format)

	err = a.askAll([]textField{
		{"Target audience", &d.TargetAudience},
		{"Requirements", &d.Requirements},
		{"Compensation", &d.Compensation},
	})
	if err != nil {
		return err
	}

	email, err := GetOptionalText(a.reader, "Contact email", session.Data.Email, a.out)
	if err != nil {
		return err
	}
	d.ContactEmail = session.Data.Email
	if email != nil {
		d.ContactEmail = *email
	}
	phone, err := GetOptionalText(a.reader, "Contact phone", session.Data.Phone, a.out)
	if err != nil {
		return err
	}
	d.ContactPhone = session.Data.Phone
	if phone != nil {
		d.ContactPhone = *phone
	}

	if d.Urgent, err = GetYesNo(a.reader, "Urgent?", a.out); err != nil {
		return err
	}
	expiry, err := a.ask("Expiry date (YYYY-MM-DD, empty for none)")
	if err != nil {
		return err
	}
	if expiry != "" {
		if d.ExpiryDate, err = parseDate(expiry); err != nil {
			return err
		}
	}

	res := a.svc.PostAnnouncement(ctx, d)
	if report(a, res) {
		a.println("id:", res.Data.ID)
	}
	return nil
}

// Edit updates the moderation and main content fields of an announcement.
// Empty answers keep the current value.
func (a *App) Edit(ctx context.Context, id string) error {
	if !report(a, a.svc.Session()) {
		return nil
	}
	current, ok := a.find(id)
	if !ok {
		a.println("Unknown announcement:", id)
		return nil
	}

	var p announcements.Patch
	err := a.askOptional([]optionalField{
		{"Title", current.Title, &p.Title},
		{"Location", current.Location, &p.Location},
		{"Event date", current.EventDate, &p.EventDate},
		{"Event time", current.EventTime, &p.EventTime},
		{"Compensation", current.Compensation, &p.Compensation},
	})
	if err != nil {
		return err
	}

	status, err := GetOptionalText(a.reader, "Status (active/draft)", string(current.Status), a.out)
	if err != nil {
		return err
	}
	if status != nil {
		st := announcements.Status(strings.ToLower(*status))
		if st != announcements.StatusActive && st != announcements.StatusDraft {
			return fmt.Errorf("unknown status %q", *status)
		}
		p.Status = &st
	}

	visible, err := GetOptionalText(a.reader, "Visible (y/n)", yesNo(current.IsActive), a.out)
	if err != nil {
		return err
	}
	if visible != nil {
		v := strings.EqualFold(*visible, "y") || strings.EqualFold(*visible, "yes")
		p.IsActive = &v
	}

	expiry, err := GetOptionalText(a.reader, "Expiry date (YYYY-MM-DD, 'none' to clear)", formatDate(current.ExpiryDate), a.out)
	if err != nil {
		return err
	}
	switch {
	case expiry == nil:
	case strings.EqualFold(*expiry, "none"):
		p.ClearExpiry = true
	default:
		if p.ExpiryDate, err = parseDate(*expiry); err != nil {
			return err
		}
	}

	report(a, a.svc.UpdateAnnouncement(ctx, id, p))
	return nil
}

// find looks id up among the session account's announcements without
// counting a view.
func (a *App) find(id string) (announcements.Announcement, bool) {
	for _, ann := range a.svc.MyAnnouncements(announcements.FilterAll) {
		if ann.ID == id {
			return ann, true
		}
	}
	return announcements.Announcement{}, false
}

func (a *App) Delete(ctx context.Context, id string) error {
	if !report(a, a.svc.Session()) {
		return nil
	}
	ok, err := GetYesNo(a.reader, "Delete announcement "+id+"?", a.out)
	if err != nil || !ok {
		return err
	}
	report(a, a.svc.DeleteAnnouncement(ctx, id))
	return nil
}

// Show prints one announcement and counts the view.
func (a *App) Show(ctx context.Context, id string) error {
	res := a.svc.ViewAnnouncement(ctx, id)
	if !report(a, res) {
		return nil
	}
	ann := *res.Data
	author, _ := a.svc.Author(ann.AuthorID)
	a.println(renderAnnouncement(ann, author, a.svc.Status(ann)))
	return nil
}

func (a *App) printList(list []announcements.Announcement) {
	if len(list) == 0 {
		a.println("No announcements")
		return
	}
	for _, ann := range list {
		a.println(renderAnnouncementLine(ann, a.svc.Status(ann)))
	}
}

func (a *App) List(ctx context.Context) error {
	a.printList(a.svc.Announcements())
	return nil
}

func (a *App) Active(ctx context.Context) error {
	a.printList(a.svc.ActiveAnnouncements())
	return nil
}

// Mine lists the session account's announcements under filter, "all" when
// empty.
func (a *App) Mine(ctx context.Context, filter string) error {
	if !report(a, a.svc.Session()) {
		return nil
	}
	f := announcements.FilterAll
	if filter != "" {
		f = announcements.Filter(strings.ToLower(filter))
	}
	if !f.Valid() {
		return fmt.Errorf("unknown filter %q", filter)
	}
	a.printList(a.svc.MyAnnouncements(f))
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	st := a.svc.Statistics()
	a.println(fmt.Sprintf("Announcements: %d (active %d, today %d)", st.TotalAnnouncements, st.ActiveAnnouncements, st.TodayAnnouncements))
	a.println(fmt.Sprintf("Universities: %d, companies: %d", st.TotalUniversities, st.TotalCompanies))
	if a.isLoggedIn() {
		mine := a.svc.MyStatistics()
		a.println(fmt.Sprintf("Mine: %d (active %d)", mine.Total, mine.Active))
	}
	return nil
}
