package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/collabboard/internal/accounts"
	"github.com/dmitrijs2005/collabboard/internal/announcements"
)

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func renderAccount(acc accounts.Account) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", acc.Name(), acc.Kind)
	fmt.Fprintf(&b, "  email:   %s\n", acc.Email)
	if acc.Kind == accounts.KindCompany {
		fmt.Fprintf(&b, "  industry: %s\n", acc.Industry)
	}
	fmt.Fprintf(&b, "  contact: %s\n", acc.ContactPerson)
	for _, kv := range [][2]string{
		{"phone", acc.Phone},
		{"address", acc.Address},
		{"website", acc.Website},
	} {
		if kv[1] != "" {
			fmt.Fprintf(&b, "  %-8s %s\n", kv[0]+":", kv[1])
		}
	}
	if acc.LastLogin != nil {
		fmt.Fprintf(&b, "  last login: %s\n", acc.LastLogin.Local().Format(time.DateTime))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderAnnouncementLine(a announcements.Announcement, st announcements.DerivedStatus) string {
	urgent := ""
	if a.Urgent {
		urgent = " !"
	}
	return fmt.Sprintf("[%s] %s (%s, %s)%s views: %d", a.ID, a.Title, a.Category, st, urgent, a.ViewCount)
}

func renderAnnouncement(a announcements.Announcement, author accounts.Account, st announcements.DerivedStatus) string {
	var b strings.Builder
	fmt.Fprintln(&b, renderAnnouncementLine(a, st))
	if author.ID != "" {
		fmt.Fprintf(&b, "  by %s (%s)\n", author.Name(), a.OrganizationKind)
	}
	if a.Description != "" {
		fmt.Fprintf(&b, "  %s\n", strings.ReplaceAll(a.Description, "\n", "\n  "))
	}
	for _, kv := range [][2]string{
		{"when", strings.TrimSpace(a.EventDate + " " + a.EventTime)},
		{"duration", a.Duration},
		{"where", a.Location},
		{"format", string(a.Format)},
		{"audience", a.TargetAudience},
		{"requires", a.Requirements},
		{"offers", a.Compensation},
		{"email", a.ContactEmail},
		{"phone", a.ContactPhone},
		{"expires", formatDate(a.ExpiryDate)},
	} {
		if kv[1] != "" {
			fmt.Fprintf(&b, "  %-9s %s\n", kv[0]+":", kv[1])
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
