package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/collabboard/internal/accounts"
	"github.com/dmitrijs2005/collabboard/internal/announcements"
	"github.com/dmitrijs2005/collabboard/internal/board"
	"github.com/dmitrijs2005/collabboard/internal/i18n"
	"github.com/dmitrijs2005/collabboard/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T) *board.Service {
	t.Helper()
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	acc, err := accounts.NewStore(ctx, kv, accounts.WithClock(fixedClock))
	require.NoError(t, err)
	ann, err := announcements.NewStore(ctx, kv, announcements.WithClock(fixedClock))
	require.NoError(t, err)
	return board.NewService(acc, ann, board.WithLanguage(i18n.LangEN))
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func runScript(t *testing.T, svc *board.Service, script string) string {
	t.Helper()
	var out bytes.Buffer
	NewApp(svc, strings.NewReader(script), &out).Run(context.Background())
	return out.String()
}

func loginScript(email string) []string {
	return []string{"login", email, accounts.SamplePassword, "n"}
}

func TestApp_LoginWhoAmILogout(t *testing.T) {
	svc := newTestService(t)
	script := append(loginScript("hr@techukraine.com"), "whoami", "logout", "whoami", "exit")

	out := runScript(t, svc, lines(script...))

	assert.Contains(t, out, "Logged in successfully!")
	assert.Contains(t, out, "TechUkraine (company)")
	assert.Contains(t, out, "Announcements: 1 total, 1 active")
	assert.Contains(t, out, "You have logged out")
	assert.Contains(t, out, "Please log in first")
	assert.False(t, svc.Session().Success)
}

func TestApp_LoginFailures(t *testing.T) {
	svc := newTestService(t)
	out := runScript(t, svc, lines(
		"login", "ghost@x.com", "whatever", "n",
		"login", "info@knu.ua", "wrong", "n",
	))

	assert.Contains(t, out, "No account with this email")
	assert.Contains(t, out, "Wrong password")
	assert.False(t, svc.Session().Success)
}

func TestApp_SessionRestoredBanner(t *testing.T) {
	svc := newTestService(t)
	require.True(t, svc.Login(context.Background(), "info@kpi.ua", accounts.SamplePassword, true).Success)

	out := runScript(t, svc, "")
	assert.Contains(t, out, `Session restored: Національний технічний університет України "КПІ"`)
}

func TestApp_Register(t *testing.T) {
	svc := newTestService(t)
	out := runScript(t, svc, lines(
		"register",
		"University", "a@x.com", "abcdef", "abcdef",
		"ЛНУ", "Олена Петрівна", "", "", "", "",
		"register",
		"company", "bad", "abc", "abd",
		"", "", "", "", "", "", "",
	))

	assert.Contains(t, out, "Registration successful! You can now log in.")
	assert.Contains(t, out, "Invalid email format\nPassword must be at least 6 characters long\nPasswords do not match")
	assert.True(t, svc.Login(context.Background(), "a@x.com", "abcdef", false).Success)
}

func TestApp_Profile(t *testing.T) {
	svc := newTestService(t)
	before := func() accounts.Account {
		require.True(t, svc.Login(context.Background(), "info@knu.ua", accounts.SamplePassword, false).Success)
		return svc.Session().Data
	}()

	// email, university name, contact, phone, address, website, description
	out := runScript(t, svc, lines("profile", "", "", "", "+380 44 111 22 33", "", "", "", "exit"))

	assert.Contains(t, out, "Profile updated")
	after := svc.Session().Data
	assert.Equal(t, "+380 44 111 22 33", after.Phone)
	assert.Equal(t, before.Email, after.Email)
	assert.Equal(t, before.UniversityName, after.UniversityName)
	assert.Equal(t, before.Description, after.Description)
}

func TestApp_Passwd(t *testing.T) {
	svc := newTestService(t)
	out := runScript(t, svc, lines(append(loginScript("info@knu.ua"),
		"passwd", "nope", "newpass1",
		"passwd", accounts.SamplePassword, "123",
		"passwd", accounts.SamplePassword, "newpass1",
	)...))

	assert.Contains(t, out, "Current password is wrong")
	assert.Contains(t, out, "New password must be at least 6 characters long")
	assert.Contains(t, out, "Password changed")
}

func postScript(title, expiry string) []string {
	return []string{
		"post",
		title, "Workshop",
		"Hands-on session", "second line", "",
		"2025-04-01", "10:00", "3hours", "Room 5",
		"hybrid",
		"Students", "Laptop", "Certificate",
		"", "",
		"y",
		expiry,
	}
}

func TestApp_PostShowEditDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	out := runScript(t, svc, lines(append(loginScript("hr@techukraine.com"), postScript("Go workshop", "2025-05-01")...)...))
	assert.Contains(t, out, "Announcement created")

	mine := svc.MyAnnouncements(announcements.FilterAll)
	require.Len(t, mine, 2)
	posted := mine[1]
	assert.Equal(t, "Go workshop", posted.Title)
	assert.Equal(t, announcements.CategoryWorkshop, posted.Category)
	assert.Equal(t, announcements.FormatHybrid, posted.Format)
	assert.Equal(t, "Hands-on session\nsecond line", posted.Description)
	assert.Equal(t, "hr@techukraine.com", posted.ContactEmail)
	assert.Equal(t, "+380443334455", posted.ContactPhone)
	assert.True(t, posted.Urgent)
	require.NotNil(t, posted.ExpiryDate)
	assert.Equal(t, "2025-05-01", posted.ExpiryDate.Format(dateLayout))
	assert.Contains(t, out, "id: "+posted.ID)

	out = runScript(t, svc, lines("show "+posted.ID))
	assert.Contains(t, out, "["+posted.ID+"] Go workshop (workshop, active) ! views: 1")
	assert.Contains(t, out, "by TechUkraine (company)")
	assert.Contains(t, out, "expires:  2025-05-01")

	// title, location, event date, event time, compensation, status, visible, expiry
	out = runScript(t, svc, lines("edit "+posted.ID, "", "", "", "", "", "draft", "", "none"))
	assert.Contains(t, out, "Announcement updated")
	drafts := svc.MyAnnouncements(announcements.FilterDraft)
	require.Len(t, drafts, 1)
	assert.Nil(t, drafts[0].ExpiryDate)

	out = runScript(t, svc, lines("mine draft", "mine bogus"))
	assert.Contains(t, out, "["+posted.ID+"] Go workshop (workshop, draft)")
	assert.Contains(t, out, `error: unknown filter "bogus"`)

	out = runScript(t, svc, lines("delete "+posted.ID, "n", "delete "+posted.ID, "y", "delete "+posted.ID, "y"))
	assert.Equal(t, 1, strings.Count(out, "Announcement deleted"))
	assert.Contains(t, out, "Announcement not found")

	res := svc.ViewAnnouncement(ctx, posted.ID)
	assert.False(t, res.Success)
}

func TestApp_PostRejectsBadExpiry(t *testing.T) {
	svc := newTestService(t)
	out := runScript(t, svc, lines(append(loginScript("info@knu.ua"), postScript("x", "tomorrow")...)...))

	assert.Contains(t, out, "error: date must look like 2006-01-02")
	assert.Len(t, svc.Announcements(), 3)
}

func TestApp_EditUnknownAnnouncement(t *testing.T) {
	svc := newTestService(t)
	out := runScript(t, svc, lines(append(loginScript("info@knu.ua"), "edit ann2")...))
	assert.Contains(t, out, "Unknown announcement: ann2")
}

func TestApp_GuestCommands(t *testing.T) {
	svc := newTestService(t)
	out := runScript(t, svc, lines("list", "active", "show missing", "stats", "post", "mine", "exit"))

	assert.Contains(t, out, "[ann1] Лекція з штучного інтелекту для студентів (lecture, active) ! views: 45")
	assert.Contains(t, out, "[ann2]")
	assert.Contains(t, out, "Announcement not found")
	assert.Contains(t, out, "Announcements: 3 (active 3, today 0)")
	assert.Contains(t, out, "Universities: 2, companies: 1")
	assert.NotContains(t, out, "Mine:")
	assert.Equal(t, 2, strings.Count(out, "Please log in first"))
}
