package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/collabboard/internal/accounts"
	"github.com/dmitrijs2005/collabboard/internal/announcements"
	"github.com/dmitrijs2005/collabboard/internal/board"
)

// Service is the board surface the REPL drives.
type Service interface {
	Register(ctx context.Context, d accounts.Draft) board.Result[accounts.Account]
	Login(ctx context.Context, email, password string, remember bool) board.Result[accounts.Account]
	Logout(ctx context.Context) board.Result[board.Empty]
	Session() board.Result[accounts.Account]
	UpdateProfile(ctx context.Context, p accounts.Patch) board.Result[accounts.Account]
	ChangePassword(ctx context.Context, currentPassword, newPassword string) board.Result[board.Empty]

	PostAnnouncement(ctx context.Context, d announcements.Draft) board.Result[announcements.Announcement]
	UpdateAnnouncement(ctx context.Context, id string, p announcements.Patch) board.Result[announcements.Announcement]
	DeleteAnnouncement(ctx context.Context, id string) board.Result[board.Empty]
	ViewAnnouncement(ctx context.Context, id string) board.Result[*announcements.Announcement]

	Announcements() []announcements.Announcement
	ActiveAnnouncements() []announcements.Announcement
	MyAnnouncements(f announcements.Filter) []announcements.Announcement
	MyStatistics() announcements.AuthorStatistics
	Status(a announcements.Announcement) announcements.DerivedStatus
	Statistics() announcements.Statistics
	Author(id string) (accounts.Account, bool)
}

type App struct {
	svc    Service
	reader *bufio.Reader
	out    io.Writer
	fd     int
}

// NewApp builds a REPL reading from in and writing to out. Passwords are read
// without echo when in is a terminal.
func NewApp(svc Service, in io.Reader, out io.Writer) *App {
	fd := -1
	if f, ok := in.(*os.File); ok {
		fd = int(f.Fd())
	}
	return &App{svc: svc, reader: bufio.NewReader(in), out: out, fd: fd}
}

// Run blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to the collaboration board (type 'help' for commands)")
	if acc, ok := a.session(); ok {
		a.println("Session restored:", acc.Name())
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) session() (accounts.Account, bool) {
	res := a.svc.Session()
	return res.Data, res.Success
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session()
	return ok
}

func (a *App) status() string {
	if acc, ok := a.session(); ok {
		return fmt.Sprintf("(%s)", acc.Email)
	}
	return ""
}

// report prints the result message and tells whether the call succeeded.
func report[T any](a *App, res board.Result[T]) bool {
	if res.Message != "" {
		a.println(res.Message)
	}
	return res.Success
}
