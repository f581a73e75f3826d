// Package board is the boundary between the stores and the user interface.
// Every mutating operation reports a Result instead of an error; queries
// return plain values.
package board

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/collabboard/internal/accounts"
	"github.com/dmitrijs2005/collabboard/internal/announcements"
	"github.com/dmitrijs2005/collabboard/internal/common"
	"github.com/dmitrijs2005/collabboard/internal/i18n"
	"github.com/dmitrijs2005/collabboard/internal/logging"
)

// Accounts is the account store as seen by the service.
type Accounts interface {
	Register(ctx context.Context, d accounts.Draft) (accounts.Account, error)
	Authenticate(ctx context.Context, email, password string, remember bool) (accounts.Account, error)
	EndSession(ctx context.Context) error
	UpdateProfile(ctx context.Context, id string, p accounts.Patch) (accounts.Account, error)
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
	Lookup(id string) (accounts.Account, bool)
	ListByKind(kind accounts.Kind) []accounts.Account
	CountByKind(kind accounts.Kind) int
	CurrentSession() (accounts.Account, bool)
	RequireSession() error
}

// Announcements is the announcement store as seen by the service.
type Announcements interface {
	Create(ctx context.Context, d announcements.Draft) (announcements.Announcement, error)
	Update(ctx context.Context, id string, p announcements.Patch) (announcements.Announcement, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*announcements.Announcement, error)
	ListAll() []announcements.Announcement
	ListCurrentlyActive() []announcements.Announcement
	ListByAuthorFiltered(authorID string, f announcements.Filter) []announcements.Announcement
	AuthorStatistics(authorID string) announcements.AuthorStatistics
	DeriveStatus(a announcements.Announcement) announcements.DerivedStatus
	Statistics(kinds announcements.KindCounter) announcements.Statistics
}

type Service struct {
	accounts      Accounts
	announcements Announcements
	lang          string
	log           logging.Logger
}

type Option func(*Service)

// WithLanguage selects the message catalog.
func WithLanguage(lang string) Option {
	return func(s *Service) { s.lang = i18n.Normalize(lang) }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Service) { s.log = l }
}

func NewService(acc Accounts, ann Announcements, opts ...Option) *Service {
	s := &Service{
		accounts:      acc,
		announcements: ann,
		lang:          i18n.DefaultLang,
		log:           logging.NewDiscardLogger(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) t(code string) string {
	return i18n.T(s.lang, code)
}

// wording picks the message for errors whose text depends on the operation.
type wording struct {
	notFound      string
	badCredential string
}

var defaultWording = wording{
	notFound:      i18n.MsgAccountNotFound,
	badCredential: i18n.MsgBadPassword,
}

// describe translates a store error. Errors outside the known taxonomy are
// environment faults: they are logged and reported with a generic message.
func (s *Service) describe(ctx context.Context, op string, err error, w wording) string {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		return i18n.Join(s.lang, ve.Codes)
	case errors.Is(err, common.ErrNotFound):
		return s.t(w.notFound)
	case errors.Is(err, common.ErrDuplicateEmail):
		return s.t(i18n.MsgDuplicateEmail)
	case errors.Is(err, common.ErrDeactivated):
		return s.t(i18n.MsgDeactivated)
	case errors.Is(err, common.ErrBadCredential):
		return s.t(w.badCredential)
	case errors.Is(err, common.ErrWeakPassword):
		return s.t(i18n.MsgNewPasswordTooShort)
	case errors.Is(err, common.ErrUnauthenticated):
		return s.t(i18n.MsgSessionRequired)
	default:
		s.log.Error(ctx, "operation failed", "op", op, "error", err)
		return s.t(i18n.MsgInternal)
	}
}

func (s *Service) Register(ctx context.Context, d accounts.Draft) Result[accounts.Account] {
	acc, err := s.accounts.Register(ctx, d)
	if err != nil {
		return fail[accounts.Account](s.describe(ctx, "register", err, defaultWording))
	}
	return succeed(s.t(i18n.MsgRegistered), acc)
}

func (s *Service) Login(ctx context.Context, email, password string, remember bool) Result[accounts.Account] {
	acc, err := s.accounts.Authenticate(ctx, email, password, remember)
	if err != nil {
		return fail[accounts.Account](s.describe(ctx, "login", err, wording{
			notFound:      i18n.MsgEmailNotFound,
			badCredential: i18n.MsgBadPassword,
		}))
	}
	return succeed(s.t(i18n.MsgLoggedIn), acc)
}

func (s *Service) Logout(ctx context.Context) Result[Empty] {
	if err := s.accounts.EndSession(ctx); err != nil {
		return fail[Empty](s.describe(ctx, "logout", err, defaultWording))
	}
	return succeed(s.t(i18n.MsgLoggedOut), Empty{})
}

// Session returns the logged-in account or a failure asking to log in.
func (s *Service) Session() Result[accounts.Account] {
	if err := s.accounts.RequireSession(); err != nil {
		return fail[accounts.Account](s.t(i18n.MsgSessionRequired))
	}
	acc, _ := s.accounts.CurrentSession()
	return succeed("", acc)
}

// UpdateProfile patches the logged-in account.
func (s *Service) UpdateProfile(ctx context.Context, p accounts.Patch) Result[accounts.Account] {
	session := s.Session()
	if !session.Success {
		return session
	}
	acc, err := s.accounts.UpdateProfile(ctx, session.Data.ID, p)
	if err != nil {
		return fail[accounts.Account](s.describe(ctx, "update profile", err, defaultWording))
	}
	return succeed(s.t(i18n.MsgProfileUpdated), acc)
}

// ChangePassword changes the password of the logged-in account.
func (s *Service) ChangePassword(ctx context.Context, currentPassword, newPassword string) Result[Empty] {
	session := s.Session()
	if !session.Success {
		return fail[Empty](session.Message)
	}
	err := s.accounts.ChangePassword(ctx, session.Data.ID, currentPassword, newPassword)
	if err != nil {
		return fail[Empty](s.describe(ctx, "change password", err, wording{
			notFound:      i18n.MsgAccountNotFound,
			badCredential: i18n.MsgCurrentPasswordBad,
		}))
	}
	return succeed(s.t(i18n.MsgPasswordChanged), Empty{})
}

var announcementWording = wording{
	notFound:      i18n.MsgAnnouncementNotFound,
	badCredential: i18n.MsgBadPassword,
}

// PostAnnouncement publishes d on behalf of the logged-in account. Author
// fields of d are overwritten from the session.
func (s *Service) PostAnnouncement(ctx context.Context, d announcements.Draft) Result[announcements.Announcement] {
	session := s.Session()
	if !session.Success {
		return fail[announcements.Announcement](session.Message)
	}
	d.AuthorID = session.Data.ID
	d.OrganizationKind = session.Data.Kind

	a, err := s.announcements.Create(ctx, d)
	if err != nil {
		return fail[announcements.Announcement](s.describe(ctx, "create announcement", err, announcementWording))
	}
	return succeed(s.t(i18n.MsgAnnouncementCreated), a)
}

func (s *Service) UpdateAnnouncement(ctx context.Context, id string, p announcements.Patch) Result[announcements.Announcement] {
	if session := s.Session(); !session.Success {
		return fail[announcements.Announcement](session.Message)
	}
	a, err := s.announcements.Update(ctx, id, p)
	if err != nil {
		return fail[announcements.Announcement](s.describe(ctx, "update announcement", err, announcementWording))
	}
	return succeed(s.t(i18n.MsgAnnouncementUpdated), a)
}

func (s *Service) DeleteAnnouncement(ctx context.Context, id string) Result[Empty] {
	if session := s.Session(); !session.Success {
		return fail[Empty](session.Message)
	}
	if err := s.announcements.Delete(ctx, id); err != nil {
		return fail[Empty](s.describe(ctx, "delete announcement", err, announcementWording))
	}
	return succeed(s.t(i18n.MsgAnnouncementDeleted), Empty{})
}

// ViewAnnouncement opens one announcement, counting the view. An unknown id
// fails without changing anything.
func (s *Service) ViewAnnouncement(ctx context.Context, id string) Result[*announcements.Announcement] {
	a, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		return fail[*announcements.Announcement](s.describe(ctx, "view announcement", err, announcementWording))
	}
	if a == nil {
		return fail[*announcements.Announcement](s.t(i18n.MsgAnnouncementNotFound))
	}
	return succeed("", a)
}

func (s *Service) Announcements() []announcements.Announcement {
	return s.announcements.ListAll()
}

func (s *Service) ActiveAnnouncements() []announcements.Announcement {
	return s.announcements.ListCurrentlyActive()
}

// MyAnnouncements lists the logged-in account's announcements under f. It
// returns nil without a session.
func (s *Service) MyAnnouncements(f announcements.Filter) []announcements.Announcement {
	acc, ok := s.accounts.CurrentSession()
	if !ok {
		return nil
	}
	return s.announcements.ListByAuthorFiltered(acc.ID, f)
}

// MyStatistics summarises the logged-in account's announcements.
func (s *Service) MyStatistics() announcements.AuthorStatistics {
	acc, ok := s.accounts.CurrentSession()
	if !ok {
		return announcements.AuthorStatistics{}
	}
	return s.announcements.AuthorStatistics(acc.ID)
}

func (s *Service) Status(a announcements.Announcement) announcements.DerivedStatus {
	return s.announcements.DeriveStatus(a)
}

func (s *Service) Statistics() announcements.Statistics {
	return s.announcements.Statistics(s.accounts)
}

// Author resolves an announcement's author for display.
func (s *Service) Author(id string) (accounts.Account, bool) {
	return s.accounts.Lookup(id)
}

func (s *Service) Organizations(kind accounts.Kind) []accounts.Account {
	return s.accounts.ListByKind(kind)
}

// Translate exposes the service catalog to the presentation layer.
func (s *Service) Translate(code string) string {
	return s.t(code)
}
