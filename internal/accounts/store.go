package accounts

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/collabboard/internal/common"
	"github.com/dmitrijs2005/collabboard/internal/cryptox"
	"github.com/dmitrijs2005/collabboard/internal/kvstore"
	"github.com/dmitrijs2005/collabboard/internal/logging"
)

const rememberMeValue = "true"

// Store holds every account in memory and writes the whole collection back
// to the key/value substrate on each mutation. It is not safe for concurrent
// use; the application drives it from a single goroutine.
type Store struct {
	kv     kvstore.Store
	log    logging.Logger
	now    func() time.Time
	secret string

	users    []record
	session  *Account
	remember bool
}

type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithSecret sets the system-wide secret mixed into derived credentials.
func WithSecret(secret string) Option {
	return func(s *Store) { s.secret = secret }
}

// NewStore loads accounts, the session and the remember flag from kv. An
// empty collection is replaced by the sample accounts, persisted at once.
func NewStore(ctx context.Context, kv kvstore.Store, opts ...Option) (*Store, error) {
	s := &Store{
		kv:     kv,
		log:    logging.NewDiscardLogger(),
		now:    time.Now,
		secret: cryptox.DefaultSecret,
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With("store", "accounts")

	if _, err := kvstore.GetJSON(ctx, kv, kvstore.KeyUsers, &s.users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	var session Account
	ok, err := kvstore.GetJSON(ctx, kv, kvstore.KeyCurrentUser, &session)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if ok {
		s.session = &session
	}

	remember, err := kv.Get(ctx, kvstore.KeyRememberMe)
	if err != nil {
		return nil, fmt.Errorf("load remember flag: %w", err)
	}
	s.remember = remember != nil

	if len(s.users) == 0 {
		if err := s.commit(ctx, sampleRecords(s.secret)); err != nil {
			return nil, fmt.Errorf("seed users: %w", err)
		}
		s.log.Info(ctx, "sample accounts seeded", "count", len(s.users))
	}

	return s, nil
}

// commit persists next, together with any extra operations, and only then
// makes it the in-memory collection.
func (s *Store) commit(ctx context.Context, next []record, extra ...kvstore.Op) error {
	op, err := kvstore.SetJSONOp(kvstore.KeyUsers, next)
	if err != nil {
		return err
	}
	if len(extra) == 0 {
		err = s.kv.Set(ctx, op.Key, op.Value)
	} else {
		err = s.kv.Batch(ctx, append([]kvstore.Op{op}, extra...)...)
	}
	if err != nil {
		return fmt.Errorf("persist users: %w", err)
	}
	s.users = next
	return nil
}

func (s *Store) indexByID(id string) int {
	return slices.IndexFunc(s.users, func(r record) bool { return r.ID == id })
}

func (s *Store) indexByEmail(email string) int {
	return slices.IndexFunc(s.users, func(r record) bool { return r.Email == email })
}

// Register validates d, rejects a taken e-mail and appends the new account.
// Validation failures are reported together as a *common.ValidationError.
func (s *Store) Register(ctx context.Context, d Draft) (Account, error) {
	if v := validateDraft(d); !v.Empty() {
		return Account{}, common.NewValidationError(v)
	}
	if s.indexByEmail(d.Email) >= 0 {
		s.log.Warn(ctx, "registration rejected", "reason", "duplicate email")
		return Account{}, common.ErrDuplicateEmail
	}

	rec := record{
		Account: Account{
			ID:            common.NewID(),
			Kind:          d.Kind,
			Email:         d.Email,
			ContactPerson: d.ContactPerson,
			Phone:         d.Phone,
			Address:       d.Address,
			Website:       d.Website,
			Description:   d.Description,
			IsActive:      true,
			EmailVerified: false,
			CreatedAt:     s.now(),
		},
		Password: cryptox.DeriveCredential(d.Password, s.secret),
	}
	if d.Kind == KindUniversity {
		rec.UniversityName = d.UniversityName
	} else {
		rec.CompanyName = d.CompanyName
		rec.Industry = d.Industry
	}

	next := append(slices.Clone(s.users), rec)
	if err := s.commit(ctx, next); err != nil {
		return Account{}, err
	}

	s.log.Info(ctx, "account registered", "account_id", rec.ID, "type", rec.Kind)
	return rec.sanitize(), nil
}

// Authenticate checks the credentials of the account with exactly this
// e-mail, stamps lastLogin and opens the session. With remember set the
// remember flag is persisted as well.
func (s *Store) Authenticate(ctx context.Context, email, password string, remember bool) (Account, error) {
	i := s.indexByEmail(email)
	if i < 0 {
		s.log.Warn(ctx, "login rejected", "reason", "unknown email")
		return Account{}, common.ErrNotFound
	}
	rec := s.users[i]
	if !rec.IsActive {
		s.log.Warn(ctx, "login rejected", "reason", "deactivated", "account_id", rec.ID)
		return Account{}, common.ErrDeactivated
	}
	if !cryptox.VerifyCredential(password, rec.Password, s.secret) {
		s.log.Warn(ctx, "login rejected", "reason", "bad credential", "account_id", rec.ID)
		return Account{}, common.ErrBadCredential
	}

	now := s.now()
	rec.LastLogin = &now
	next := slices.Clone(s.users)
	next[i] = rec

	session := rec.sanitize()
	sessionOp, err := kvstore.SetJSONOp(kvstore.KeyCurrentUser, session)
	if err != nil {
		return Account{}, err
	}
	ops := []kvstore.Op{sessionOp}
	if remember {
		ops = append(ops, kvstore.SetOp(kvstore.KeyRememberMe, []byte(rememberMeValue)))
	}
	if err := s.commit(ctx, next, ops...); err != nil {
		return Account{}, err
	}

	s.session = &session
	if remember {
		s.remember = true
	}
	s.log.Info(ctx, "login", "account_id", rec.ID, "remember", remember)
	return session.clone(), nil
}

// EndSession drops the session and the remember flag. Calling it without a
// session is not an error.
func (s *Store) EndSession(ctx context.Context) error {
	err := s.kv.Batch(ctx,
		kvstore.DeleteOp(kvstore.KeyCurrentUser),
		kvstore.DeleteOp(kvstore.KeyRememberMe),
	)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if s.session != nil {
		s.log.Info(ctx, "logout", "account_id", s.session.ID)
	}
	s.session = nil
	s.remember = false
	return nil
}

// UpdateProfile merges the provided patch fields into the account. When the
// account is the session's account the session is refreshed too.
func (s *Store) UpdateProfile(ctx context.Context, id string, p Patch) (Account, error) {
	i := s.indexByID(id)
	if i < 0 {
		return Account{}, common.ErrNotFound
	}
	rec := s.users[i]

	if v := validatePatch(rec.Kind, p); !v.Empty() {
		return Account{}, common.NewValidationError(v)
	}
	if p.Email != nil && *p.Email != rec.Email {
		if j := s.indexByEmail(*p.Email); j >= 0 && s.users[j].ID != id {
			return Account{}, common.ErrDuplicateEmail
		}
	}

	now := s.now()
	p.apply(&rec.Account)
	rec.UpdatedAt = &now
	next := slices.Clone(s.users)
	next[i] = rec

	updated := rec.sanitize()
	var ops []kvstore.Op
	refresh := s.session != nil && s.session.ID == id
	if refresh {
		op, err := kvstore.SetJSONOp(kvstore.KeyCurrentUser, updated)
		if err != nil {
			return Account{}, err
		}
		ops = append(ops, op)
	}
	if err := s.commit(ctx, next, ops...); err != nil {
		return Account{}, err
	}
	if refresh {
		session := updated.clone()
		s.session = &session
	}

	s.log.Info(ctx, "profile updated", "account_id", id)
	return updated, nil
}

// ChangePassword replaces the credential after verifying the current one.
// The session is not affected.
func (s *Store) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	i := s.indexByID(id)
	if i < 0 {
		return common.ErrNotFound
	}
	rec := s.users[i]
	if !cryptox.VerifyCredential(currentPassword, rec.Password, s.secret) {
		s.log.Warn(ctx, "password change rejected", "reason", "bad credential", "account_id", id)
		return common.ErrBadCredential
	}
	if passwordTooShort(newPassword) {
		return common.ErrWeakPassword
	}

	now := s.now()
	rec.Password = cryptox.DeriveCredential(newPassword, s.secret)
	rec.UpdatedAt = &now
	next := slices.Clone(s.users)
	next[i] = rec

	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.log.Info(ctx, "password changed", "account_id", id)
	return nil
}

func (s *Store) Lookup(id string) (Account, bool) {
	i := s.indexByID(id)
	if i < 0 {
		return Account{}, false
	}
	return s.users[i].sanitize(), true
}

func (s *Store) LookupByEmail(email string) (Account, bool) {
	i := s.indexByEmail(email)
	if i < 0 {
		return Account{}, false
	}
	return s.users[i].sanitize(), true
}

// ListAll returns every account in registration order.
func (s *Store) ListAll() []Account {
	out := make([]Account, 0, len(s.users))
	for _, r := range s.users {
		out = append(out, r.sanitize())
	}
	return out
}

func (s *Store) ListByKind(kind Kind) []Account {
	out := make([]Account, 0)
	for _, r := range s.users {
		if r.Kind == kind {
			out = append(out, r.sanitize())
		}
	}
	return out
}

func (s *Store) CountByKind(kind Kind) int {
	n := 0
	for _, r := range s.users {
		if r.Kind == kind {
			n++
		}
	}
	return n
}

func (s *Store) HasActiveSession() bool {
	return s.session != nil
}

// RequireSession fails with common.ErrUnauthenticated when nobody is logged in.
func (s *Store) RequireSession() error {
	if s.session == nil {
		return common.ErrUnauthenticated
	}
	return nil
}

// CurrentSession returns a copy of the session account.
func (s *Store) CurrentSession() (Account, bool) {
	if s.session == nil {
		return Account{}, false
	}
	return s.session.clone(), true
}

// RememberMe reports whether the remember flag is set.
func (s *Store) RememberMe() bool {
	return s.remember
}
