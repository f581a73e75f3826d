package announcements

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/collabboard/internal/accounts"
	"github.com/dmitrijs2005/collabboard/internal/common"
	"github.com/dmitrijs2005/collabboard/internal/kvstore"
	"github.com/dmitrijs2005/collabboard/internal/logging"
)

// KindCounter reports how many accounts of a kind exist.
type KindCounter interface {
	CountByKind(kind accounts.Kind) int
}

// Store keeps the announcement collection in memory and rewrites it to the
// key/value substrate on every mutation, view counting included. It is not
// safe for concurrent use.
type Store struct {
	kv  kvstore.Store
	log logging.Logger
	now func() time.Time

	items []Announcement
}

type Option func(*Store)

// WithClock replaces time.Now. The clock's location defines "today" for
// Statistics.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore loads the collection from kv and seeds the sample announcements
// when it is empty.
func NewStore(ctx context.Context, kv kvstore.Store, opts ...Option) (*Store, error) {
	s := &Store{
		kv:  kv,
		log: logging.NewDiscardLogger(),
		now: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With("store", "announcements")

	if _, err := kvstore.GetJSON(ctx, kv, kvstore.KeyAnnouncements, &s.items); err != nil {
		return nil, fmt.Errorf("load announcements: %w", err)
	}
	if len(s.items) == 0 {
		if err := s.commit(ctx, sampleAnnouncements()); err != nil {
			return nil, fmt.Errorf("seed announcements: %w", err)
		}
		s.log.Info(ctx, "sample announcements seeded", "count", len(s.items))
	}
	return s, nil
}

func (s *Store) commit(ctx context.Context, next []Announcement) error {
	if err := kvstore.SetJSON(ctx, s.kv, kvstore.KeyAnnouncements, next); err != nil {
		return fmt.Errorf("persist announcements: %w", err)
	}
	s.items = next
	return nil
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.items, func(a Announcement) bool { return a.ID == id })
}

// Create stores a new active announcement with a zero view count.
func (s *Store) Create(ctx context.Context, d Draft) (Announcement, error) {
	now := s.now()
	a := Announcement{
		ID:               common.NewID(),
		Title:            d.Title,
		Category:         d.Category,
		Description:      d.Description,
		AuthorID:         d.AuthorID,
		OrganizationKind: d.OrganizationKind,
		EventDate:        d.EventDate,
		EventTime:        d.EventTime,
		Duration:         d.Duration,
		Location:         d.Location,
		Format:           d.Format,
		TargetAudience:   d.TargetAudience,
		Requirements:     d.Requirements,
		Compensation:     d.Compensation,
		ContactEmail:     d.ContactEmail,
		ContactPhone:     d.ContactPhone,
		Urgent:           d.Urgent,
		Status:           StatusActive,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if d.ExpiryDate != nil {
		e := *d.ExpiryDate
		a.ExpiryDate = &e
	}

	if err := s.commit(ctx, append(slices.Clone(s.items), a)); err != nil {
		return Announcement{}, err
	}
	s.log.Info(ctx, "announcement created", "announcement_id", a.ID, "author_id", a.AuthorID)
	return a.clone(), nil
}

// Update merges p into the announcement and restamps UpdatedAt.
func (s *Store) Update(ctx context.Context, id string, p Patch) (Announcement, error) {
	i := s.index(id)
	if i < 0 {
		return Announcement{}, common.ErrNotFound
	}
	a := s.items[i].clone()
	p.apply(&a)
	a.UpdatedAt = s.now()

	next := slices.Clone(s.items)
	next[i] = a
	if err := s.commit(ctx, next); err != nil {
		return Announcement{}, err
	}
	s.log.Info(ctx, "announcement updated", "announcement_id", id)
	return a.clone(), nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	i := s.index(id)
	if i < 0 {
		return common.ErrNotFound
	}
	if err := s.commit(ctx, slices.Delete(slices.Clone(s.items), i, i+1)); err != nil {
		return err
	}
	s.log.Info(ctx, "announcement deleted", "announcement_id", id)
	return nil
}

// GetByID counts a view and persists it before returning the announcement.
// An unknown id yields nil without touching the collection.
func (s *Store) GetByID(ctx context.Context, id string) (*Announcement, error) {
	i := s.index(id)
	if i < 0 {
		return nil, nil
	}
	a := s.items[i].clone()
	a.ViewCount++

	next := slices.Clone(s.items)
	next[i] = a
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) collect(keep func(Announcement) bool) []Announcement {
	out := make([]Announcement, 0)
	for _, a := range s.items {
		if keep(a) {
			out = append(out, a.clone())
		}
	}
	return out
}

// ListAll returns the announcements not switched off, in insertion order.
func (s *Store) ListAll() []Announcement {
	return s.collect(func(a Announcement) bool { return a.IsActive })
}

// ListByAuthor returns every announcement of the author, drafts and inactive
// ones included.
func (s *Store) ListByAuthor(authorID string) []Announcement {
	return s.collect(func(a Announcement) bool { return a.AuthorID == authorID })
}

// ListCurrentlyActive returns active announcements whose expiry date, if
// any, has not passed.
func (s *Store) ListCurrentlyActive() []Announcement {
	now := s.now()
	return s.collect(func(a Announcement) bool {
		return a.IsActive && !a.expiredAt(now)
	})
}

// DeriveStatus classifies a at the current time.
func (s *Store) DeriveStatus(a Announcement) DerivedStatus {
	return StatusAt(a, s.now())
}

// ListByAuthorFiltered narrows ListByAuthor for the management view. An
// unrecognised filter behaves like FilterAll.
func (s *Store) ListByAuthorFiltered(authorID string, f Filter) []Announcement {
	now := s.now()
	return s.collect(func(a Announcement) bool {
		if a.AuthorID != authorID {
			return false
		}
		switch f {
		case FilterActive:
			return a.IsActive && a.Status != StatusDraft
		case FilterExpired:
			return !a.IsActive || a.expiredAt(now)
		case FilterDraft:
			return a.Status == StatusDraft
		default:
			return true
		}
	})
}

func (s *Store) AuthorStatistics(authorID string) AuthorStatistics {
	var st AuthorStatistics
	for _, a := range s.items {
		if a.AuthorID != authorID {
			continue
		}
		st.Total++
		if a.IsActive && a.Status != StatusDraft {
			st.Active++
		}
	}
	return st
}

// Statistics summarises the board. Today is the calendar day of the clock in
// the clock's own location.
func (s *Store) Statistics(kinds KindCounter) Statistics {
	now := s.now()
	y, m, d := now.Date()

	st := Statistics{
		TotalAnnouncements: len(s.items),
		TotalUniversities:  kinds.CountByKind(accounts.KindUniversity),
		TotalCompanies:     kinds.CountByKind(accounts.KindCompany),
	}
	for _, a := range s.items {
		if a.IsActive && !a.expiredAt(now) {
			st.ActiveAnnouncements++
		}
		cy, cm, cd := a.CreatedAt.In(now.Location()).Date()
		if cy == y && cm == m && cd == d {
			st.TodayAnnouncements++
		}
	}
	return st
}
