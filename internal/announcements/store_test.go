package announcements

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/collabboard/internal/accounts"
	"github.com/dmitrijs2005/collabboard/internal/common"
	"github.com/dmitrijs2005/collabboard/internal/kvstore"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

type flakyKV struct {
	*kvstore.MemoryStore
	failWrites bool
}

func (f *flakyKV) Set(ctx context.Context, key string, value []byte) error {
	if f.failWrites {
		return errBoom
	}
	return f.MemoryStore.Set(ctx, key, value)
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newClock() *clock {
	return &clock{t: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)}
}

type kindCounts map[accounts.Kind]int

func (k kindCounts) CountByKind(kind accounts.Kind) int { return k[kind] }

func newStore(t *testing.T, kv kvstore.Store, c *clock) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), kv, WithClock(c.now))
	require.NoError(t, err)
	return s
}

func draft(author string) Draft {
	return Draft{
		Title:            "Воркшоп з Go",
		Category:         CategoryWorkshop,
		Description:      "Практичне заняття",
		AuthorID:         author,
		OrganizationKind: accounts.KindCompany,
		EventDate:        "2025-04-01",
		EventTime:        "10:00",
		Duration:         "3hours",
		Location:         "Онлайн",
		Format:           FormatOnline,
		ContactEmail:     "events@x.com",
	}
}

func ids(list []Announcement) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func TestNewStore_SeedsSampleAnnouncements(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	s := newStore(t, kv, newClock())

	all := s.ListAll()
	assert.Equal(t, []string{"ann1", "ann2", "ann3"}, ids(all))
	assert.Equal(t, 45, all[0].ViewCount)
	assert.Equal(t, accounts.KindCompany, all[1].OrganizationKind)

	var persisted []Announcement
	ok, err := kvstore.GetJSON(ctx, kv, kvstore.KeyAnnouncements, &persisted)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, cmp.Diff(all, persisted))
}

func TestNewStore_KeepsExistingCollection(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	s := newStore(t, kv, newClock())
	require.NoError(t, s.Delete(ctx, "ann2"))

	reopened := newStore(t, kv, newClock())
	assert.Equal(t, []string{"ann1", "ann3"}, ids(reopened.ListAll()))
}

func TestNewStore_BadDocument(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Set(context.Background(), kvstore.KeyAnnouncements, []byte("[{")))

	_, err := NewStore(context.Background(), kv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load announcements")
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	c := newClock()
	kv := kvstore.NewMemoryStore()
	s := newStore(t, kv, c)

	expiry := c.now().Add(48 * time.Hour)
	d := draft("comp1")
	d.ExpiryDate = &expiry
	a, err := s.Create(ctx, d)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, StatusActive, a.Status)
	assert.True(t, a.IsActive)
	assert.Zero(t, a.ViewCount)
	assert.Equal(t, c.now(), a.CreatedAt)
	assert.Equal(t, c.now(), a.UpdatedAt)
	require.NotNil(t, a.ExpiryDate)
	assert.Equal(t, expiry, *a.ExpiryDate)

	expiry = expiry.Add(time.Hour)
	stored := s.ListByAuthor("comp1")
	require.Len(t, stored, 2)
	assert.Equal(t, a.ID, stored[1].ID)
	assert.NotEqual(t, expiry, *stored[1].ExpiryDate, "draft pointer must not alias the record")

	reopened := newStore(t, kv, c)
	assert.Len(t, reopened.ListAll(), 4)
}

func TestCreate_PersistFailureLeavesCollection(t *testing.T) {
	kv := &flakyKV{MemoryStore: kvstore.NewMemoryStore()}
	s := newStore(t, kv, newClock())
	kv.failWrites = true

	_, err := s.Create(context.Background(), draft("comp1"))
	require.ErrorIs(t, err, errBoom)
	assert.Len(t, s.ListAll(), 3)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	c := newClock()
	s := newStore(t, kvstore.NewMemoryStore(), c)
	before := s.ListByAuthor("univ1")[0]

	c.t = c.t.Add(time.Hour)
	after, err := s.Update(ctx, "ann1", Patch{Title: ptr("Нова назва"), Urgent: ptr(false)})
	require.NoError(t, err)

	assert.Equal(t, "Нова назва", after.Title)
	assert.False(t, after.Urgent)
	assert.Equal(t, c.now(), after.UpdatedAt)
	assert.Empty(t, cmp.Diff(before, after, cmpopts.IgnoreFields(Announcement{}, "Title", "Urgent", "UpdatedAt")))
}

func TestUpdate_ExpiryDate(t *testing.T) {
	ctx := context.Background()
	c := newClock()
	s := newStore(t, kvstore.NewMemoryStore(), c)

	expiry := c.now().Add(-time.Hour)
	a, err := s.Update(ctx, "ann2", Patch{ExpiryDate: &expiry})
	require.NoError(t, err)
	require.NotNil(t, a.ExpiryDate)
	assert.Equal(t, DerivedExpired, s.DeriveStatus(a))

	a, err = s.Update(ctx, "ann2", Patch{ExpiryDate: &expiry, ClearExpiry: true})
	require.NoError(t, err)
	assert.Nil(t, a.ExpiryDate)
	assert.Equal(t, DerivedActive, s.DeriveStatus(a))
}

func TestUpdate_UnknownID(t *testing.T) {
	s := newStore(t, kvstore.NewMemoryStore(), newClock())
	before := s.ListAll()

	_, err := s.Update(context.Background(), "missing", Patch{Title: ptr("x")})
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, cmp.Diff(before, s.ListAll()))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	s := newStore(t, kv, newClock())

	require.NoError(t, s.Delete(ctx, "ann2"))
	assert.Equal(t, []string{"ann1", "ann3"}, ids(s.ListAll()))

	before := s.ListByAuthor("univ1")
	require.ErrorIs(t, s.Delete(ctx, "ann2"), common.ErrNotFound)
	require.ErrorIs(t, s.Delete(ctx, "never"), common.ErrNotFound)
	assert.Len(t, s.ListAll(), 2)
	assert.Empty(t, cmp.Diff(before, s.ListByAuthor("univ1")))
}

func TestGetByID_CountsViews(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	s := newStore(t, kv, newClock())

	const n = 5
	var last *Announcement
	for range n {
		a, err := s.GetByID(ctx, "ann3")
		require.NoError(t, err)
		require.NotNil(t, a)
		last = a
	}
	assert.Equal(t, 28+n, last.ViewCount)

	reopened := newStore(t, kv, newClock())
	assert.Equal(t, 28+n, reopened.ListByAuthor("univ2")[0].ViewCount)
}

func TestGetByID_UnknownDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	kv := &flakyKV{MemoryStore: kvstore.NewMemoryStore()}
	s := newStore(t, kv, newClock())
	before := s.ListAll()

	kv.failWrites = true
	a, err := s.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, a)
	assert.Empty(t, cmp.Diff(before, s.ListAll()))
}

func TestGetByID_PersistFailure(t *testing.T) {
	kv := &flakyKV{MemoryStore: kvstore.NewMemoryStore()}
	s := newStore(t, kv, newClock())
	kv.failWrites = true

	_, err := s.GetByID(context.Background(), "ann1")
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 45, s.ListAll()[0].ViewCount)
}

func TestGetByID_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, kvstore.NewMemoryStore(), newClock())

	a, err := s.GetByID(ctx, "ann1")
	require.NoError(t, err)
	a.Title = "mutated"
	assert.NotEqual(t, "mutated", s.ListAll()[0].Title)
}

func TestListings(t *testing.T) {
	ctx := context.Background()
	c := newClock()
	s := newStore(t, kvstore.NewMemoryStore(), c)

	yesterday := c.now().Add(-24 * time.Hour)
	tomorrow := c.now().Add(24 * time.Hour)

	expired, err := s.Create(ctx, Draft{Title: "expired", AuthorID: "comp1", ExpiryDate: &yesterday})
	require.NoError(t, err)
	future, err := s.Create(ctx, Draft{Title: "future", AuthorID: "comp1", ExpiryDate: &tomorrow})
	require.NoError(t, err)
	hidden, err := s.Create(ctx, Draft{Title: "hidden", AuthorID: "comp1"})
	require.NoError(t, err)
	_, err = s.Update(ctx, hidden.ID, Patch{IsActive: ptr(false)})
	require.NoError(t, err)

	assert.Equal(t, []string{"ann1", "ann2", "ann3", expired.ID, future.ID}, ids(s.ListAll()))
	assert.Equal(t, []string{"ann1", "ann2", "ann3", future.ID}, ids(s.ListCurrentlyActive()))
	assert.Equal(t, []string{"ann2", expired.ID, future.ID, hidden.ID}, ids(s.ListByAuthor("comp1")))
	assert.Empty(t, s.ListByAuthor("nobody"))
}

func TestListCurrentlyActive_ExpiryBoundary(t *testing.T) {
	ctx := context.Background()
	c := newClock()
	s := newStore(t, kvstore.NewMemoryStore(), c)

	exact := c.now()
	a, err := s.Create(ctx, Draft{Title: "edge", AuthorID: "univ1", ExpiryDate: &exact})
	require.NoError(t, err)
	assert.Contains(t, ids(s.ListCurrentlyActive()), a.ID)

	c.t = c.t.Add(time.Nanosecond)
	assert.NotContains(t, ids(s.ListCurrentlyActive()), a.ID)
}

func TestStatusAt_Precedence(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		a    Announcement
		want DerivedStatus
	}{
		{"draft beats everything", Announcement{Status: StatusDraft, IsActive: false, ExpiryDate: &past}, DerivedDraft},
		{"inactive beats expired", Announcement{Status: StatusActive, IsActive: false, ExpiryDate: &past}, DerivedInactive},
		{"expired", Announcement{Status: StatusActive, IsActive: true, ExpiryDate: &past}, DerivedExpired},
		{"future expiry", Announcement{Status: StatusActive, IsActive: true, ExpiryDate: &future}, DerivedActive},
		{"no expiry", Announcement{Status: StatusActive, IsActive: true}, DerivedActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusAt(tt.a, now))
		})
	}
}

func TestExpiredAnnouncementScenario(t *testing.T) {
	ctx := context.Background()
	c := newClock()
	s := newStore(t, kvstore.NewMemoryStore(), c)

	yesterday := c.now().AddDate(0, 0, -1)
	a, err := s.Create(ctx, Draft{Title: "old", AuthorID: "univ1", ExpiryDate: &yesterday})
	require.NoError(t, err)
	require.True(t, a.IsActive)
	require.Equal(t, StatusActive, a.Status)

	assert.NotContains(t, ids(s.ListCurrentlyActive()), a.ID)
	assert.Equal(t, DerivedExpired, s.DeriveStatus(a))
}

func TestListByAuthorFiltered(t *testing.T) {
	ctx := context.Background()
	c := newClock()
	s := newStore(t, kvstore.NewMemoryStore(), c)
	past := c.now().Add(-time.Hour)

	plain, err := s.Create(ctx, Draft{Title: "plain", AuthorID: "a"})
	require.NoError(t, err)
	expired, err := s.Create(ctx, Draft{Title: "expired", AuthorID: "a", ExpiryDate: &past})
	require.NoError(t, err)
	inactive, err := s.Create(ctx, Draft{Title: "inactive", AuthorID: "a"})
	require.NoError(t, err)
	_, err = s.Update(ctx, inactive.ID, Patch{IsActive: ptr(false)})
	require.NoError(t, err)
	draftOff, err := s.Create(ctx, Draft{Title: "draft off", AuthorID: "a"})
	require.NoError(t, err)
	_, err = s.Update(ctx, draftOff.ID, Patch{Status: ptr(StatusDraft), IsActive: ptr(false)})
	require.NoError(t, err)
	draftOn, err := s.Create(ctx, Draft{Title: "draft on", AuthorID: "a"})
	require.NoError(t, err)
	_, err = s.Update(ctx, draftOn.ID, Patch{Status: ptr(StatusDraft)})
	require.NoError(t, err)
	_, err = s.Create(ctx, Draft{Title: "someone else", AuthorID: "b"})
	require.NoError(t, err)

	tests := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{plain.ID, expired.ID, inactive.ID, draftOff.ID, draftOn.ID}},
		{FilterActive, []string{plain.ID, expired.ID}},
		{FilterExpired, []string{expired.ID, inactive.ID, draftOff.ID}},
		{FilterDraft, []string{draftOff.ID, draftOn.ID}},
		{Filter("bogus"), []string{plain.ID, expired.ID, inactive.ID, draftOff.ID, draftOn.ID}},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(s.ListByAuthorFiltered("a", tt.filter)))
		})
	}

	assert.Equal(t, AuthorStatistics{Total: 5, Active: 2}, s.AuthorStatistics("a"))
	assert.Equal(t, AuthorStatistics{Total: 1, Active: 1}, s.AuthorStatistics("b"))
	assert.Equal(t, AuthorStatistics{}, s.AuthorStatistics("nobody"))
}

func TestFilter_Valid(t *testing.T) {
	for _, f := range []Filter{FilterAll, FilterActive, FilterExpired, FilterDraft} {
		assert.True(t, f.Valid(), f)
	}
	assert.False(t, Filter("").Valid())
	assert.False(t, Filter("inactive").Valid())
}

func TestStatistics(t *testing.T) {
	ctx := context.Background()
	kyiv := time.FixedZone("EET", 2*60*60)
	// 00:30 local on March 11 is still March 10 in UTC.
	c := &clock{t: time.Date(2025, time.March, 11, 0, 30, 0, 0, kyiv)}
	s := newStore(t, kvstore.NewMemoryStore(), c)

	_, err := s.Create(ctx, Draft{Title: "today", AuthorID: "univ1"})
	require.NoError(t, err)
	past := c.now().Add(-time.Minute)
	_, err = s.Create(ctx, Draft{Title: "expired today", AuthorID: "univ1", ExpiryDate: &past})
	require.NoError(t, err)
	_, err = s.Update(ctx, "ann1", Patch{IsActive: ptr(false)})
	require.NoError(t, err)

	got := s.Statistics(kindCounts{accounts.KindUniversity: 2, accounts.KindCompany: 1})
	assert.Equal(t, Statistics{
		TotalAnnouncements:  5,
		ActiveAnnouncements: 3,
		TotalUniversities:   2,
		TotalCompanies:      1,
		TodayAnnouncements:  2,
	}, got)

	c.t = c.t.Add(24 * time.Hour)
	assert.Zero(t, s.Statistics(kindCounts{}).TodayAnnouncements)
}

func TestCategoryAndFormat_Valid(t *testing.T) {
	assert.True(t, CategoryConference.Valid())
	assert.False(t, Category("party").Valid())
	assert.True(t, FormatHybrid.Valid())
	assert.False(t, Format("").Valid())
}
