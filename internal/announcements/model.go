// Package announcements owns collaboration postings: their lifecycle,
// derived status, view counting and aggregate statistics.
package announcements

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/collabboard/internal/accounts"
)

type Category string

const (
	CategoryLecture    Category = "lecture"
	CategoryWorkshop   Category = "workshop"
	CategorySeminar    Category = "seminar"
	CategoryConference Category = "conference"
	CategoryInternship Category = "internship"
	CategoryOther      Category = "other"
)

// Categories lists the known categories in display order.
var Categories = []Category{
	CategoryLecture, CategoryWorkshop, CategorySeminar,
	CategoryConference, CategoryInternship, CategoryOther,
}

func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

type Format string

const (
	FormatOffline Format = "offline"
	FormatOnline  Format = "online"
	FormatHybrid  Format = "hybrid"
)

var Formats = []Format{FormatOffline, FormatOnline, FormatHybrid}

func (f Format) Valid() bool {
	return slices.Contains(Formats, f)
}

// Status is the moderation state stored on the record.
type Status string

const (
	StatusActive Status = "active"
	StatusDraft  Status = "draft"
)

// DerivedStatus classifies an announcement for display.
type DerivedStatus string

const (
	DerivedDraft    DerivedStatus = "draft"
	DerivedInactive DerivedStatus = "inactive"
	DerivedExpired  DerivedStatus = "expired"
	DerivedActive   DerivedStatus = "active"
)

// Filter selects an author's announcements on the management view. The
// filters overlap: an inactive announcement matches both FilterExpired and,
// when it is a draft, FilterDraft.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterActive  Filter = "active"
	FilterExpired Filter = "expired"
	FilterDraft   Filter = "draft"
)

func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterExpired, FilterDraft:
		return true
	}
	return false
}

type Announcement struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Category         Category      `json:"category"`
	Description      string        `json:"description"`
	AuthorID         string        `json:"authorId"`
	OrganizationKind accounts.Kind `json:"organizationType"`
	EventDate        string        `json:"eventDate"`
	EventTime        string        `json:"eventTime"`
	Duration         string        `json:"duration"`
	Location         string        `json:"location"`
	Format           Format        `json:"format"`
	TargetAudience   string        `json:"targetAudience"`
	Requirements     string        `json:"requirements"`
	Compensation     string        `json:"compensation"`
	ContactEmail     string        `json:"contactEmail"`
	ContactPhone     string        `json:"contactPhone"`
	Urgent           bool          `json:"urgent"`
	ExpiryDate       *time.Time    `json:"expiryDate,omitempty"`
	Status           Status        `json:"status"`
	IsActive         bool          `json:"isActive"`
	ViewCount        int           `json:"viewCount"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

func (a Announcement) clone() Announcement {
	if a.ExpiryDate != nil {
		e := *a.ExpiryDate
		a.ExpiryDate = &e
	}
	return a
}

func (a Announcement) expiredAt(now time.Time) bool {
	return a.ExpiryDate != nil && a.ExpiryDate.Before(now)
}

// StatusAt derives the display status at now. A draft is always reported as
// draft, then an inactive record as inactive, then a past expiry as expired.
func StatusAt(a Announcement, now time.Time) DerivedStatus {
	switch {
	case a.Status == StatusDraft:
		return DerivedDraft
	case !a.IsActive:
		return DerivedInactive
	case a.expiredAt(now):
		return DerivedExpired
	default:
		return DerivedActive
	}
}

// Draft is the content of a new announcement. Author fields are filled by
// the caller from the session.
type Draft struct {
	Title            string
	Category         Category
	Description      string
	AuthorID         string
	OrganizationKind accounts.Kind
	EventDate        string
	EventTime        string
	Duration         string
	Location         string
	Format           Format
	TargetAudience   string
	Requirements     string
	Compensation     string
	ContactEmail     string
	ContactPhone     string
	Urgent           bool
	ExpiryDate       *time.Time
}

// Patch is a shallow update. Nil fields are kept. ClearExpiry removes the
// expiry date and wins over ExpiryDate.
type Patch struct {
	Title          *string
	Category       *Category
	Description    *string
	EventDate      *string
	EventTime      *string
	Duration       *string
	Location       *string
	Format         *Format
	TargetAudience *string
	Requirements   *string
	Compensation   *string
	ContactEmail   *string
	ContactPhone   *string
	Urgent         *bool
	ExpiryDate     *time.Time
	ClearExpiry    bool
	Status         *Status
	IsActive       *bool
}

func (p Patch) apply(a *Announcement) {
	set(&a.Title, p.Title)
	set(&a.Category, p.Category)
	set(&a.Description, p.Description)
	set(&a.EventDate, p.EventDate)
	set(&a.EventTime, p.EventTime)
	set(&a.Duration, p.Duration)
	set(&a.Location, p.Location)
	set(&a.Format, p.Format)
	set(&a.TargetAudience, p.TargetAudience)
	set(&a.Requirements, p.Requirements)
	set(&a.Compensation, p.Compensation)
	set(&a.ContactEmail, p.ContactEmail)
	set(&a.ContactPhone, p.ContactPhone)
	set(&a.Urgent, p.Urgent)
	set(&a.Status, p.Status)
	set(&a.IsActive, p.IsActive)
	switch {
	case p.ClearExpiry:
		a.ExpiryDate = nil
	case p.ExpiryDate != nil:
		e := *p.ExpiryDate
		a.ExpiryDate = &e
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Statistics is the board-wide summary.
type Statistics struct {
	TotalAnnouncements  int `json:"totalAnnouncements"`
	ActiveAnnouncements int `json:"activeAnnouncements"`
	TotalUniversities   int `json:"totalUniversities"`
	TotalCompanies      int `json:"totalCompanies"`
	TodayAnnouncements  int `json:"todayAnnouncements"`
}

// AuthorStatistics summarises one author's announcements.
type AuthorStatistics struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}
