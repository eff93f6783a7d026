package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar format accepted for date-valued fields.
const DateLayout = "2006-01-02"

// Work type and publisher defaults for deposited theses.
const (
	WorkTypeThesis   = "Thesis"
	DefaultPublisher = "University of Virginia"
)

// Work is a deposited scholarly record.
type Work struct {
	ID         uuid.UUID
	Identifier string // persistent identifier; empty until minted

	Title    string
	Abstract string

	AuthorEmail       string
	AuthorFirstName   string
	AuthorLastName    string
	AuthorInstitution string
	Department        string

	Depositor string
	Creator   string
	EditUsers []string

	Degree           string
	EmbargoState     EmbargoState
	EmbargoEndDate   *time.Time
	Rights           string
	Advisers         []string
	Keywords         []string
	Language         string
	RelatedLinks     []string
	SponsoringAgency string
	Notes            string
	AdminNotes       []string

	Draft      bool
	Visibility Visibility
	WorkType   string
	Publisher  string
	License    string

	DepositRequestID string
	DateCreated      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasIdentifier reports whether a persistent identifier was minted.
func (w *Work) HasIdentifier() bool { return w.Identifier != "" }

// Clone returns a deep copy; slices and the embargo date are not shared.
func (w Work) Clone() Work {
	c := w
	c.EditUsers = slices.Clone(w.EditUsers)
	c.Advisers = slices.Clone(w.Advisers)
	c.Keywords = slices.Clone(w.Keywords)
	c.RelatedLinks = slices.Clone(w.RelatedLinks)
	c.AdminNotes = slices.Clone(w.AdminNotes)
	if w.EmbargoEndDate != nil {
		d := *w.EmbargoEndDate
		c.EmbargoEndDate = &d
	}
	return c
}

// ReassignDepositor replaces the depositor and swaps edit rights in one step:
// the old depositor loses its grant and the new one gains it.
func (w *Work) ReassignDepositor(depositor string) {
	users := make([]string, 0, len(w.EditUsers)+1)
	for _, u := range w.EditUsers {
		if u != w.Depositor && u != depositor {
			users = append(users, u)
		}
	}
	w.EditUsers = append(users, depositor)
	w.Depositor = depositor
}

// AppendAdminNotes adds notes to the end of the admin notes list.
func (w *Work) AppendAdminNotes(notes ...string) {
	w.AdminNotes = append(w.AdminNotes, notes...)
}

// SetKeywords stores keywords as a set, keeping first-seen order.
func (w *Work) SetKeywords(keywords []string) {
	w.Keywords = UniqueStrings(keywords)
}

// UniqueStrings drops duplicates while keeping the order of first appearance.
func UniqueStrings(in []string) []string {
	if in == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// SameSet reports whether a and b hold the same distinct values.
func SameSet(a, b []string) bool {
	ua, ub := UniqueStrings(a), UniqueStrings(b)
	if len(ua) != len(ub) {
		return false
	}
	for _, s := range ua {
		if !slices.Contains(ub, s) {
			return false
		}
	}
	return true
}

// ParseDate parses a YYYY-MM-DD value into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a date in DateLayout; nil renders as an empty string.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// WorkFilter constrains a search-index query. Nil fields are not applied.
type WorkFilter struct {
	ID          *uuid.UUID
	Draft       *bool
	AuthorEmail *string
	CreatedOn   *time.Time
}

// IsEmpty reports whether no constraint is set.
func (f WorkFilter) IsEmpty() bool {
	return f.ID == nil && f.Draft == nil && f.AuthorEmail == nil && f.CreatedOn == nil
}
