// Package listing implements the filter, sort and paginate pipeline shared by
// every record list.
package listing

import "time"

// Record is implemented by every listable row.
type Record interface {
	RecordDate() time.Time
	RecordProject() string
	RecordType() string
	RecordOwner() string
}

// Criteria are conjunctive filters. Empty strings and nil dates match everything.
type Criteria struct {
	Project   string
	Type      string
	UserID    string
	StartDate *time.Time
	EndDate   *time.Time
}

// IsZero reports whether no filter is set.
func (c Criteria) IsZero() bool {
	return c.Project == "" && c.Type == "" && c.UserID == "" && c.StartDate == nil && c.EndDate == nil
}

// day truncates t to its calendar date, keeping the date as written in t's location.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Matches reports whether r satisfies every criterion. Dates compare by
// calendar day and both bounds are inclusive.
func (c Criteria) Matches(r Record) bool {
	if c.Project != "" && r.RecordProject() != c.Project {
		return false
	}
	if c.Type != "" && r.RecordType() != c.Type {
		return false
	}
	if c.UserID != "" && r.RecordOwner() != c.UserID {
		return false
	}

	d := day(r.RecordDate())
	if c.StartDate != nil && d.Before(day(*c.StartDate)) {
		return false
	}
	if c.EndDate != nil && d.After(day(*c.EndDate)) {
		return false
	}
	return true
}

// ApplyFilters returns the records matching c, in input order. A start date
// after the end date yields an empty result.
func ApplyFilters[T Record](records []T, c Criteria) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
