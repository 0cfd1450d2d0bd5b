package validation

import (
	"net/url"
	"slices"
	"strconv"

	"github.com/google/uuid"

	"github.com/greengirl/dashboard/internal/listing"
)

// ListQuery holds the parsed list parameters of a records endpoint.
type ListQuery struct {
	Criteria listing.Criteria
	// Sort is the zero value when the request did not ask for a sort.
	Sort listing.SortState
	Page int
}

var directionAliases = map[string]listing.Direction{
	"asc":        listing.Ascending,
	"ascending":  listing.Ascending,
	"desc":       listing.Descending,
	"descending": listing.Descending,
}

// ParseListQuery reads project, type, user, startDate, endDate, sort,
// direction and page from q. sortKeys lists the accepted sort columns.
func ParseListQuery(q url.Values, sortKeys []string) (ListQuery, []FieldError) {
	var errs []FieldError
	lq := ListQuery{Page: 1}

	lq.Criteria.Project = q.Get("project")
	lq.Criteria.Type = q.Get("type")

	if user := q.Get("user"); user != "" {
		if _, err := uuid.Parse(user); err != nil {
			errs = append(errs, FieldError{Field: "user", Message: "user must be a valid UUID"})
		} else {
			lq.Criteria.UserID = user
		}
	}

	if s := q.Get("startDate"); s != "" {
		if d, err := ParseDate(s); err != nil {
			errs = append(errs, FieldError{Field: "startDate", Message: "startDate must be a date in YYYY-MM-DD format"})
		} else {
			lq.Criteria.StartDate = &d
		}
	}
	if s := q.Get("endDate"); s != "" {
		if d, err := ParseDate(s); err != nil {
			errs = append(errs, FieldError{Field: "endDate", Message: "endDate must be a date in YYYY-MM-DD format"})
		} else {
			lq.Criteria.EndDate = &d
		}
	}

	if key := q.Get("sort"); key != "" {
		if !slices.Contains(sortKeys, key) {
			errs = append(errs, FieldError{Field: "sort", Message: "sort is not a sortable column"})
		} else {
			lq.Sort = listing.SortState{Key: key, Direction: listing.Ascending}
		}
	}
	if dir := q.Get("direction"); dir != "" {
		d, ok := directionAliases[dir]
		switch {
		case !ok:
			errs = append(errs, FieldError{Field: "direction", Message: `direction must be "asc" or "desc"`})
		case lq.Sort.Key != "":
			lq.Sort.Direction = d
		}
	}

	if p := q.Get("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			errs = append(errs, FieldError{Field: "page", Message: "page must be a positive integer"})
		} else {
			lq.Page = n
		}
	}

	return lq, errs
}
