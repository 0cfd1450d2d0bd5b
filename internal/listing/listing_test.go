package listing_test

import (
	"time"

	"github.com/greengirl/dashboard/internal/listing"
)

type row struct {
	ID      int
	Project string
	Type    string
	Owner   string
	Date    time.Time
	Qty     float64
}

func (r row) RecordDate() time.Time { return r.Date }
func (r row) RecordProject() string { return r.Project }
func (r row) RecordType() string    { return r.Type }
func (r row) RecordOwner() string   { return r.Owner }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

var rowColumns = listing.Columns[row]{
	"project":  func(r row) any { return r.Project },
	"date":     func(r row) any { return r.Date },
	"quantity": func(r row) any { return r.Qty },
	"id":       func(r row) any { return r.ID },
}

func ids(rows []row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}
