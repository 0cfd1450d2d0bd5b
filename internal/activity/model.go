package activity

import (
	"time"

	"github.com/google/uuid"
)

// Activity represents a row in the activities table.
type Activity struct {
	ID           uuid.UUID
	Project      string
	Type         string
	Description  string
	Participants int
	Date         time.Time
	UserID       uuid.UUID
	CreatedAt    time.Time
}

// WithAuthor is an activity joined with the display name of the profile that
// recorded it. CreatedBy is empty when that profile no longer exists.
type WithAuthor struct {
	Activity
	CreatedBy string
}

func (a WithAuthor) RecordDate() time.Time { return a.Date }
func (a WithAuthor) RecordProject() string { return a.Project }
func (a WithAuthor) RecordType() string    { return a.Type }
func (a WithAuthor) RecordOwner() string   { return a.UserID.String() }

// UpdateFields holds the mutable fields of an activity. Nil fields are not updated.
type UpdateFields struct {
	Project      *string
	Type         *string
	Description  *string
	Participants *int
}
