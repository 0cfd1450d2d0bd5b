package material

import (
	"time"

	"github.com/google/uuid"
)

// Type is the waste stream a material record belongs to.
type Type string

const (
	Oil     Type = "Óleo"
	Dry     Type = "Secos"
	Organic Type = "Orgânicos"
)

// Types lists every material type in display order.
var Types = []Type{Oil, Dry, Organic}

// Valid reports whether t is a known material type.
func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// Unit is the measurement unit implied by the type: liters for oil, kilograms otherwise.
func (t Type) Unit() string {
	if t == Oil {
		return "L"
	}
	return "kg"
}

// Usage says what happened to a quantity of material.
type Usage string

const (
	Received       Usage = "Recebido"
	UsedInWorkshop Usage = "Usado em Oficina"
	Donated        Usage = "Doado"
)

// Usages lists every usage value in display order.
var Usages = []Usage{Received, UsedInWorkshop, Donated}

// Valid reports whether u is a known usage.
func (u Usage) Valid() bool {
	return u == Received || u == UsedInWorkshop || u == Donated
}

// Material represents a row in the materials table.
type Material struct {
	ID        uuid.UUID
	Project   string
	Type      Type
	Quantity  float64
	Unit      string
	Usage     Usage
	Date      time.Time
	UserID    uuid.UUID
	CreatedAt time.Time
}

// WithAuthor is a material joined with the display name of the profile that
// recorded it. CreatedBy is empty when that profile no longer exists.
type WithAuthor struct {
	Material
	CreatedBy string
}

func (m WithAuthor) RecordDate() time.Time { return m.Date }
func (m WithAuthor) RecordProject() string { return m.Project }
func (m WithAuthor) RecordType() string    { return string(m.Type) }
func (m WithAuthor) RecordOwner() string   { return m.UserID.String() }

// UpdateFields holds the mutable fields of a material. Nil fields are not
// updated. The ID and date never change after creation.
type UpdateFields struct {
	Project  *string
	Type     *Type
	Quantity *float64
	Usage    *Usage
}
