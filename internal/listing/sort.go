package listing

import (
	"cmp"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is the order of a sort.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

// SortState is the active sort column and direction.
type SortState struct {
	Key       string
	Direction Direction
}

// Request returns the state after the user asks to sort by key: the same
// key flips ascending to descending, anything else sorts ascending.
func (s SortState) Request(key string) SortState {
	if s.Key == key && s.Direction == Ascending {
		return SortState{Key: key, Direction: Descending}
	}
	return SortState{Key: key, Direction: Ascending}
}

// Columns maps sort keys to the value projected from each record. Supported
// value types are string, int, float64 and time.Time.
type Columns[T any] map[string]func(T) any

// Sort returns a stably sorted copy of records. An unknown key returns the
// records in their original order.
func Sort[T any](records []T, s SortState, cols Columns[T]) []T {
	out := slices.Clone(records)
	project, ok := cols[s.Key]
	if !ok {
		return out
	}

	collator := collate.New(language.BrazilianPortuguese)
	slices.SortStableFunc(out, func(a, b T) int {
		c := compareValues(collator, project(a), project(b))
		if s.Direction == Descending {
			return -c
		}
		return c
	})
	return out
}

func compareValues(collator *collate.Collator, a, b any) int {
	switch av := a.(type) {
	case string:
		return collator.CompareString(av, b.(string))
	case int:
		return cmp.Compare(av, b.(int))
	case float64:
		return cmp.Compare(av, b.(float64))
	case time.Time:
		return av.Compare(b.(time.Time))
	default:
		return 0
	}
}
