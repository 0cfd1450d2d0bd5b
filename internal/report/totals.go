// Package report derives dashboard and report metrics from record lists.
package report

import "github.com/greengirl/dashboard/internal/material"

// Totals holds one quantity per material type.
type Totals map[material.Type]float64

// ReceivedTotals sums the quantity of every received material by type.
// All known types are present, zero when nothing was received.
func ReceivedTotals(ms []material.WithAuthor) Totals {
	t := Totals{}
	for _, typ := range material.Types {
		t[typ] = 0
	}
	for _, m := range ms {
		if m.Usage == material.Received {
			t[m.Type] += m.Quantity
		}
	}
	return t
}

// OnHand is the quantity of typ received minus the quantity used or
// donated, never below zero.
func OnHand(ms []material.WithAuthor, typ material.Type) float64 {
	var received, consumed float64
	for _, m := range ms {
		if m.Type != typ {
			continue
		}
		if m.Usage == material.Received {
			received += m.Quantity
		} else {
			consumed += m.Quantity
		}
	}
	return max(received-consumed, 0)
}

// Slice is one segment of the distribution chart.
type Slice struct {
	Type  material.Type `json:"type"`
	Value float64       `json:"value"`
	Unit  string        `json:"unit"`
}

// Distribution returns the non-zero totals in display order.
func Distribution(t Totals) []Slice {
	out := []Slice{}
	for _, typ := range material.Types {
		if v := t[typ]; v > 0 {
			out = append(out, Slice{Type: typ, Value: v, Unit: typ.Unit()})
		}
	}
	return out
}
