package report

import (
	"math"

	"github.com/greengirl/dashboard/internal/material"
)

// Storage fill thresholds, in percent.
const (
	WarningThreshold  = 75.0
	CriticalThreshold = 90.0
)

// Level classifies how full a storage area is.
type Level string

const (
	LevelNormal   Level = "normal"
	LevelWarning  Level = "warning"
	LevelCritical Level = "critical"
)

// Percentage is current/capacity as a percentage capped at 100. A zero
// capacity yields 0.
func Percentage(current, capacity float64) float64 {
	if capacity <= 0 {
		return 0
	}
	return math.Min(current/capacity*100, 100)
}

// LevelFor maps a fill percentage to its level.
func LevelFor(pct float64) Level {
	switch {
	case pct > CriticalThreshold:
		return LevelCritical
	case pct > WarningThreshold:
		return LevelWarning
	default:
		return LevelNormal
	}
}

// Gauge is the storage indicator of one material type.
type Gauge struct {
	Type       material.Type `json:"type"`
	Unit       string        `json:"unit"`
	Current    float64       `json:"current"`
	Capacity   float64       `json:"capacity"`
	Percentage float64       `json:"percentage"`
	Level      Level         `json:"level"`
}

// Gauges computes the on-hand gauge of every material type.
func Gauges(ms []material.WithAuthor, capacities map[material.Type]float64) []Gauge {
	out := make([]Gauge, 0, len(material.Types))
	for _, typ := range material.Types {
		current := OnHand(ms, typ)
		capacity := capacities[typ]
		pct := Percentage(current, capacity)
		out = append(out, Gauge{
			Type:       typ,
			Unit:       typ.Unit(),
			Current:    current,
			Capacity:   capacity,
			Percentage: pct,
			Level:      LevelFor(pct),
		})
	}
	return out
}
