package report

import (
	"time"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/material"
)

// Summary is the full report for one period.
type Summary struct {
	Period             Period              `json:"period"`
	PeriodLabel        string              `json:"periodLabel"`
	GeneratedAt        time.Time           `json:"generatedAt"`
	Totals             Totals              `json:"totals"`
	ActivityCount      int                 `json:"activityCount"`
	Participants       int                 `json:"participants"`
	WaterProtected     float64             `json:"waterProtected"`
	WaterProtectedText string              `json:"waterProtectedText"`
	Distribution       []Slice             `json:"distribution"`
	ByMonth            []MonthCount        `json:"activitiesByMonth"`
	ByProject          []ProjectCount      `json:"activitiesByProject"`
	MonthlyCollection  []MonthlyCollection `json:"monthlyCollection"`

	Activities []activity.WithAuthor `json:"-"`
	Materials  []material.WithAuthor `json:"-"`
}

// Build filters both record lists to the period and aggregates them.
func Build(materials []material.WithAuthor, activities []activity.WithAuthor, p Period, now time.Time) Summary {
	ms := FilterPeriod(materials, p, now)
	acts := FilterPeriod(activities, p, now)

	totals := ReceivedTotals(ms)
	water := WaterProtected(totals)

	participants := 0
	for _, a := range acts {
		participants += a.Participants
	}

	return Summary{
		Period:             p,
		PeriodLabel:        p.Label(),
		GeneratedAt:        now,
		Totals:             totals,
		ActivityCount:      len(acts),
		Participants:       participants,
		WaterProtected:     water,
		WaterProtectedText: FormatNumber(water),
		Distribution:       Distribution(totals),
		ByMonth:            ActivitiesByMonth(acts),
		ByProject:          ActivitiesByProject(acts),
		MonthlyCollection:  MonthlyCollections(ms),
		Activities:         acts,
		Materials:          ms,
	}
}

// Dashboard holds the cards and charts of the landing page.
type Dashboard struct {
	Totals             Totals       `json:"totals"`
	ActivityCount      int          `json:"activityCount"`
	WaterProtected     float64      `json:"waterProtected"`
	WaterProtectedText string       `json:"waterProtectedText"`
	ByMonth            []MonthCount `json:"activitiesByMonth"`
	Distribution       []Slice      `json:"distribution"`
	Gauges             []Gauge      `json:"gauges"`
}

// BuildDashboard aggregates every record for the landing page.
func BuildDashboard(materials []material.WithAuthor, activities []activity.WithAuthor, capacities map[material.Type]float64) Dashboard {
	totals := ReceivedTotals(materials)
	water := WaterProtected(totals)

	return Dashboard{
		Totals:             totals,
		ActivityCount:      len(activities),
		WaterProtected:     water,
		WaterProtectedText: FormatNumber(water),
		ByMonth:            ActivitiesByMonth(activities),
		Distribution:       Distribution(totals),
		Gauges:             Gauges(materials, capacities),
	}
}
