package report

import (
	"slices"
	"time"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/material"
)

type monthKey struct {
	year  int
	month time.Month
}

func keyOf(t time.Time) monthKey {
	return monthKey{year: t.Year(), month: t.Month()}
}

func (k monthKey) label() string {
	return MonthLabel(time.Date(k.year, k.month, 1, 0, 0, 0, 0, time.UTC))
}

func (k monthKey) compare(o monthKey) int {
	if k.year != o.year {
		return k.year - o.year
	}
	return int(k.month) - int(o.month)
}

func sortedKeys[V any](m map[monthKey]V) []monthKey {
	keys := make([]monthKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, monthKey.compare)
	return keys
}

// MonthCount is the number of activities in one calendar month.
type MonthCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ActivitiesByMonth counts activities per calendar month, oldest month first.
func ActivitiesByMonth(acts []activity.WithAuthor) []MonthCount {
	counts := map[monthKey]int{}
	for _, a := range acts {
		counts[keyOf(a.Date)]++
	}

	out := make([]MonthCount, 0, len(counts))
	for _, k := range sortedKeys(counts) {
		out = append(out, MonthCount{Label: k.label(), Count: counts[k]})
	}
	return out
}

// MonthlyCollection is the quantity received per material type in one month.
type MonthlyCollection struct {
	Label  string `json:"label"`
	Totals Totals `json:"totals"`
}

// MonthlyCollections groups received materials by month, oldest first.
func MonthlyCollections(ms []material.WithAuthor) []MonthlyCollection {
	months := map[monthKey]Totals{}
	for _, m := range ms {
		if m.Usage != material.Received {
			continue
		}
		k := keyOf(m.Date)
		t, ok := months[k]
		if !ok {
			t = Totals{}
			for _, typ := range material.Types {
				t[typ] = 0
			}
			months[k] = t
		}
		t[m.Type] += m.Quantity
	}

	out := make([]MonthlyCollection, 0, len(months))
	for _, k := range sortedKeys(months) {
		out = append(out, MonthlyCollection{Label: k.label(), Totals: months[k]})
	}
	return out
}

// ProjectCount is the number of activities run for one project.
type ProjectCount struct {
	Project string `json:"project"`
	Count   int    `json:"count"`
}

// ActivitiesByProject counts activities per project in order of first appearance.
func ActivitiesByProject(acts []activity.WithAuthor) []ProjectCount {
	index := map[string]int{}
	out := []ProjectCount{}
	for _, a := range acts {
		i, ok := index[a.Project]
		if !ok {
			i = len(out)
			index[a.Project] = i
			out = append(out, ProjectCount{Project: a.Project})
		}
		out[i].Count++
	}
	return out
}
