package report

import (
	"time"

	"github.com/greengirl/dashboard/internal/listing"
)

// Period selects the records a report covers, relative to "now".
type Period string

const (
	PeriodAll      Period = "all"
	PeriodWeek     Period = "week"
	PeriodMonth    Period = "month"
	PeriodQuarter  Period = "quarter"
	PeriodSemester Period = "semester"
	PeriodYear     Period = "year"
)

var periodLabels = map[Period]string{
	PeriodAll:      "Todo o período",
	PeriodWeek:     "Última semana",
	PeriodMonth:    "Este mês",
	PeriodQuarter:  "Este trimestre",
	PeriodSemester: "Este semestre",
	PeriodYear:     "Este ano",
}

// ParsePeriod parses a period name. The empty string means PeriodAll.
func ParsePeriod(s string) (Period, bool) {
	if s == "" {
		return PeriodAll, true
	}
	p := Period(s)
	_, ok := periodLabels[p]
	return p, ok
}

// Label is the human-readable name of the period.
func (p Period) Label() string {
	return periodLabels[p]
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether a record dated d falls inside the period at now.
func (p Period) Contains(d, now time.Time) bool {
	day := calendarDay(d)
	today := calendarDay(now)

	switch p {
	case PeriodWeek:
		return !day.Before(today.AddDate(0, 0, -7))
	case PeriodMonth:
		return day.Year() == today.Year() && day.Month() == today.Month()
	case PeriodQuarter:
		firstMonth := time.Month((int(today.Month())-1)/3*3 + 1)
		return !day.Before(time.Date(today.Year(), firstMonth, 1, 0, 0, 0, 0, time.UTC))
	case PeriodSemester:
		firstMonth := time.January
		if today.Month() >= time.July {
			firstMonth = time.July
		}
		return !day.Before(time.Date(today.Year(), firstMonth, 1, 0, 0, 0, 0, time.UTC))
	case PeriodYear:
		return day.Year() == today.Year()
	default:
		return true
	}
}

// FilterPeriod keeps the records inside the period, in input order.
func FilterPeriod[T listing.Record](records []T, p Period, now time.Time) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if p.Contains(r.RecordDate(), now) {
			out = append(out, r)
		}
	}
	return out
}
