package report_test

import (
	"time"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/material"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mat(typ material.Type, qty float64, usage material.Usage, d time.Time) material.WithAuthor {
	return material.WithAuthor{Material: material.Material{
		Project: "Escola Verde", Type: typ, Quantity: qty, Unit: typ.Unit(), Usage: usage, Date: d,
	}}
}

func act(project string, participants int, d time.Time) activity.WithAuthor {
	return activity.WithAuthor{Activity: activity.Activity{
		Project: project, Type: "Oficina", Participants: participants, Date: d,
	}}
}
