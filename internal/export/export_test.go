package export_test

import (
	"time"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/material"
	"github.com/greengirl/dashboard/internal/report"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleMaterials() []material.WithAuthor {
	return []material.WithAuthor{
		{
			Material: material.Material{
				Project: "Horta Comunitária", Type: material.Oil, Quantity: 10, Unit: "L",
				Usage: material.Received, Date: day(2024, time.March, 5),
			},
			CreatedBy: "Ana",
		},
		{
			Material: material.Material{
				Project: "Escola Verde", Type: material.Dry, Quantity: 2.5, Unit: "kg",
				Usage: material.Donated, Date: day(2024, time.March, 10),
			},
		},
	}
}

func sampleActivities() []activity.WithAuthor {
	return []activity.WithAuthor{
		{
			Activity: activity.Activity{
				Project: "Escola Verde", Type: "Oficina", Description: "Oficina de sabão, turma A",
				Participants: 12, Date: day(2024, time.March, 7),
			},
			CreatedBy: "Bia",
		},
	}
}

func sampleSummary() report.Summary {
	return report.Summary{
		Period:             report.PeriodAll,
		PeriodLabel:        report.PeriodAll.Label(),
		GeneratedAt:        day(2024, time.March, 15),
		Totals:             report.Totals{material.Oil: 10},
		ActivityCount:      1,
		Participants:       12,
		WaterProtected:     250000,
		WaterProtectedText: "250.000",
		Activities:         sampleActivities(),
		Materials:          sampleMaterials(),
	}
}
