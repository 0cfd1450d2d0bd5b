package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greengirl/dashboard/internal/material"
	"github.com/greengirl/dashboard/internal/report"
)

func TestReceivedTotals(t *testing.T) {
	ms := []material.WithAuthor{
		mat(material.Oil, 10, material.Received, date(2024, 1, 1)),
		mat(material.Oil, 5.5, material.Received, date(2024, 1, 2)),
		mat(material.Oil, 3, material.Donated, date(2024, 1, 3)),
		mat(material.Dry, 2, material.Received, date(2024, 1, 4)),
	}

	totals := report.ReceivedTotals(ms)

	assert.Equal(t, report.Totals{material.Oil: 15.5, material.Dry: 2, material.Organic: 0}, totals)
}

func TestOnHand(t *testing.T) {
	ms := []material.WithAuthor{
		mat(material.Oil, 10, material.Received, date(2024, 1, 1)),
		mat(material.Oil, 3, material.UsedInWorkshop, date(2024, 1, 2)),
		mat(material.Oil, 2, material.Donated, date(2024, 1, 3)),
		mat(material.Dry, 1, material.Received, date(2024, 1, 3)),
		mat(material.Dry, 4, material.Donated, date(2024, 1, 4)),
	}

	assert.Equal(t, 5.0, report.OnHand(ms, material.Oil))
	assert.Equal(t, 0.0, report.OnHand(ms, material.Dry), "clamped at zero")
	assert.Equal(t, 0.0, report.OnHand(ms, material.Organic))
}

func TestDistribution_OmitsZero(t *testing.T) {
	slices := report.Distribution(report.Totals{material.Oil: 4, material.Dry: 0, material.Organic: 7})

	assert.Equal(t, []report.Slice{
		{Type: material.Oil, Value: 4, Unit: "L"},
		{Type: material.Organic, Value: 7, Unit: "kg"},
	}, slices)
}

func TestWaterProtected(t *testing.T) {
	water := report.WaterProtected(report.Totals{material.Oil: 120.5})

	assert.Equal(t, 3012500.0, water)
	assert.Equal(t, "3.012.500", report.FormatNumber(water))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", report.FormatNumber(0))
	assert.Equal(t, "1.234,5", report.FormatNumber(1234.5))
	assert.Equal(t, "25.000", report.FormatNumber(25000))
}
