package export_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/export"
	"github.com/greengirl/dashboard/internal/material"
	"github.com/greengirl/dashboard/internal/report"
)

func TestWriteReportPDF(t *testing.T) {
	s := sampleSummary()
	gauges := report.Gauges(s.Materials, map[material.Type]float64{
		material.Oil: 1000, material.Dry: 500, material.Organic: 200,
	})
	var buf bytes.Buffer

	err := export.WriteReportPDF(&buf, s, gauges)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWriteReportPDF_ManyRowsSpansPages(t *testing.T) {
	s := sampleSummary()
	s.Activities = nil
	for i := range 120 {
		s.Activities = append(s.Activities, activity.WithAuthor{Activity: activity.Activity{
			Project:      fmt.Sprintf("Projeto %d", i),
			Type:         "Palestra",
			Description:  "Uma descrição bastante longa que não cabe na coluna da tabela do relatório",
			Participants: i,
			Date:         time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
		}})
	}
	var small, large bytes.Buffer

	require.NoError(t, export.WriteReportPDF(&small, sampleSummary(), nil))
	require.NoError(t, export.WriteReportPDF(&large, s, nil))

	assert.Greater(t, large.Len(), small.Len())
}

func TestWriteReportPDF_EmptyReport(t *testing.T) {
	var buf bytes.Buffer

	err := export.WriteReportPDF(&buf, report.Summary{PeriodLabel: report.PeriodWeek.Label()}, nil)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
