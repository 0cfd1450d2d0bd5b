package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/greengirl/dashboard/internal/material"
	"github.com/greengirl/dashboard/internal/report"
)

// WriteReportCSV writes the full report: summary rows, a blank row, the
// activity table, a blank row and the material table.
func WriteReportCSV(w io.Writer, s report.Summary) error {
	if _, err := io.WriteString(w, BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)

	summary := [][]string{
		{"Relatório", "GreenGirl"},
		{"Período", s.PeriodLabel},
		{"Gerado em", report.FormatDate(s.GeneratedAt)},
		{"Total de Atividades", strconv.Itoa(s.ActivityCount)},
		{"Total de Participantes", strconv.Itoa(s.Participants)},
	}
	for _, typ := range material.Types {
		summary = append(summary, []string{
			fmt.Sprintf("Total %s (%s)", typ, typ.Unit()),
			formatQuantity(s.Totals[typ]),
		})
	}
	summary = append(summary, []string{"Água Protegida (L)", formatQuantity(s.WaterProtected)})

	if err := cw.WriteAll(summary); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	if err := cw.Write([]string{}); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	if err := writeTable(cw, s.Activities, ActivityColumns); err != nil {
		return err
	}
	if err := cw.Write([]string{}); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	if err := writeTable(cw, s.Materials, MaterialColumns); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
