package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/greengirl/dashboard/internal/material"
	"github.com/greengirl/dashboard/internal/report"
)

const (
	pdfMargin     = 15.0
	pdfRowHeight  = 7.0
	pdfPageBottom = 297.0 - 20.0
)

type pdfTable struct {
	headers []string
	widths  []float64
	rows    [][]string
}

// WriteReportPDF renders the report with summary cards, storage gauges and
// the activity and material tables, breaking onto new pages as needed.
func WriteReportPDF(w io.Writer, s report.Summary, gauges []report.Gauge) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d/{nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr("Relatório GreenGirl"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Período: %s", s.PeriodLabel)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Gerado em: %s", report.FormatDate(s.GeneratedAt))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	section(pdf, tr, "Resumo")
	lines := []string{
		fmt.Sprintf("Atividades: %d", s.ActivityCount),
		fmt.Sprintf("Participantes: %d", s.Participants),
	}
	for _, typ := range material.Types {
		lines = append(lines, fmt.Sprintf("%s recebido: %s %s", typ, report.FormatNumber(s.Totals[typ]), typ.Unit()))
	}
	lines = append(lines, fmt.Sprintf("Água protegida: %s litros", s.WaterProtectedText))
	for _, l := range lines {
		pdf.CellFormat(0, 6, tr(l), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	if len(gauges) > 0 {
		section(pdf, tr, "Armazenamento")
		drawTable(pdf, tr, gaugeTable(gauges))
		pdf.Ln(4)
	}

	section(pdf, tr, "Atividades")
	drawTable(pdf, tr, recordTable(s.Activities, ActivityColumns, []float64{22, 32, 28, 50, 30, 18}))
	pdf.Ln(4)

	section(pdf, tr, "Materiais")
	drawTable(pdf, tr, recordTable(s.Materials, materialDisplayColumns, []float64{22, 38, 24, 24, 16, 28, 28}))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func section(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	ensureSpace(pdf, 3*pdfRowHeight)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func ensureSpace(pdf *fpdf.Fpdf, h float64) bool {
	if pdf.GetY()+h > pdfPageBottom {
		pdf.AddPage()
		return true
	}
	return false
}

func gaugeTable(gauges []report.Gauge) pdfTable {
	t := pdfTable{
		headers: []string{"Tipo", "Atual", "Capacidade", "Ocupação", "Nível"},
		widths:  []float64{36, 36, 36, 36, 36},
	}
	for _, g := range gauges {
		t.rows = append(t.rows, []string{
			string(g.Type),
			report.FormatNumber(g.Current) + " " + g.Unit,
			report.FormatNumber(g.Capacity) + " " + g.Unit,
			strconv.FormatFloat(g.Percentage, 'f', 1, 64) + "%",
			string(g.Level),
		})
	}
	return t
}

func recordTable[T any](records []T, columns []Column[T], widths []float64) pdfTable {
	t := pdfTable{widths: widths}
	for _, c := range columns {
		t.headers = append(t.headers, c.Header)
	}
	for _, r := range records {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = c.Value(r)
		}
		t.rows = append(t.rows, row)
	}
	return t
}

func drawTable(pdf *fpdf.Fpdf, tr func(string) string, t pdfTable) {
	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(46, 125, 50)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range t.headers {
			pdf.CellFormat(t.widths[i], pdfRowHeight, tr(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
	}

	header()
	if len(t.rows) == 0 {
		pdf.CellFormat(sum(t.widths), pdfRowHeight, tr("Nenhum registro"), "1", 1, "C", false, 0, "")
		return
	}

	for _, row := range t.rows {
		if ensureSpace(pdf, pdfRowHeight) {
			header()
		}
		for i, cell := range row {
			pdf.CellFormat(t.widths[i], pdfRowHeight, truncate(pdf, tr(cell), t.widths[i]-2), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// truncate shortens an already translated string to fit width.
func truncate(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}

func sum(fs []float64) float64 {
	var total float64
	for _, f := range fs {
		total += f
	}
	return total
}
