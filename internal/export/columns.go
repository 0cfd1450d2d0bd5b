package export

import (
	"slices"
	"strconv"

	"github.com/greengirl/dashboard/internal/activity"
	"github.com/greengirl/dashboard/internal/material"
	"github.com/greengirl/dashboard/internal/report"
)

// MaterialColumns is the column layout of the materials export.
var MaterialColumns = []Column[material.WithAuthor]{
	{Header: "Data", Value: func(m material.WithAuthor) string { return report.FormatDate(m.Date) }},
	{Header: "Projeto", Value: func(m material.WithAuthor) string { return m.Project }},
	{Header: "Tipo", Value: func(m material.WithAuthor) string { return string(m.Type) }},
	{Header: "Quantidade", Value: func(m material.WithAuthor) string { return formatQuantity(m.Quantity) }},
	{Header: "Unidade", Value: func(m material.WithAuthor) string { return m.Unit }},
	{Header: "Uso", Value: func(m material.WithAuthor) string { return string(m.Usage) }},
	{Header: "Registrado Por", Value: func(m material.WithAuthor) string { return authorName(m.CreatedBy) }},
}

// ActivityColumns is the column layout of the activities export.
var ActivityColumns = []Column[activity.WithAuthor]{
	{Header: "Data", Value: func(a activity.WithAuthor) string { return report.FormatDate(a.Date) }},
	{Header: "Projeto", Value: func(a activity.WithAuthor) string { return a.Project }},
	{Header: "Tipo", Value: func(a activity.WithAuthor) string { return a.Type }},
	{Header: "Descrição", Value: func(a activity.WithAuthor) string { return a.Description }},
	{Header: "Registrado Por", Value: func(a activity.WithAuthor) string { return authorName(a.CreatedBy) }},
	{Header: "Participantes", Value: func(a activity.WithAuthor) string { return strconv.Itoa(a.Participants) }},
}

// materialDisplayColumns is MaterialColumns with quantities grouped the pt-BR
// way, for documents that are read rather than re-imported.
var materialDisplayColumns = func() []Column[material.WithAuthor] {
	cols := slices.Clone(MaterialColumns)
	for i := range cols {
		if cols[i].Header == "Quantidade" {
			cols[i].Value = func(m material.WithAuthor) string { return report.FormatNumber(m.Quantity) }
		}
	}
	return cols
}()

// formatQuantity writes the shortest decimal that parses back to v.
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func authorName(name string) string {
	if name == "" {
		return "N/A"
	}
	return name
}
