package report

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = language.BrazilianPortuguese

// FormatNumber renders v with Brazilian grouping and decimal separators and
// at most two fraction digits.
func FormatNumber(v float64) string {
	return message.NewPrinter(ptBR).Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

var monthAbbrev = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// MonthLabel renders t as a short month label such as "jan/24".
func MonthLabel(t time.Time) string {
	return monthAbbrev[t.Month()-1] + "/" + t.Format("06")
}

// FormatDate renders t as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
