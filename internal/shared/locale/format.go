// Package locale formats quantities for Spanish-speaking readers of emails
// and certificate documents.
package locale

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

type Formatter struct {
	printer *message.Printer
}

// NewFormatter returns a formatter for tag, e.g. "es" or "es-MX". An
// unparsable tag falls back to generic Spanish.
func NewFormatter(tag string) *Formatter {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.Spanish
	}
	return &Formatter{printer: message.NewPrinter(t)}
}

func (f *Formatter) Int(n int) string {
	return f.printer.Sprint(number.Decimal(n))
}

// Decimal renders d with exactly places fraction digits.
func (f *Formatter) Decimal(d decimal.Decimal, places int32) string {
	v, _ := d.Round(places).Float64()
	return f.printer.Sprint(number.Decimal(v, number.MinFractionDigits(int(places)), number.MaxFractionDigits(int(places))))
}

func (f *Formatter) Percent(d decimal.Decimal) string {
	return f.Decimal(d, 2) + " %"
}

// OptionalDecimal renders a missing reading as "-".
func (f *Formatter) OptionalDecimal(d *decimal.Decimal, places int32, unit string) string {
	if d == nil {
		return "-"
	}
	return f.Decimal(*d, places) + " " + unit
}

// Date renders t as "15 de enero de 2026".
func (f *Formatter) Date(t time.Time) string {
	return f.printer.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}
