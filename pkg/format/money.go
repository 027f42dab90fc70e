// Package format da formato de presentación a montos para PDF, XLSX y respuestas HTTP.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	SimboloGuarani = "Gs."
	SimboloDolar   = "USD"
)

var printer = message.NewPrinter(language.Spanish)

// Guaranies formatea un monto en PYG sin decimales: "Gs. 27.494.414".
func Guaranies(d decimal.Decimal) string {
	return SimboloGuarani + " " + Entero(d)
}

// Dolares formatea un monto en USD con dos decimales: "USD 3.665,92".
func Dolares(d decimal.Decimal) string {
	return SimboloDolar + " " + ConDecimales(d, 2)
}

// Entero redondea a unidades y agrupa miles con punto.
func Entero(d decimal.Decimal) string {
	return printer.Sprintf("%d", d.Round(0).IntPart())
}

// ConDecimales agrupa miles con punto y usa coma decimal.
func ConDecimales(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	entero, frac, _ := strings.Cut(s, ".")
	n, _ := decimal.NewFromString(entero)
	out := printer.Sprintf("%d", n.IntPart())
	if frac != "" {
		out += "," + frac
	}
	if neg && strings.Trim(s, "0.") != "" {
		out = "-" + out
	}
	return out
}

// Porcentaje formatea una fracción o un porcentaje ya expresado: Porcentaje(25) = "25%".
func Porcentaje(d decimal.Decimal) string {
	return strings.Replace(d.Round(2).String(), ".", ",", 1) + "%"
}
