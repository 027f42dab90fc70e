package format

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slug normaliza un nombre para usarlo en nombres de archivo:
// minúsculas, sin tildes y con guiones bajos entre palabras.
// Ej: "Migración ERP Ñandutí" → "migracion_erp_nanduti".
func Slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plano, _, err := transform.String(t, s)
	if err != nil {
		plano = s
	}

	var b strings.Builder
	guion := false
	for _, r := range strings.ToLower(plano) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			guion = false
		case !guion && b.Len() > 0:
			b.WriteByte('_')
			guion = true
		}
	}
	out := strings.TrimSuffix(b.String(), "_")
	if out == "" {
		return "proyecto"
	}
	return out
}
