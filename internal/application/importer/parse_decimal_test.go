package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal_FormatosLocales(t *testing.T) {
	casos := []struct {
		entrada string
		want    string
	}{
		{"5000000", "5000000"},
		{"5.000.000", "5000000"},
		{"5,000,000", "5000000"},
		{"300.000", "300000"},
		{"300,000", "300000"},
		{"850.000", "850000"},
		{"1.5", "1.5"},
		{"1,5", "1.5"},
		{"3500000,50", "3500000.5"},
		{"35937.5", "35937.5"},
		{"0.125", "0.125"},
		{"1234.567", "1234.567"},
		{"1.234.567,89", "1234567.89"},
		{"1,234,567.89", "1234567.89"},
		{"-300.000", "-300000"},
		{" 160 ", "160"},
	}
	for _, c := range casos {
		t.Run(c.entrada, func(t *testing.T) {
			got, err := parseDecimal(c.entrada)
			require.NoError(t, err)
			assert.Truef(t, decimal.RequireFromString(c.want).Equal(got), "esperado %s, obtenido %s", c.want, got)
		})
	}
}

func TestParseDecimal_Invalidos(t *testing.T) {
	for _, entrada := range []string{"", "abc", "1.23.4", "5.00.000", "1,2,3", "1.234.5,6,7", "1,5.", "12,34.5.6"} {
		t.Run(entrada, func(t *testing.T) {
			_, err := parseDecimal(entrada)
			assert.Error(t, err)
		})
	}
}
