package costing

import "github.com/shopspring/decimal"

// Valores por defecto del modelo de precios.
var (
	// FactorRiesgoPorDefecto se usa cuando el proyecto no define FactorRiesgoProyecto.
	FactorRiesgoPorDefecto = decimal.RequireFromString("1.1")
	// TasaIVA tasa de IVA global (10%). No es configurable por proyecto.
	TasaIVA = decimal.RequireFromString("0.10")
)

// Parametros parámetros globales de la cotización.
type Parametros struct {
	FactorRiesgoPorDefecto decimal.Decimal
	TasaIVA                decimal.Decimal // fracción: 0.10 = 10%
}

// ParametrosPorDefecto devuelve FactorRiesgoPorDefecto y TasaIVA.
func ParametrosPorDefecto() Parametros {
	return Parametros{
		FactorRiesgoPorDefecto: FactorRiesgoPorDefecto,
		TasaIVA:                TasaIVA,
	}
}

// Cotizacion precios derivados del costo total del proyecto.
type Cotizacion struct {
	CostoTotal     decimal.Decimal
	FactorRiesgo   decimal.Decimal // factor efectivamente aplicado
	MargenDeseado  decimal.Decimal // porcentaje
	CostoConRiesgo decimal.Decimal
	Margen         decimal.Decimal
	PrecioVenta    decimal.Decimal
	TasaIVA        decimal.Decimal
	IVA            decimal.Decimal
	PrecioFinal    decimal.Decimal
}

// Cotizar aplica riesgo, margen e IVA al costo total.
//
//	CostoConRiesgo = CostoTotal * (factorRiesgo ?? p.FactorRiesgoPorDefecto)
//	Margen         = CostoConRiesgo * MargenDeseado / 100
//	PrecioVenta    = CostoConRiesgo + Margen
//	IVA            = PrecioVenta * p.TasaIVA
//	PrecioFinal    = PrecioVenta + IVA
func Cotizar(costoTotal decimal.Decimal, factorRiesgo *decimal.Decimal, margenDeseado decimal.Decimal, p Parametros) Cotizacion {
	factor := p.FactorRiesgoPorDefecto
	if factorRiesgo != nil {
		factor = *factorRiesgo
	}

	costoConRiesgo := costoTotal.Mul(factor)
	margen := costoConRiesgo.Mul(margenDeseado).Div(cien)
	precioVenta := costoConRiesgo.Add(margen)
	iva := precioVenta.Mul(p.TasaIVA)

	return Cotizacion{
		CostoTotal:     costoTotal,
		FactorRiesgo:   factor,
		MargenDeseado:  margenDeseado,
		CostoConRiesgo: costoConRiesgo,
		Margen:         margen,
		PrecioVenta:    precioVenta,
		TasaIVA:        p.TasaIVA,
		IVA:            iva,
		PrecioFinal:    precioVenta.Add(iva),
	}
}

// EnMonedaExtranjera convierte un monto en guaraníes a la moneda de la tasa de cambio.
// Solo para visualización; una tasa no positiva devuelve cero.
func EnMonedaExtranjera(monto, tasaCambio decimal.Decimal) decimal.Decimal {
	if !tasaCambio.IsPositive() {
		return decimal.Zero
	}
	return monto.Div(tasaCambio)
}
