package dto

import "github.com/shopspring/decimal"

// SimulateQuoteRequest POST /api/cotizaciones/simular.
// Recalcula un proyecto editado en pantalla sin persistirlo, contra los colaboradores
// y costos rígidos guardados.
type SimulateQuoteRequest struct {
	Proyecto ProyectoRequest `json:"proyecto"`
}

// LineaCostoDTO detalle de costo de un colaborador asignado.
type LineaCostoDTO struct {
	ColaboradorID    string          `json:"colaborador_id"`
	Nombre           string          `json:"nombre"`
	RolEnProyecto    string          `json:"rol_en_proyecto"`
	Resuelto         bool            `json:"resuelto"`
	CargaRigida      decimal.Decimal `json:"carga_rigida"`
	CostoMensualBase decimal.Decimal `json:"costo_mensual_base"`
	TarifaBase       decimal.Decimal `json:"tarifa_base"`
	Recargo          decimal.Decimal `json:"recargo"`
	TarifaCustom     bool            `json:"tarifa_custom"`
	TarifaEfectiva   decimal.Decimal `json:"tarifa_efectiva"`
	HorasAsignadas   decimal.Decimal `json:"horas_asignadas"`
	CostoMensual     decimal.Decimal `json:"costo_mensual"`
}

// CostoProyectoDTO agregado de costos del proyecto.
type CostoProyectoDTO struct {
	Lineas             []LineaCostoDTO `json:"lineas"`
	CostoColaboradores decimal.Decimal `json:"costo_colaboradores"`
	GastosAdicionales  decimal.Decimal `json:"gastos_adicionales"`
	CostoMensual       decimal.Decimal `json:"costo_mensual"`
	DuracionMeses      decimal.Decimal `json:"duracion_meses"`
	CostoTotal         decimal.Decimal `json:"costo_total"`
	NoResueltos        []string        `json:"no_resueltos"`
}

// PrecioDTO bloque de precios: riesgo, margen e IVA.
type PrecioDTO struct {
	FactorRiesgo   decimal.Decimal `json:"factor_riesgo"`
	MargenDeseado  decimal.Decimal `json:"margen_deseado"`
	CostoConRiesgo decimal.Decimal `json:"costo_con_riesgo"`
	Margen         decimal.Decimal `json:"margen"`
	PrecioVenta    decimal.Decimal `json:"precio_venta"`
	TasaIVA        decimal.Decimal `json:"tasa_iva"`
	IVA            decimal.Decimal `json:"iva"`
	PrecioFinal    decimal.Decimal `json:"precio_final"`
	TasaCambio     decimal.Decimal `json:"tasa_cambio"`
	PrecioFinalUSD decimal.Decimal `json:"precio_final_usd"`
}

// QuoteResponse resultado completo de la calculadora para un proyecto.
type QuoteResponse struct {
	ProyectoID string           `json:"proyecto_id,omitempty"` // vacío en simulaciones
	Nombre     string           `json:"nombre"`
	Cliente    string           `json:"cliente"`
	Costo      CostoProyectoDTO `json:"costo"`
	Precio     PrecioDTO        `json:"precio"`
}
