package dto

import "github.com/shopspring/decimal"

// ReportFilter filtros de GET /api/reportes.
type ReportFilter struct {
	Estado string `query:"estado"` // vacío = todos
}

// ReporteProyectoDTO fila por proyecto.
type ReporteProyectoDTO struct {
	ProyectoID     string          `json:"proyecto_id"`
	Nombre         string          `json:"nombre"`
	Cliente        string          `json:"cliente"`
	Estado         string          `json:"estado"`
	DuracionMeses  decimal.Decimal `json:"duracion_meses"`
	CostoMensual   decimal.Decimal `json:"costo_mensual"`
	CostoTotal     decimal.Decimal `json:"costo_total"`
	CostoConRiesgo decimal.Decimal `json:"costo_con_riesgo"`
	Margen         decimal.Decimal `json:"margen"`
	IVA            decimal.Decimal `json:"iva"`
	PrecioFinal    decimal.Decimal `json:"precio_final"`
	PrecioFinalUSD decimal.Decimal `json:"precio_final_usd"`
}

// ReporteColaboradorDTO fila por colaborador.
type ReporteColaboradorDTO struct {
	ColaboradorID  string          `json:"colaborador_id"`
	Nombre         string          `json:"nombre"`
	Rol            string          `json:"rol"`
	Nivel          string          `json:"nivel"`
	SalarioBruto   decimal.Decimal `json:"salario_bruto"`
	CargaRigida    decimal.Decimal `json:"carga_rigida"`
	TarifaBase     decimal.Decimal `json:"tarifa_base"`
	HorasAsignadas decimal.Decimal `json:"horas_asignadas"`
	Capacidad      decimal.Decimal `json:"capacidad"`
	Utilizacion    decimal.Decimal `json:"utilizacion"` // porcentaje
	Sobreasignado  bool            `json:"sobreasignado"`
}

// ReporteTotalesDTO totales de las filas de proyecto.
type ReporteTotalesDTO struct {
	CostoTotal     decimal.Decimal `json:"costo_total"`
	CostoConRiesgo decimal.Decimal `json:"costo_con_riesgo"`
	Margen         decimal.Decimal `json:"margen"`
	IVA            decimal.Decimal `json:"iva"`
	PrecioFinal    decimal.Decimal `json:"precio_final"`
}

// ReportDTO respuesta de GET /api/reportes.
type ReportDTO struct {
	Estado        string                  `json:"estado,omitempty"`
	Proyectos     []ReporteProyectoDTO    `json:"proyectos"`
	Colaboradores []ReporteColaboradorDTO `json:"colaboradores"`
	Totales       ReporteTotalesDTO       `json:"totales"`
	// Proyectos que el motor no pudo cotizar (fuera de filas y totales)
	ProyectosConError []string `json:"proyectos_con_error"`
	// Colaboradores asignados en los proyectos del reporte que no existen en el catálogo
	NoResueltos []string `json:"no_resueltos"`
}
