package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Totales de la cartera de proyectos y utilización del equipo.
type DashboardSummaryDTO struct {
	// Cartera de proyectos
	TotalProyectos        int             `json:"total_proyectos"`
	ProyectosPorEstado    map[string]int  `json:"proyectos_por_estado"`
	CostoTotal            decimal.Decimal `json:"costo_total"`             // suma de CostoTotal de todos los proyectos
	PrecioFinalTotal      decimal.Decimal `json:"precio_final_total"`      // suma de PrecioFinal
	MargenTotal           decimal.Decimal `json:"margen_total"`            // suma de Margen
	MargenDeseadoPromedio decimal.Decimal `json:"margen_deseado_promedio"` // porcentaje

	// Equipo
	ColaboradoresActivos int                         `json:"colaboradores_activos"`
	TarifaBasePromedio   decimal.Decimal             `json:"tarifa_base_promedio"` // sobre colaboradores con horas > 0
	Utilizacion          []UtilizacionColaboradorDTO `json:"utilizacion"`
	Sobreasignados       int                         `json:"sobreasignados"`

	// Colaboradores asignados que no existen en el catálogo (en cualquier proyecto)
	NoResueltos []string `json:"no_resueltos"`
	// Proyectos excluidos de los totales porque el motor no pudo cotizarlos
	ProyectosConError []string `json:"proyectos_con_error"`
}

// UtilizacionColaboradorDTO horas comprometidas frente a capacidad.
type UtilizacionColaboradorDTO struct {
	ColaboradorID  string          `json:"colaborador_id"`
	Nombre         string          `json:"nombre"`
	HorasAsignadas decimal.Decimal `json:"horas_asignadas"`
	Capacidad      decimal.Decimal `json:"capacidad"`
	Porcentaje     decimal.Decimal `json:"porcentaje"`
	Proyectos      int             `json:"proyectos"`
	Sobreasignado  bool            `json:"sobreasignado"`
}
