package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AsignacionDTO asignación de un colaborador dentro de un proyecto.
type AsignacionDTO struct {
	ColaboradorID      string           `json:"colaborador_id"`
	Recargo            decimal.Decimal  `json:"recargo"`
	HorasAsignadas     decimal.Decimal  `json:"horas_asignadas"`
	RolEnProyecto      string           `json:"rol_en_proyecto"`
	CostoPorHoraCustom *decimal.Decimal `json:"costo_por_hora_custom,omitempty"`
}

// GastosAdicionalesDTO gastos mensuales del proyecto.
type GastosAdicionalesDTO struct {
	Infraestructura decimal.Decimal `json:"infraestructura"`
	Licencias       decimal.Decimal `json:"licencias"`
	Capacitacion    decimal.Decimal `json:"capacitacion"`
	Otros           decimal.Decimal `json:"otros"`
}

// ProyectoRequest entrada para crear o reemplazar un proyecto.
// Estado vacío se interpreta como "planificacion".
type ProyectoRequest struct {
	Nombre               string               `json:"nombre"`
	Cliente              string               `json:"cliente"`
	Descripcion          string               `json:"descripcion"`
	DuracionMeses        decimal.Decimal      `json:"duracion_meses"`
	TasaCambio           decimal.Decimal      `json:"tasa_cambio"`
	Colaboradores        []AsignacionDTO      `json:"colaboradores"`
	MargenDeseado        decimal.Decimal      `json:"margen_deseado"`
	FactorRiesgoProyecto *decimal.Decimal     `json:"factor_riesgo_proyecto,omitempty"`
	GastosAdicionales    GastosAdicionalesDTO `json:"gastos_adicionales"`
	Estado               string               `json:"estado"`
	FechaInicio          *time.Time           `json:"fecha_inicio,omitempty"`
}

// ProyectoResponse salida de un proyecto.
type ProyectoResponse struct {
	ID                   string               `json:"id"`
	Nombre               string               `json:"nombre"`
	Cliente              string               `json:"cliente"`
	Descripcion          string               `json:"descripcion"`
	DuracionMeses        decimal.Decimal      `json:"duracion_meses"`
	TasaCambio           decimal.Decimal      `json:"tasa_cambio"`
	Colaboradores        []AsignacionDTO      `json:"colaboradores"`
	MargenDeseado        decimal.Decimal      `json:"margen_deseado"`
	FactorRiesgoProyecto *decimal.Decimal     `json:"factor_riesgo_proyecto,omitempty"`
	GastosAdicionales    GastosAdicionalesDTO `json:"gastos_adicionales"`
	Estado               string               `json:"estado"`
	FechaInicio          *time.Time           `json:"fecha_inicio,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

// ProyectoListResponse lista de proyectos.
type ProyectoListResponse struct {
	Items []ProyectoResponse `json:"items"`
	Meta  ListMeta           `json:"meta"`
}
