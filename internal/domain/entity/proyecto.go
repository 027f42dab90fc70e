package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del proyecto.
const (
	EstadoPlanificacion = "planificacion"
	EstadoActivo        = "activo"
	EstadoPausado       = "pausado"
	EstadoCompletado    = "completado"
	EstadoCancelado     = "cancelado"
)

// GastosAdicionales montos mensuales fijos del proyecto, fuera del costo del equipo.
type GastosAdicionales struct {
	Infraestructura decimal.Decimal
	Licencias       decimal.Decimal
	Capacitacion    decimal.Decimal
	Otros           decimal.Decimal
}

// Total suma los cuatro rubros mensuales.
func (g GastosAdicionales) Total() decimal.Decimal {
	return g.Infraestructura.Add(g.Licencias).Add(g.Capacitacion).Add(g.Otros)
}

// ProyectoColaborador asignación de un colaborador a un proyecto.
// Si CostoPorHoraCustom no es nil reemplaza la tarifa derivada y Recargo se ignora.
type ProyectoColaborador struct {
	ColaboradorID      string
	Recargo            decimal.Decimal // porcentaje sobre la tarifa base
	HorasAsignadas     decimal.Decimal // horas por mes
	RolEnProyecto      string
	CostoPorHoraCustom *decimal.Decimal
}

// Proyecto cabecera de un proyecto cotizable.
// FactorRiesgoProyecto nil significa "usar el factor por defecto".
type Proyecto struct {
	ID                   string
	Nombre               string
	Cliente              string
	Descripcion          string
	DuracionMeses        decimal.Decimal
	TasaCambio           decimal.Decimal // guaraníes por dólar, solo para visualización
	Colaboradores        []ProyectoColaborador
	MargenDeseado        decimal.Decimal // porcentaje
	FactorRiesgoProyecto *decimal.Decimal
	GastosAdicionales    GastosAdicionales
	Estado               string
	FechaInicio          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// EnCurso indica si el proyecto consume capacidad del equipo.
func (p Proyecto) EnCurso() bool {
	return p.Estado != EstadoCompletado && p.Estado != EstadoCancelado
}

// EstadoValido verifica que el estado pertenezca al catálogo.
func EstadoValido(estado string) bool {
	switch estado {
	case EstadoPlanificacion, EstadoActivo, EstadoPausado, EstadoCompletado, EstadoCancelado:
		return true
	}
	return false
}
