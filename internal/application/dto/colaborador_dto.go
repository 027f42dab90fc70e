package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateColaboradorRequest entrada para crear un colaborador.
// Disponibilidad vacía se interpreta como 100%; Activo vacío como true.
type CreateColaboradorRequest struct {
	Nombre         string           `json:"nombre"`
	SalarioBruto   decimal.Decimal  `json:"salario_bruto"`
	Antiguedad     int              `json:"antiguedad"`
	HorasMensuales decimal.Decimal  `json:"horas_mensuales"`
	CostosRigidos  []string         `json:"costos_rigidos"`
	Rol            string           `json:"rol"`
	Nivel          string           `json:"nivel"`
	Tecnologias    []string         `json:"tecnologias"`
	Disponibilidad *decimal.Decimal `json:"disponibilidad"`
	Activo         *bool            `json:"activo"`
}

// UpdateColaboradorRequest entrada para actualizar un colaborador (campos opcionales).
// Un arreglo no nulo reemplaza el anterior completo.
type UpdateColaboradorRequest struct {
	Nombre         *string          `json:"nombre"`
	SalarioBruto   *decimal.Decimal `json:"salario_bruto"`
	Antiguedad     *int             `json:"antiguedad"`
	HorasMensuales *decimal.Decimal `json:"horas_mensuales"`
	CostosRigidos  []string         `json:"costos_rigidos"`
	Rol            *string          `json:"rol"`
	Nivel          *string          `json:"nivel"`
	Tecnologias    []string         `json:"tecnologias"`
	Disponibilidad *decimal.Decimal `json:"disponibilidad"`
	Activo         *bool            `json:"activo"`
}

// ColaboradorResponse salida de un colaborador, con su carga rígida y tarifa base derivadas.
type ColaboradorResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	SalarioBruto   decimal.Decimal `json:"salario_bruto"`
	Antiguedad     int             `json:"antiguedad"`
	HorasMensuales decimal.Decimal `json:"horas_mensuales"`
	CostosRigidos  []string        `json:"costos_rigidos"`
	Rol            string          `json:"rol"`
	Nivel          string          `json:"nivel"`
	Tecnologias    []string        `json:"tecnologias"`
	Disponibilidad decimal.Decimal `json:"disponibilidad"`
	Activo         bool            `json:"activo"`
	CargaRigida    decimal.Decimal `json:"carga_rigida"`
	TarifaBase     decimal.Decimal `json:"tarifa_base"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ColaboradorListResponse lista de colaboradores.
type ColaboradorListResponse struct {
	Items []ColaboradorResponse `json:"items"`
	Meta  ListMeta              `json:"meta"`
}
