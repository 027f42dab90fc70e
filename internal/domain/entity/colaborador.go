package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de seniority.
const (
	NivelJunior     = "junior"
	NivelSemiSenior = "semi_senior"
	NivelSenior     = "senior"
	NivelLead       = "lead"
)

// Colaborador representa un empleado o contratista de la consultora.
// HorasMensuales es la capacidad a tiempo completo y es el divisor de la tarifa por hora.
type Colaborador struct {
	ID             string
	Nombre         string
	SalarioBruto   decimal.Decimal
	Antiguedad     int // años en la empresa
	HorasMensuales decimal.Decimal
	CostosRigidos  []string // IDs de CostoRigido aplicables (puede repetir, ver costing.CargaRigida)
	Rol            string
	Nivel          string
	Tecnologias    []string
	Disponibilidad decimal.Decimal // porcentaje de la capacidad disponible para proyectos (0–100)
	Activo         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NivelValido verifica que el nivel pertenezca al catálogo.
func NivelValido(nivel string) bool {
	switch nivel {
	case NivelJunior, NivelSemiSenior, NivelSenior, NivelLead:
		return true
	}
	return false
}
