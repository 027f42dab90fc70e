package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de costo rígido.
const (
	TipoCostoFijo       = "fijo"       // Valor es un monto mensual absoluto
	TipoCostoPorcentaje = "porcentaje" // Valor son puntos porcentuales del salario bruto (9 = 9%)
)

// Categorías de costo rígido.
const (
	CategoriaLegal     = "legal"
	CategoriaBeneficio = "beneficio"
	CategoriaOperativo = "operativo"
	CategoriaOtro      = "otro"
)

// CostoRigido representa un costo estatutario o fijo (IPS, aguinaldo, almuerzo, etc.)
// que se suma al salario bruto de los colaboradores que lo tengan asignado.
type CostoRigido struct {
	ID          string
	Nombre      string
	Tipo        string          // fijo | porcentaje
	Valor       decimal.Decimal // monto (fijo) o puntos porcentuales (porcentaje)
	Descripcion string
	Categoria   string // legal | beneficio | operativo | otro
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EsPorcentaje indica si el costo se calcula sobre el salario bruto.
func (c CostoRigido) EsPorcentaje() bool {
	return c.Tipo == TipoCostoPorcentaje
}

// TipoCostoValido verifica que el tipo pertenezca al catálogo.
func TipoCostoValido(tipo string) bool {
	return tipo == TipoCostoFijo || tipo == TipoCostoPorcentaje
}

// CategoriaValida verifica que la categoría pertenezca al catálogo.
func CategoriaValida(categoria string) bool {
	switch categoria {
	case CategoriaLegal, CategoriaBeneficio, CategoriaOperativo, CategoriaOtro:
		return true
	}
	return false
}
