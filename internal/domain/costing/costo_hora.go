package costing

import (
	"fmt"

	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LineaCosto costo mensual de una asignación colaborador ↔ proyecto.
type LineaCosto struct {
	ColaboradorID    string
	Nombre           string
	RolEnProyecto    string
	Resuelto         bool            // false si el colaborador no existe (aporta cero)
	CargaRigida      decimal.Decimal // costo rígido mensual del colaborador
	CostoMensualBase decimal.Decimal // SalarioBruto + CargaRigida
	TarifaBase       decimal.Decimal // CostoMensualBase / HorasMensuales
	Recargo          decimal.Decimal // % aplicado (cero si hay tarifa custom)
	TarifaCustom     bool
	TarifaEfectiva   decimal.Decimal
	HorasAsignadas   decimal.Decimal
	CostoMensual     decimal.Decimal // TarifaEfectiva * HorasAsignadas
}

// TarifaBase tarifa por hora sin recargo: (SalarioBruto + carga) / HorasMensuales.
func TarifaBase(colaborador entity.Colaborador, carga decimal.Decimal) (decimal.Decimal, error) {
	if !colaborador.HorasMensuales.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: colaborador %s (%s horas)",
			domain.ErrHorasMensualesInvalidas, colaborador.ID, colaborador.HorasMensuales.String())
	}
	return colaborador.SalarioBruto.Add(carga).Div(colaborador.HorasMensuales), nil
}

// CostoLinea calcula la tarifa efectiva y el costo mensual de una asignación.
//
//	TarifaEfectiva = CostoPorHoraCustom                       si está definido
//	               = TarifaBase * (1 + Recargo/100)           en otro caso
//	CostoMensual   = TarifaEfectiva * HorasAsignadas
//
// Con tarifa custom no se necesita HorasMensuales, por lo que un colaborador con
// cero horas solo produce error cuando no hay tarifa custom.
// No valida sobreasignación: horas por encima de la capacidad simplemente suman costo.
func CostoLinea(
	colaborador entity.Colaborador,
	carga decimal.Decimal,
	asignacion entity.ProyectoColaborador,
) (LineaCosto, error) {
	linea := LineaCosto{
		ColaboradorID:    colaborador.ID,
		Nombre:           colaborador.Nombre,
		RolEnProyecto:    asignacion.RolEnProyecto,
		Resuelto:         true,
		CargaRigida:      carga,
		CostoMensualBase: colaborador.SalarioBruto.Add(carga),
		HorasAsignadas:   asignacion.HorasAsignadas,
	}

	if asignacion.CostoPorHoraCustom != nil {
		if colaborador.HorasMensuales.IsPositive() {
			linea.TarifaBase = linea.CostoMensualBase.Div(colaborador.HorasMensuales)
		}
		linea.TarifaCustom = true
		linea.TarifaEfectiva = *asignacion.CostoPorHoraCustom
	} else {
		base, err := TarifaBase(colaborador, carga)
		if err != nil {
			return LineaCosto{}, err
		}
		linea.TarifaBase = base
		linea.Recargo = asignacion.Recargo
		linea.TarifaEfectiva = base.Mul(decimal.NewFromInt(1).Add(asignacion.Recargo.Div(cien)))
	}

	linea.CostoMensual = linea.TarifaEfectiva.Mul(asignacion.HorasAsignadas)
	return linea, nil
}
