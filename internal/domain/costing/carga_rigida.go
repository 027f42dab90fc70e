// Package costing es el motor de costos y cotización de proyectos (servicio de dominio).
//
// Flujo: CargaRigida → CostoLinea → AgregarCostoProyecto → Cotizar.
// Todas las etapas son funciones puras sobre una foto (snapshot) de las entidades:
// no leen estado global, no mutan sus entradas y no redondean. El redondeo es
// responsabilidad de la capa de presentación.
package costing

import (
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

// ItemCargaRigida aporte de un costo rígido a la carga mensual de un colaborador.
type ItemCargaRigida struct {
	CostoRigidoID string
	Nombre        string
	Categoria     string
	Tipo          string
	Valor         decimal.Decimal // valor configurado (monto o puntos porcentuales)
	Monto         decimal.Decimal // aporte mensual resultante
}

// CargaRigida devuelve el costo mensual extra de un colaborador por sus costos rígidos.
//
//	fijo:       Valor
//	porcentaje: SalarioBruto * Valor / 100
//
// Los IDs que no existen en costos se ignoran. Un ID repetido en la lista del
// colaborador se suma tantas veces como aparezca.
func CargaRigida(colaborador entity.Colaborador, costos []entity.CostoRigido) decimal.Decimal {
	total := decimal.Zero
	for _, item := range DetalleCargaRigida(colaborador, costos) {
		total = total.Add(item.Monto)
	}
	return total
}

// DetalleCargaRigida igual que CargaRigida pero devuelve el aporte de cada costo,
// en el orden de la lista del colaborador.
func DetalleCargaRigida(colaborador entity.Colaborador, costos []entity.CostoRigido) []ItemCargaRigida {
	porID := make(map[string]entity.CostoRigido, len(costos))
	for _, c := range costos {
		porID[c.ID] = c
	}

	items := make([]ItemCargaRigida, 0, len(colaborador.CostosRigidos))
	for _, id := range colaborador.CostosRigidos {
		c, ok := porID[id]
		if !ok {
			continue
		}
		items = append(items, ItemCargaRigida{
			CostoRigidoID: c.ID,
			Nombre:        c.Nombre,
			Categoria:     c.Categoria,
			Tipo:          c.Tipo,
			Valor:         c.Valor,
			Monto:         montoCostoRigido(colaborador.SalarioBruto, c),
		})
	}
	return items
}

func montoCostoRigido(salarioBruto decimal.Decimal, c entity.CostoRigido) decimal.Decimal {
	if c.EsPorcentaje() {
		return salarioBruto.Mul(c.Valor).Div(cien)
	}
	return c.Valor
}
