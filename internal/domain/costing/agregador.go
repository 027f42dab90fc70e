package costing

import (
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CostoProyecto resultado de la agregación de costos de un proyecto.
type CostoProyecto struct {
	Lineas             []LineaCosto
	CostoColaboradores decimal.Decimal // mensual, suma de Lineas[i].CostoMensual
	GastosAdicionales  decimal.Decimal // mensual, infraestructura + licencias + capacitación + otros
	CostoMensual       decimal.Decimal // CostoColaboradores + GastosAdicionales
	DuracionMeses      decimal.Decimal
	CostoTotal         decimal.Decimal // CostoMensual * DuracionMeses
	NoResueltos        []string        // IDs de colaborador asignados que no existen
}

// AgregarCostoProyecto suma el costo mensual del equipo y los gastos adicionales y
// lo escala por la duración del proyecto.
//
//	CostoTotal = (Σ CostoLinea + GastosAdicionales.Total()) * DuracionMeses
//
// La duración se aplica una sola vez sobre el total mensual, no por línea.
// Las asignaciones cuyo colaborador no existe aportan cero y se reportan en NoResueltos.
func AgregarCostoProyecto(
	proyecto entity.Proyecto,
	colaboradores []entity.Colaborador,
	costos []entity.CostoRigido,
) (CostoProyecto, error) {
	porID := make(map[string]entity.Colaborador, len(colaboradores))
	for _, c := range colaboradores {
		porID[c.ID] = c
	}

	res := CostoProyecto{
		Lineas:             make([]LineaCosto, 0, len(proyecto.Colaboradores)),
		CostoColaboradores: decimal.Zero,
		GastosAdicionales:  proyecto.GastosAdicionales.Total(),
		DuracionMeses:      proyecto.DuracionMeses,
	}

	for _, asignacion := range proyecto.Colaboradores {
		colaborador, ok := porID[asignacion.ColaboradorID]
		if !ok {
			res.NoResueltos = append(res.NoResueltos, asignacion.ColaboradorID)
			res.Lineas = append(res.Lineas, LineaCosto{
				ColaboradorID:  asignacion.ColaboradorID,
				RolEnProyecto:  asignacion.RolEnProyecto,
				HorasAsignadas: asignacion.HorasAsignadas,
			})
			continue
		}
		linea, err := CostoLinea(colaborador, CargaRigida(colaborador, costos), asignacion)
		if err != nil {
			return CostoProyecto{}, err
		}
		res.Lineas = append(res.Lineas, linea)
		res.CostoColaboradores = res.CostoColaboradores.Add(linea.CostoMensual)
	}

	res.CostoMensual = res.CostoColaboradores.Add(res.GastosAdicionales)
	res.CostoTotal = res.CostoMensual.Mul(proyecto.DuracionMeses)
	return res, nil
}
