// Package analytics contiene los casos de uso de lectura sobre la cartera de
// proyectos: el resumen del Dashboard y la página de Reportes.
package analytics

import (
	"context"
	"sort"

	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/snapshot"
	"github.com/jhoicas/Costeo-api/internal/domain/costing"
	"github.com/jhoicas/Costeo-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// DashboardUseCase genera el resumen de la cartera y la utilización del equipo.
//
// Fuente de datos: snapshot.Loader (costos rígidos, colaboradores y proyectos en paralelo).
// Toda la aritmética la hace costing.Calculadora.
type DashboardUseCase struct {
	loader *snapshot.Loader
	calc   *costing.Calculadora
	log    *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(loader *snapshot.Loader, calc *costing.Calculadora, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{loader: loader, calc: calc, log: log}
}

// GetSummary construye el DashboardSummaryDTO sobre todos los proyectos.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	cartera, err := uc.loader.LoadCartera(ctx, "")
	if err != nil {
		return nil, err
	}
	resultados, noResueltos, conError := calcularCartera(uc.calc, uc.log, cartera)

	out := &dto.DashboardSummaryDTO{
		TotalProyectos:        len(cartera.Proyectos),
		ProyectosPorEstado:    make(map[string]int),
		CostoTotal:            decimal.Zero,
		PrecioFinalTotal:      decimal.Zero,
		MargenTotal:           decimal.Zero,
		MargenDeseadoPromedio: decimal.Zero,
		TarifaBasePromedio:    decimal.Zero,
		Utilizacion:           make([]dto.UtilizacionColaboradorDTO, 0),
		NoResueltos:           noResueltos,
		ProyectosConError:     conError,
	}

	// ── Cartera ──────────────────────────────────────────────────────────────
	margenes := decimal.Zero
	for _, p := range cartera.Proyectos {
		out.ProyectosPorEstado[p.Estado]++
		margenes = margenes.Add(p.MargenDeseado)
	}
	if n := len(cartera.Proyectos); n > 0 {
		out.MargenDeseadoPromedio = margenes.Div(decimal.NewFromInt(int64(n))).Round(2)
	}
	for _, r := range resultados {
		out.CostoTotal = out.CostoTotal.Add(r.Costo.CostoTotal)
		out.PrecioFinalTotal = out.PrecioFinalTotal.Add(r.Cotizacion.PrecioFinal)
		out.MargenTotal = out.MargenTotal.Add(r.Cotizacion.Margen)
	}

	// ── Equipo ───────────────────────────────────────────────────────────────
	tarifas := decimal.Zero
	conTarifa := 0
	for _, c := range cartera.Snapshot.Colaboradores {
		if !c.Activo {
			continue
		}
		out.ColaboradoresActivos++
		carga := costing.CargaRigida(c, cartera.Snapshot.CostosRigidos)
		if tarifa, err := costing.TarifaBase(c, carga); err == nil {
			tarifas = tarifas.Add(tarifa)
			conTarifa++
		}

		u := costing.Utilizacion(c, cartera.Proyectos)
		out.Utilizacion = append(out.Utilizacion, toUtilizacionDTO(u))
		if u.Sobreasignado {
			out.Sobreasignados++
		}
	}
	if conTarifa > 0 {
		out.TarifaBasePromedio = tarifas.Div(decimal.NewFromInt(int64(conTarifa))).Round(2)
	}
	sort.SliceStable(out.Utilizacion, func(i, j int) bool {
		return out.Utilizacion[i].Porcentaje.GreaterThan(out.Utilizacion[j].Porcentaje)
	})
	return out, nil
}

// calcularCartera cotiza cada proyecto. Los que el motor rechaza quedan fuera
// de los resultados y se informan por nombre; los colaboradores no resueltos se
// devuelven sin repetir.
func calcularCartera(
	calc *costing.Calculadora,
	log *logger.Logger,
	cartera snapshot.Cartera,
) (resultados []costing.ResultadoProyecto, noResueltos []string, conError []string) {
	resultados = make([]costing.ResultadoProyecto, 0, len(cartera.Proyectos))
	noResueltos = make([]string, 0)
	conError = make([]string, 0)
	vistos := make(map[string]struct{})

	for _, p := range cartera.Proyectos {
		res, err := calc.CalcularProyecto(cartera.Snapshot, p)
		if err != nil {
			log.Warn().Err(err).Str("proyecto_id", p.ID).Msg("proyecto excluido de los totales")
			conError = append(conError, p.Nombre)
			continue
		}
		for _, id := range res.Costo.NoResueltos {
			log.Warn().Str("proyecto_id", p.ID).Str("colaborador_id", id).Msg("colaborador asignado no existe")
			if _, ok := vistos[id]; !ok {
				vistos[id] = struct{}{}
				noResueltos = append(noResueltos, id)
			}
		}
		resultados = append(resultados, res)
	}
	return resultados, noResueltos, conError
}

func toUtilizacionDTO(u costing.UtilizacionColaborador) dto.UtilizacionColaboradorDTO {
	return dto.UtilizacionColaboradorDTO{
		ColaboradorID:  u.ColaboradorID,
		Nombre:         u.Nombre,
		HorasAsignadas: u.HorasAsignadas,
		Capacidad:      u.Capacidad,
		Porcentaje:     u.Porcentaje.Round(2),
		Proyectos:      u.Proyectos,
		Sobreasignado:  u.Sobreasignado,
	}
}

