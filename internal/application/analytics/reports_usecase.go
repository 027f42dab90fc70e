package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/snapshot"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/costing"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// ReportsUseCase arma la página de Reportes y su exportación a Excel.
type ReportsUseCase struct {
	loader   *snapshot.Loader
	calc     *costing.Calculadora
	exporter ReportExporter
	empresa  string
	log      *logger.Logger
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(
	loader *snapshot.Loader,
	calc *costing.Calculadora,
	exporter ReportExporter,
	empresa string,
	log *logger.Logger,
) *ReportsUseCase {
	return &ReportsUseCase{loader: loader, calc: calc, exporter: exporter, empresa: empresa, log: log}
}

// GetReport devuelve filas por proyecto (filtradas por estado) y por colaborador.
// La utilización de cada colaborador considera todos los proyectos en curso,
// independientemente del filtro.
func (uc *ReportsUseCase) GetReport(ctx context.Context, filter dto.ReportFilter) (*dto.ReportDTO, error) {
	if filter.Estado != "" && !entity.EstadoValido(filter.Estado) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, filter.Estado)
	}
	cartera, err := uc.loader.LoadCartera(ctx, "")
	if err != nil {
		return nil, err
	}

	filtrada := cartera
	if filter.Estado != "" {
		filtrada.Proyectos = make([]entity.Proyecto, 0, len(cartera.Proyectos))
		for _, p := range cartera.Proyectos {
			if p.Estado == filter.Estado {
				filtrada.Proyectos = append(filtrada.Proyectos, p)
			}
		}
	}
	resultados, noResueltos, conError := calcularCartera(uc.calc, uc.log, filtrada)

	out := &dto.ReportDTO{
		Estado:        filter.Estado,
		Proyectos:     make([]dto.ReporteProyectoDTO, 0, len(resultados)),
		Colaboradores: make([]dto.ReporteColaboradorDTO, 0, len(cartera.Snapshot.Colaboradores)),
		Totales: dto.ReporteTotalesDTO{
			CostoTotal:     decimal.Zero,
			CostoConRiesgo: decimal.Zero,
			Margen:         decimal.Zero,
			IVA:            decimal.Zero,
			PrecioFinal:    decimal.Zero,
		},
		ProyectosConError: conError,
		NoResueltos:       noResueltos,
	}

	for _, r := range resultados {
		cot := r.Cotizacion
		out.Proyectos = append(out.Proyectos, dto.ReporteProyectoDTO{
			ProyectoID:     r.Proyecto.ID,
			Nombre:         r.Proyecto.Nombre,
			Cliente:        r.Proyecto.Cliente,
			Estado:         r.Proyecto.Estado,
			DuracionMeses:  r.Costo.DuracionMeses,
			CostoMensual:   r.Costo.CostoMensual,
			CostoTotal:     r.Costo.CostoTotal,
			CostoConRiesgo: cot.CostoConRiesgo,
			Margen:         cot.Margen,
			IVA:            cot.IVA,
			PrecioFinal:    cot.PrecioFinal,
			PrecioFinalUSD: r.PrecioFinalUSD,
		})
		t := &out.Totales
		t.CostoTotal = t.CostoTotal.Add(r.Costo.CostoTotal)
		t.CostoConRiesgo = t.CostoConRiesgo.Add(cot.CostoConRiesgo)
		t.Margen = t.Margen.Add(cot.Margen)
		t.IVA = t.IVA.Add(cot.IVA)
		t.PrecioFinal = t.PrecioFinal.Add(cot.PrecioFinal)
	}

	for _, c := range cartera.Snapshot.Colaboradores {
		carga := costing.CargaRigida(c, cartera.Snapshot.CostosRigidos)
		tarifa, err := costing.TarifaBase(c, carga)
		if err != nil {
			tarifa = decimal.Zero
		}
		u := costing.Utilizacion(c, cartera.Proyectos)
		out.Colaboradores = append(out.Colaboradores, dto.ReporteColaboradorDTO{
			ColaboradorID:  c.ID,
			Nombre:         c.Nombre,
			Rol:            c.Rol,
			Nivel:          c.Nivel,
			SalarioBruto:   c.SalarioBruto,
			CargaRigida:    carga,
			TarifaBase:     tarifa,
			HorasAsignadas: u.HorasAsignadas,
			Capacidad:      u.Capacidad,
			Utilizacion:    u.Porcentaje.Round(2),
			Sobreasignado:  u.Sobreasignado,
		})
	}
	return out, nil
}

// ExportXLSX genera el reporte como libro Excel. Devuelve bytes y nombre de archivo.
func (uc *ReportsUseCase) ExportXLSX(ctx context.Context, filter dto.ReportFilter) ([]byte, string, error) {
	report, err := uc.GetReport(ctx, filter)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.ExportReport(report, uc.empresa)
	if err != nil {
		return nil, "", fmt.Errorf("exportar reporte: %w", err)
	}
	nombre := "reporte_costeo_" + time.Now().Format("20060102")
	if filter.Estado != "" {
		nombre += "_" + filter.Estado
	}
	return data, nombre + ".xlsx", nil
}
