// Package quote implementa la calculadora interactiva: cotiza un proyecto
// guardado o uno editado en pantalla, sin persistir nada.
package quote

import (
	"context"
	"fmt"

	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/snapshot"
	"github.com/jhoicas/Costeo-api/internal/application/usecase"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/costing"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
	"github.com/jhoicas/Costeo-api/pkg/logger"
)

// QuoteUseCase ejecuta el pipeline de costeo sobre un snapshot recién cargado.
type QuoteUseCase struct {
	proyectos repository.ProyectoRepository
	loader    *snapshot.Loader
	calc      *costing.Calculadora
	log       *logger.Logger
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(
	proyectos repository.ProyectoRepository,
	loader *snapshot.Loader,
	calc *costing.Calculadora,
	log *logger.Logger,
) *QuoteUseCase {
	return &QuoteUseCase{proyectos: proyectos, loader: loader, calc: calc, log: log}
}

// Calculate cotiza un proyecto guardado. ErrNotFound si no existe.
func (uc *QuoteUseCase) Calculate(ctx context.Context, projectID string) (*dto.QuoteResponse, error) {
	res, err := uc.Resultado(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return ToQuoteResponse(res), nil
}

// Resultado devuelve el resultado del motor para un proyecto guardado (lo usa el PDF).
func (uc *QuoteUseCase) Resultado(ctx context.Context, projectID string) (costing.ResultadoProyecto, error) {
	p, err := uc.proyectos.GetByID(ctx, projectID)
	if err != nil {
		return costing.ResultadoProyecto{}, err
	}
	if p == nil {
		return costing.ResultadoProyecto{}, domain.ErrNotFound
	}
	return uc.calcular(ctx, *p)
}

// Simulate cotiza un proyecto editado en la calculadora contra los datos guardados.
func (uc *QuoteUseCase) Simulate(ctx context.Context, in dto.SimulateQuoteRequest) (*dto.QuoteResponse, error) {
	p, err := usecase.BuildProyecto(in.Proyecto)
	if err != nil {
		return nil, err
	}
	res, err := uc.calcular(ctx, p)
	if err != nil {
		return nil, err
	}
	return ToQuoteResponse(res), nil
}

func (uc *QuoteUseCase) calcular(ctx context.Context, p entity.Proyecto) (costing.ResultadoProyecto, error) {
	snap, err := uc.loader.Load(ctx)
	if err != nil {
		return costing.ResultadoProyecto{}, err
	}
	res, err := uc.calc.CalcularProyecto(snap, p)
	if err != nil {
		return costing.ResultadoProyecto{}, fmt.Errorf("cotizar proyecto %q: %w", p.Nombre, err)
	}
	for _, id := range res.Costo.NoResueltos {
		uc.log.Warn().
			Str("proyecto_id", p.ID).
			Str("colaborador_id", id).
			Msg("colaborador asignado no existe, se cotiza en cero")
	}
	return res, nil
}

// ToQuoteResponse convierte el resultado del motor al DTO de la calculadora.
func ToQuoteResponse(res costing.ResultadoProyecto) *dto.QuoteResponse {
	lineas := make([]dto.LineaCostoDTO, 0, len(res.Costo.Lineas))
	for _, l := range res.Costo.Lineas {
		lineas = append(lineas, dto.LineaCostoDTO{
			ColaboradorID:    l.ColaboradorID,
			Nombre:           l.Nombre,
			RolEnProyecto:    l.RolEnProyecto,
			Resuelto:         l.Resuelto,
			CargaRigida:      l.CargaRigida,
			CostoMensualBase: l.CostoMensualBase,
			TarifaBase:       l.TarifaBase,
			Recargo:          l.Recargo,
			TarifaCustom:     l.TarifaCustom,
			TarifaEfectiva:   l.TarifaEfectiva,
			HorasAsignadas:   l.HorasAsignadas,
			CostoMensual:     l.CostoMensual,
		})
	}
	noResueltos := res.Costo.NoResueltos
	if noResueltos == nil {
		noResueltos = []string{}
	}
	cot := res.Cotizacion
	return &dto.QuoteResponse{
		ProyectoID: res.Proyecto.ID,
		Nombre:     res.Proyecto.Nombre,
		Cliente:    res.Proyecto.Cliente,
		Costo: dto.CostoProyectoDTO{
			Lineas:             lineas,
			CostoColaboradores: res.Costo.CostoColaboradores,
			GastosAdicionales:  res.Costo.GastosAdicionales,
			CostoMensual:       res.Costo.CostoMensual,
			DuracionMeses:      res.Costo.DuracionMeses,
			CostoTotal:         res.Costo.CostoTotal,
			NoResueltos:        noResueltos,
		},
		Precio: dto.PrecioDTO{
			FactorRiesgo:   cot.FactorRiesgo,
			MargenDeseado:  cot.MargenDeseado,
			CostoConRiesgo: cot.CostoConRiesgo,
			Margen:         cot.Margen,
			PrecioVenta:    cot.PrecioVenta,
			TasaIVA:        cot.TasaIVA,
			IVA:            cot.IVA,
			PrecioFinal:    cot.PrecioFinal,
			TasaCambio:     res.Proyecto.TasaCambio,
			PrecioFinalUSD: res.PrecioFinalUSD,
		},
	}
}
