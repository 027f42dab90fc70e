package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var uno = decimal.NewFromInt(1)

// ProjectUseCase casos de uso CRUD para proyectos y sus asignaciones.
type ProjectUseCase struct {
	repo repository.ProyectoRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProyectoRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

// Create crea un proyecto con sus asignaciones.
func (uc *ProjectUseCase) Create(ctx context.Context, in dto.ProyectoRequest) (*dto.ProyectoResponse, error) {
	p, err := BuildProyecto(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p.ID = uuid.New().String()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := uc.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return ToProyectoResponse(&p), nil
}

// GetByID obtiene un proyecto. ErrNotFound si no existe.
func (uc *ProjectUseCase) GetByID(ctx context.Context, id string) (*dto.ProyectoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return ToProyectoResponse(p), nil
}

// List devuelve los proyectos; estado vacío = todos.
func (uc *ProjectUseCase) List(ctx context.Context, estado string) (*dto.ProyectoListResponse, error) {
	if estado != "" && !entity.EstadoValido(estado) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, estado)
	}
	list, err := uc.repo.List(ctx, estado)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProyectoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProyectoResponse(p))
	}
	return &dto.ProyectoListResponse{Items: items, Meta: dto.ListMeta{Total: len(items)}}, nil
}

// Update reemplaza el proyecto completo (cabecera y asignaciones).
func (uc *ProjectUseCase) Update(ctx context.Context, id string, in dto.ProyectoRequest) (*dto.ProyectoResponse, error) {
	actual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actual == nil {
		return nil, domain.ErrNotFound
	}
	p, err := BuildProyecto(in)
	if err != nil {
		return nil, err
	}
	p.ID = actual.ID
	p.CreatedAt = actual.CreatedAt
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, &p); err != nil {
		return nil, err
	}
	return ToProyectoResponse(&p), nil
}

// Delete elimina el proyecto.
func (uc *ProjectUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// BuildProyecto valida la entrada y construye la entidad (sin ID ni timestamps).
// Lo usan el CRUD y la simulación de la calculadora.
func BuildProyecto(in dto.ProyectoRequest) (entity.Proyecto, error) {
	p := entity.Proyecto{
		Nombre:               strings.TrimSpace(in.Nombre),
		Cliente:              in.Cliente,
		Descripcion:          in.Descripcion,
		DuracionMeses:        in.DuracionMeses,
		TasaCambio:           in.TasaCambio,
		MargenDeseado:        in.MargenDeseado,
		FactorRiesgoProyecto: in.FactorRiesgoProyecto,
		GastosAdicionales: entity.GastosAdicionales{
			Infraestructura: in.GastosAdicionales.Infraestructura,
			Licencias:       in.GastosAdicionales.Licencias,
			Capacitacion:    in.GastosAdicionales.Capacitacion,
			Otros:           in.GastosAdicionales.Otros,
		},
		Estado:      in.Estado,
		FechaInicio: in.FechaInicio,
	}
	if p.Estado == "" {
		p.Estado = entity.EstadoPlanificacion
	}

	if err := validarNombre(p.Nombre); err != nil {
		return p, err
	}
	if utf8.RuneCountInString(p.Cliente) > maxNombre {
		return p, fmt.Errorf("%w: cliente supera %d caracteres", domain.ErrInvalidInput, maxNombre)
	}
	if !p.DuracionMeses.IsPositive() {
		return p, fmt.Errorf("%w: duración en meses debe ser mayor a cero", domain.ErrInvalidInput)
	}
	if p.TasaCambio.IsNegative() {
		return p, fmt.Errorf("%w: tasa de cambio no puede ser negativa", domain.ErrInvalidInput)
	}
	if p.MargenDeseado.IsNegative() {
		return p, fmt.Errorf("%w: margen deseado no puede ser negativo", domain.ErrInvalidInput)
	}
	if p.FactorRiesgoProyecto != nil && p.FactorRiesgoProyecto.LessThan(uno) {
		return p, fmt.Errorf("%w: factor de riesgo debe ser al menos 1", domain.ErrInvalidInput)
	}
	g := p.GastosAdicionales
	if g.Infraestructura.IsNegative() || g.Licencias.IsNegative() || g.Capacitacion.IsNegative() || g.Otros.IsNegative() {
		return p, fmt.Errorf("%w: gastos adicionales no pueden ser negativos", domain.ErrInvalidInput)
	}
	if !entity.EstadoValido(p.Estado) {
		return p, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, p.Estado)
	}

	vistos := make(map[string]struct{}, len(in.Colaboradores))
	p.Colaboradores = make([]entity.ProyectoColaborador, 0, len(in.Colaboradores))
	for _, a := range in.Colaboradores {
		if a.ColaboradorID == "" {
			return p, fmt.Errorf("%w: colaborador_id es requerido", domain.ErrInvalidInput)
		}
		if _, dup := vistos[a.ColaboradorID]; dup {
			return p, fmt.Errorf("%w: colaborador %q asignado dos veces", domain.ErrInvalidInput, a.ColaboradorID)
		}
		vistos[a.ColaboradorID] = struct{}{}
		if a.Recargo.IsNegative() || a.HorasAsignadas.IsNegative() {
			return p, fmt.Errorf("%w: recargo y horas asignadas no pueden ser negativos", domain.ErrInvalidInput)
		}
		if a.CostoPorHoraCustom != nil && a.CostoPorHoraCustom.IsNegative() {
			return p, fmt.Errorf("%w: costo por hora propio no puede ser negativo", domain.ErrInvalidInput)
		}
		p.Colaboradores = append(p.Colaboradores, entity.ProyectoColaborador{
			ColaboradorID:      a.ColaboradorID,
			Recargo:            a.Recargo,
			HorasAsignadas:     a.HorasAsignadas,
			RolEnProyecto:      a.RolEnProyecto,
			CostoPorHoraCustom: a.CostoPorHoraCustom,
		})
	}
	return p, nil
}

// ToProyectoResponse convierte la entidad a su DTO de salida.
func ToProyectoResponse(p *entity.Proyecto) *dto.ProyectoResponse {
	asignaciones := make([]dto.AsignacionDTO, 0, len(p.Colaboradores))
	for _, a := range p.Colaboradores {
		asignaciones = append(asignaciones, dto.AsignacionDTO{
			ColaboradorID:      a.ColaboradorID,
			Recargo:            a.Recargo,
			HorasAsignadas:     a.HorasAsignadas,
			RolEnProyecto:      a.RolEnProyecto,
			CostoPorHoraCustom: a.CostoPorHoraCustom,
		})
	}
	g := p.GastosAdicionales
	return &dto.ProyectoResponse{
		ID:                   p.ID,
		Nombre:               p.Nombre,
		Cliente:              p.Cliente,
		Descripcion:          p.Descripcion,
		DuracionMeses:        p.DuracionMeses,
		TasaCambio:           p.TasaCambio,
		Colaboradores:        asignaciones,
		MargenDeseado:        p.MargenDeseado,
		FactorRiesgoProyecto: p.FactorRiesgoProyecto,
		GastosAdicionales: dto.GastosAdicionalesDTO{
			Infraestructura: g.Infraestructura,
			Licencias:       g.Licencias,
			Capacitacion:    g.Capacitacion,
			Otros:           g.Otros,
		},
		Estado:      p.Estado,
		FechaInicio: p.FechaInicio,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
