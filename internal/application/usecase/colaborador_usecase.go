package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/costing"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CollaboratorUseCase casos de uso CRUD para colaboradores.
// Las respuestas incluyen la carga rígida y la tarifa base calculadas por el motor.
type CollaboratorUseCase struct {
	repo      repository.ColaboradorRepository
	costos    repository.CostoRigidoRepository
	proyectos repository.ProyectoRepository
}

// NewCollaboratorUseCase construye el caso de uso.
func NewCollaboratorUseCase(
	repo repository.ColaboradorRepository,
	costos repository.CostoRigidoRepository,
	proyectos repository.ProyectoRepository,
) *CollaboratorUseCase {
	return &CollaboratorUseCase{repo: repo, costos: costos, proyectos: proyectos}
}

// Create crea un colaborador. Los costos rígidos referenciados deben existir.
func (uc *CollaboratorUseCase) Create(ctx context.Context, in dto.CreateColaboradorRequest) (*dto.ColaboradorResponse, error) {
	now := time.Now()
	c := &entity.Colaborador{
		ID:             uuid.New().String(),
		Nombre:         strings.TrimSpace(in.Nombre),
		SalarioBruto:   in.SalarioBruto,
		Antiguedad:     in.Antiguedad,
		HorasMensuales: in.HorasMensuales,
		CostosRigidos:  in.CostosRigidos,
		Rol:            in.Rol,
		Nivel:          in.Nivel,
		Tecnologias:    in.Tecnologias,
		Disponibilidad: cien,
		Activo:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.Disponibilidad != nil {
		c.Disponibilidad = *in.Disponibilidad
	}
	if in.Activo != nil {
		c.Activo = *in.Activo
	}
	costos, err := uc.catalogo(ctx)
	if err != nil {
		return nil, err
	}
	if err := ValidarColaborador(c, costos); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toColaboradorResponse(c, costos), nil
}

// GetByID obtiene un colaborador. ErrNotFound si no existe.
func (uc *CollaboratorUseCase) GetByID(ctx context.Context, id string) (*dto.ColaboradorResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	costos, err := uc.catalogo(ctx)
	if err != nil {
		return nil, err
	}
	return toColaboradorResponse(c, costos), nil
}

// List devuelve todos los colaboradores.
func (uc *CollaboratorUseCase) List(ctx context.Context) (*dto.ColaboradorListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	costos, err := uc.catalogo(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ColaboradorResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toColaboradorResponse(c, costos))
	}
	return &dto.ColaboradorListResponse{Items: items, Meta: dto.ListMeta{Total: len(items)}}, nil
}

// Update aplica los campos presentes en la entrada.
func (uc *CollaboratorUseCase) Update(ctx context.Context, id string, in dto.UpdateColaboradorRequest) (*dto.ColaboradorResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		c.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.SalarioBruto != nil {
		c.SalarioBruto = *in.SalarioBruto
	}
	if in.Antiguedad != nil {
		c.Antiguedad = *in.Antiguedad
	}
	if in.HorasMensuales != nil {
		c.HorasMensuales = *in.HorasMensuales
	}
	if in.CostosRigidos != nil {
		c.CostosRigidos = in.CostosRigidos
	}
	if in.Rol != nil {
		c.Rol = *in.Rol
	}
	if in.Nivel != nil {
		c.Nivel = *in.Nivel
	}
	if in.Tecnologias != nil {
		c.Tecnologias = in.Tecnologias
	}
	if in.Disponibilidad != nil {
		c.Disponibilidad = *in.Disponibilidad
	}
	if in.Activo != nil {
		c.Activo = *in.Activo
	}
	costos, err := uc.catalogo(ctx)
	if err != nil {
		return nil, err
	}
	if err := ValidarColaborador(c, costos); err != nil {
		return nil, err
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toColaboradorResponse(c, costos), nil
}

// Delete elimina el colaborador. ErrConflict si está asignado a algún proyecto.
func (uc *CollaboratorUseCase) Delete(ctx context.Context, id string) error {
	n, err := uc.proyectos.CountByColaborador(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: colaborador asignado a %d proyecto(s)", domain.ErrConflict, n)
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *CollaboratorUseCase) catalogo(ctx context.Context) ([]entity.CostoRigido, error) {
	list, err := uc.costos.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.CostoRigido, 0, len(list))
	for _, c := range list {
		out = append(out, *c)
	}
	return out, nil
}

// ValidarColaborador valida el colaborador contra el catálogo de costos rígidos.
func ValidarColaborador(c *entity.Colaborador, costos []entity.CostoRigido) error {
	if err := validarNombre(c.Nombre); err != nil {
		return err
	}
	if c.SalarioBruto.IsNegative() {
		return fmt.Errorf("%w: salario bruto no puede ser negativo", domain.ErrInvalidInput)
	}
	if c.Antiguedad < 0 {
		return fmt.Errorf("%w: antigüedad no puede ser negativa", domain.ErrInvalidInput)
	}
	if !c.HorasMensuales.IsPositive() {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrHorasMensualesInvalidas)
	}
	if c.Disponibilidad.IsNegative() || c.Disponibilidad.GreaterThan(cien) {
		return fmt.Errorf("%w: disponibilidad debe estar entre 0 y 100", domain.ErrInvalidInput)
	}
	if c.Nivel != "" && !entity.NivelValido(c.Nivel) {
		return fmt.Errorf("%w: nivel desconocido %q", domain.ErrInvalidInput, c.Nivel)
	}
	existentes := make(map[string]struct{}, len(costos))
	for _, cr := range costos {
		existentes[cr.ID] = struct{}{}
	}
	for _, id := range c.CostosRigidos {
		if _, ok := existentes[id]; !ok {
			return fmt.Errorf("%w: costo rígido %q no existe", domain.ErrInvalidInput, id)
		}
	}
	return nil
}

func toColaboradorResponse(c *entity.Colaborador, costos []entity.CostoRigido) *dto.ColaboradorResponse {
	carga := costing.CargaRigida(*c, costos)
	tarifa, err := costing.TarifaBase(*c, carga)
	if err != nil {
		tarifa = decimal.Zero
	}
	return &dto.ColaboradorResponse{
		ID:             c.ID,
		Nombre:         c.Nombre,
		SalarioBruto:   c.SalarioBruto,
		Antiguedad:     c.Antiguedad,
		HorasMensuales: c.HorasMensuales,
		CostosRigidos:  nonNilStrings(c.CostosRigidos),
		Rol:            c.Rol,
		Nivel:          c.Nivel,
		Tecnologias:    nonNilStrings(c.Tecnologias),
		Disponibilidad: c.Disponibilidad,
		Activo:         c.Activo,
		CargaRigida:    carga,
		TarifaBase:     tarifa,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
