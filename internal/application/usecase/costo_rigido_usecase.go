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

var cien = decimal.NewFromInt(100)

// maxNombre coincide con VARCHAR(200) de las columnas nombre y cliente.
const maxNombre = 200

func validarNombre(nombre string) error {
	if nombre == "" {
		return fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(nombre) > maxNombre {
		return fmt.Errorf("%w: nombre supera %d caracteres", domain.ErrInvalidInput, maxNombre)
	}
	return nil
}

// RigidCostUseCase casos de uso CRUD para costos rígidos.
type RigidCostUseCase struct {
	repo          repository.CostoRigidoRepository
	colaboradores repository.ColaboradorRepository
}

// NewRigidCostUseCase construye el caso de uso.
func NewRigidCostUseCase(repo repository.CostoRigidoRepository, colaboradores repository.ColaboradorRepository) *RigidCostUseCase {
	return &RigidCostUseCase{repo: repo, colaboradores: colaboradores}
}

// Create crea un costo rígido.
func (uc *RigidCostUseCase) Create(ctx context.Context, in dto.CreateCostoRigidoRequest) (*dto.CostoRigidoResponse, error) {
	now := time.Now()
	costo := &entity.CostoRigido{
		ID:          uuid.New().String(),
		Nombre:      strings.TrimSpace(in.Nombre),
		Tipo:        in.Tipo,
		Valor:       in.Valor,
		Descripcion: in.Descripcion,
		Categoria:   in.Categoria,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := ValidarCostoRigido(costo); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, costo); err != nil {
		return nil, err
	}
	return toCostoRigidoResponse(costo), nil
}

// GetByID obtiene un costo rígido. ErrNotFound si no existe.
func (uc *RigidCostUseCase) GetByID(ctx context.Context, id string) (*dto.CostoRigidoResponse, error) {
	costo, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if costo == nil {
		return nil, domain.ErrNotFound
	}
	return toCostoRigidoResponse(costo), nil
}

// List devuelve el catálogo completo.
func (uc *RigidCostUseCase) List(ctx context.Context) (*dto.CostoRigidoListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CostoRigidoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCostoRigidoResponse(c))
	}
	return &dto.CostoRigidoListResponse{Items: items, Meta: dto.ListMeta{Total: len(items)}}, nil
}

// Update aplica los campos presentes en la entrada.
func (uc *RigidCostUseCase) Update(ctx context.Context, id string, in dto.UpdateCostoRigidoRequest) (*dto.CostoRigidoResponse, error) {
	costo, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if costo == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		costo.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Tipo != nil {
		costo.Tipo = *in.Tipo
	}
	if in.Valor != nil {
		costo.Valor = *in.Valor
	}
	if in.Descripcion != nil {
		costo.Descripcion = *in.Descripcion
	}
	if in.Categoria != nil {
		costo.Categoria = *in.Categoria
	}
	if err := ValidarCostoRigido(costo); err != nil {
		return nil, err
	}
	costo.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, costo); err != nil {
		return nil, err
	}
	return toCostoRigidoResponse(costo), nil
}

// Delete elimina el costo rígido. ErrConflict si algún colaborador lo referencia.
func (uc *RigidCostUseCase) Delete(ctx context.Context, id string) error {
	n, err := uc.colaboradores.CountByCostoRigido(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: %d colaborador(es) usan el costo rígido", domain.ErrConflict, n)
	}
	return uc.repo.Delete(ctx, id)
}

// ValidarCostoRigido aplica las reglas del catálogo (también las usa el importador).
func ValidarCostoRigido(c *entity.CostoRigido) error {
	if err := validarNombre(c.Nombre); err != nil {
		return err
	}
	if !entity.TipoCostoValido(c.Tipo) {
		return fmt.Errorf("%w: tipo debe ser fijo o porcentaje", domain.ErrInvalidInput)
	}
	if !entity.CategoriaValida(c.Categoria) {
		return fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, c.Categoria)
	}
	if c.Valor.IsNegative() {
		return fmt.Errorf("%w: valor no puede ser negativo", domain.ErrInvalidInput)
	}
	if c.EsPorcentaje() && c.Valor.GreaterThan(cien) {
		return fmt.Errorf("%w: un porcentaje no puede superar 100", domain.ErrInvalidInput)
	}
	return nil
}

func toCostoRigidoResponse(c *entity.CostoRigido) *dto.CostoRigidoResponse {
	return &dto.CostoRigidoResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Tipo:        c.Tipo,
		Valor:       c.Valor,
		Descripcion: c.Descripcion,
		Categoria:   c.Categoria,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
