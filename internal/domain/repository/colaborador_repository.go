package repository

import (
	"context"

	"github.com/jhoicas/Costeo-api/internal/domain/entity"
)

// ColaboradorRepository define el puerto de persistencia para Colaborador (DIP).
type ColaboradorRepository interface {
	Create(ctx context.Context, colaborador *entity.Colaborador) error
	GetByID(ctx context.Context, id string) (*entity.Colaborador, error)
	Update(ctx context.Context, colaborador *entity.Colaborador) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Colaborador, error)
	// CountByCostoRigido cuenta los colaboradores que referencian el costo rígido.
	CountByCostoRigido(ctx context.Context, costoRigidoID string) (int, error)
}
