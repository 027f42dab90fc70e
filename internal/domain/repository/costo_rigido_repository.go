package repository

import (
	"context"

	"github.com/jhoicas/Costeo-api/internal/domain/entity"
)

// CostoRigidoRepository define el puerto de persistencia para CostoRigido (DIP).
type CostoRigidoRepository interface {
	Create(ctx context.Context, costo *entity.CostoRigido) error
	GetByID(ctx context.Context, id string) (*entity.CostoRigido, error)
	Update(ctx context.Context, costo *entity.CostoRigido) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.CostoRigido, error)
}
