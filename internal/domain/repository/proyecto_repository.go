package repository

import (
	"context"

	"github.com/jhoicas/Costeo-api/internal/domain/entity"
)

// ProyectoRepository define el puerto de persistencia para Proyecto y sus asignaciones.
// Las implementaciones devuelven (nil, nil) cuando el proyecto no existe.
type ProyectoRepository interface {
	// Create persiste la cabecera y las asignaciones en una sola operación.
	Create(ctx context.Context, proyecto *entity.Proyecto) error
	GetByID(ctx context.Context, id string) (*entity.Proyecto, error)
	// Update reemplaza la cabecera y todas las asignaciones.
	Update(ctx context.Context, proyecto *entity.Proyecto) error
	Delete(ctx context.Context, id string) error
	// List devuelve los proyectos con sus asignaciones; estado vacío = todos.
	List(ctx context.Context, estado string) ([]*entity.Proyecto, error)
	// CountByColaborador cuenta los proyectos que asignan al colaborador.
	CountByColaborador(ctx context.Context, colaboradorID string) (int, error)
}
