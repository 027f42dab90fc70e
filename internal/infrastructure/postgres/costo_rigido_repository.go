package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

var _ repository.CostoRigidoRepository = (*CostoRigidoRepo)(nil)

const costoRigidoColumns = `id, nombre, tipo, valor, descripcion, categoria, created_at, updated_at`

// CostoRigidoRepo implementación de CostoRigidoRepository sobre PostgreSQL (usable con pool o tx).
type CostoRigidoRepo struct {
	q Querier
}

// NewCostoRigidoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCostoRigidoRepository(q Querier) *CostoRigidoRepo {
	return &CostoRigidoRepo{q: q}
}

// Create persiste un nuevo costo rígido.
func (r *CostoRigidoRepo) Create(ctx context.Context, c *entity.CostoRigido) error {
	query := `
		INSERT INTO costos_rigidos (` + costoRigidoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Nombre, c.Tipo, c.Valor, c.Descripcion, c.Categoria, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert costo rigido: %w", err)
	}
	return nil
}

// GetByID obtiene un costo rígido por ID. Devuelve (nil, nil) si no existe.
func (r *CostoRigidoRepo) GetByID(ctx context.Context, id string) (*entity.CostoRigido, error) {
	if !idValido(id) {
		return nil, nil
	}
	query := `SELECT ` + costoRigidoColumns + ` FROM costos_rigidos WHERE id = $1`
	c, err := scanCostoRigido(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get costo rigido: %w", err)
	}
	return c, nil
}

// Update actualiza nombre, tipo, valor, descripción y categoría.
func (r *CostoRigidoRepo) Update(ctx context.Context, c *entity.CostoRigido) error {
	if !idValido(c.ID) {
		return domain.ErrNotFound
	}
	query := `
		UPDATE costos_rigidos
		SET nombre = $2, tipo = $3, valor = $4, descripcion = $5, categoria = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, c.ID, c.Nombre, c.Tipo, c.Valor, c.Descripcion, c.Categoria, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update costo rigido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un costo rígido por ID.
func (r *CostoRigidoRepo) Delete(ctx context.Context, id string) error {
	if !idValido(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM costos_rigidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete costo rigido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los costos rígidos ordenados por categoría y nombre.
func (r *CostoRigidoRepo) List(ctx context.Context) ([]*entity.CostoRigido, error) {
	query := `SELECT ` + costoRigidoColumns + ` FROM costos_rigidos ORDER BY categoria, nombre`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list costos rigidos: %w", err)
	}
	defer rows.Close()

	var list []*entity.CostoRigido
	for rows.Next() {
		c, err := scanCostoRigido(rows)
		if err != nil {
			return nil, fmt.Errorf("scan costo rigido: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCostoRigido(row pgx.Row) (*entity.CostoRigido, error) {
	var c entity.CostoRigido
	if err := row.Scan(
		&c.ID, &c.Nombre, &c.Tipo, &c.Valor, &c.Descripcion, &c.Categoria, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
