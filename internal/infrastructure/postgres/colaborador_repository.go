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

var _ repository.ColaboradorRepository = (*ColaboradorRepo)(nil)

const colaboradorColumns = `id, nombre, salario_bruto, antiguedad, horas_mensuales, costos_rigidos,
	rol, nivel, tecnologias, disponibilidad, activo, created_at, updated_at`

// ColaboradorRepo implementación de ColaboradorRepository sobre PostgreSQL.
// CostosRigidos y Tecnologias se guardan como TEXT[] conservando orden y repetidos.
type ColaboradorRepo struct {
	q Querier
}

// NewColaboradorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewColaboradorRepository(q Querier) *ColaboradorRepo {
	return &ColaboradorRepo{q: q}
}

// Create persiste un nuevo colaborador.
func (r *ColaboradorRepo) Create(ctx context.Context, c *entity.Colaborador) error {
	query := `
		INSERT INTO colaboradores (` + colaboradorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Nombre, c.SalarioBruto, c.Antiguedad, c.HorasMensuales, nonNil(c.CostosRigidos),
		c.Rol, c.Nivel, nonNil(c.Tecnologias), c.Disponibilidad, c.Activo, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert colaborador: %w", err)
	}
	return nil
}

// GetByID obtiene un colaborador por ID. Devuelve (nil, nil) si no existe.
func (r *ColaboradorRepo) GetByID(ctx context.Context, id string) (*entity.Colaborador, error) {
	if !idValido(id) {
		return nil, nil
	}
	query := `SELECT ` + colaboradorColumns + ` FROM colaboradores WHERE id = $1`
	c, err := scanColaborador(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get colaborador: %w", err)
	}
	return c, nil
}

// Update actualiza todos los campos editables del colaborador.
func (r *ColaboradorRepo) Update(ctx context.Context, c *entity.Colaborador) error {
	if !idValido(c.ID) {
		return domain.ErrNotFound
	}
	query := `
		UPDATE colaboradores
		SET nombre = $2, salario_bruto = $3, antiguedad = $4, horas_mensuales = $5, costos_rigidos = $6,
		    rol = $7, nivel = $8, tecnologias = $9, disponibilidad = $10, activo = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		c.ID, c.Nombre, c.SalarioBruto, c.Antiguedad, c.HorasMensuales, nonNil(c.CostosRigidos),
		c.Rol, c.Nivel, nonNil(c.Tecnologias), c.Disponibilidad, c.Activo, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update colaborador: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un colaborador por ID.
func (r *ColaboradorRepo) Delete(ctx context.Context, id string) error {
	if !idValido(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM colaboradores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete colaborador: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los colaboradores ordenados por nombre.
func (r *ColaboradorRepo) List(ctx context.Context) ([]*entity.Colaborador, error) {
	rows, err := r.q.Query(ctx, `SELECT `+colaboradorColumns+` FROM colaboradores ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list colaboradores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Colaborador
	for rows.Next() {
		c, err := scanColaborador(rows)
		if err != nil {
			return nil, fmt.Errorf("scan colaborador: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// CountByCostoRigido cuenta colaboradores cuyo arreglo costos_rigidos contiene el ID.
func (r *ColaboradorRepo) CountByCostoRigido(ctx context.Context, costoRigidoID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM colaboradores WHERE $1 = ANY(costos_rigidos)`, costoRigidoID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count colaboradores por costo rigido: %w", err)
	}
	return n, nil
}

func scanColaborador(row pgx.Row) (*entity.Colaborador, error) {
	var c entity.Colaborador
	if err := row.Scan(
		&c.ID, &c.Nombre, &c.SalarioBruto, &c.Antiguedad, &c.HorasMensuales, &c.CostosRigidos,
		&c.Rol, &c.Nivel, &c.Tecnologias, &c.Disponibilidad, &c.Activo, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// nonNil evita escribir NULL en columnas TEXT[] NOT NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
