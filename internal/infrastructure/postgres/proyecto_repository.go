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

var _ repository.ProyectoRepository = (*ProyectoRepo)(nil)

const proyectoColumns = `id, nombre, cliente, descripcion, duracion_meses, tasa_cambio, margen_deseado,
	factor_riesgo_proyecto, gasto_infraestructura, gasto_licencias, gasto_capacitacion, gasto_otros,
	estado, fecha_inicio, created_at, updated_at`

// ProyectoRepo implementación de ProyectoRepository sobre PostgreSQL.
// La cabecera vive en proyectos y las asignaciones en proyecto_colaboradores (orden preservado).
type ProyectoRepo struct {
	q Querier
}

// NewProyectoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProyectoRepository(q Querier) *ProyectoRepo {
	return &ProyectoRepo{q: q}
}

// Create inserta cabecera y asignaciones en una transacción.
func (r *ProyectoRepo) Create(ctx context.Context, p *entity.Proyecto) error {
	return inTx(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			INSERT INTO proyectos (` + proyectoColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
		g := p.GastosAdicionales
		_, err := tx.Exec(ctx, query,
			p.ID, p.Nombre, p.Cliente, p.Descripcion, p.DuracionMeses, p.TasaCambio, p.MargenDeseado,
			p.FactorRiesgoProyecto, g.Infraestructura, g.Licencias, g.Capacitacion, g.Otros,
			p.Estado, p.FechaInicio, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert proyecto: %w", err)
		}
		return insertAsignaciones(ctx, tx, p.ID, p.Colaboradores)
	})
}

// GetByID obtiene el proyecto con sus asignaciones. Devuelve (nil, nil) si no existe.
func (r *ProyectoRepo) GetByID(ctx context.Context, id string) (*entity.Proyecto, error) {
	if !idValido(id) {
		return nil, nil
	}
	query := `SELECT ` + proyectoColumns + ` FROM proyectos WHERE id = $1`
	p, err := scanProyecto(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proyecto: %w", err)
	}
	asignaciones, err := r.asignacionesPorProyecto(ctx, []string{p.ID})
	if err != nil {
		return nil, err
	}
	p.Colaboradores = asignaciones[p.ID]
	return p, nil
}

// Update reemplaza la cabecera y todas las asignaciones en una transacción.
func (r *ProyectoRepo) Update(ctx context.Context, p *entity.Proyecto) error {
	if !idValido(p.ID) {
		return domain.ErrNotFound
	}
	return inTx(ctx, r.q, func(tx pgx.Tx) error {
		query := `
			UPDATE proyectos
			SET nombre = $2, cliente = $3, descripcion = $4, duracion_meses = $5, tasa_cambio = $6,
			    margen_deseado = $7, factor_riesgo_proyecto = $8, gasto_infraestructura = $9,
			    gasto_licencias = $10, gasto_capacitacion = $11, gasto_otros = $12, estado = $13,
			    fecha_inicio = $14, updated_at = $15
			WHERE id = $1`
		g := p.GastosAdicionales
		cmd, err := tx.Exec(ctx, query,
			p.ID, p.Nombre, p.Cliente, p.Descripcion, p.DuracionMeses, p.TasaCambio,
			p.MargenDeseado, p.FactorRiesgoProyecto, g.Infraestructura,
			g.Licencias, g.Capacitacion, g.Otros, p.Estado,
			p.FechaInicio, p.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update proyecto: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM proyecto_colaboradores WHERE proyecto_id = $1`, p.ID); err != nil {
			return fmt.Errorf("delete asignaciones: %w", err)
		}
		return insertAsignaciones(ctx, tx, p.ID, p.Colaboradores)
	})
}

// Delete elimina el proyecto; las asignaciones caen por ON DELETE CASCADE.
func (r *ProyectoRepo) Delete(ctx context.Context, id string) error {
	if !idValido(id) {
		return domain.ErrNotFound
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM proyectos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proyecto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los proyectos (filtrados por estado si no es vacío) con sus asignaciones.
// Las asignaciones se cargan con una sola consulta adicional.
func (r *ProyectoRepo) List(ctx context.Context, estado string) ([]*entity.Proyecto, error) {
	query := `SELECT ` + proyectoColumns + ` FROM proyectos
		WHERE ($1 = '' OR estado = $1)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, estado)
	if err != nil {
		return nil, fmt.Errorf("list proyectos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Proyecto
	ids := make([]string, 0)
	for rows.Next() {
		p, err := scanProyecto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan proyecto: %w", err)
		}
		list = append(list, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	asignaciones, err := r.asignacionesPorProyecto(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		p.Colaboradores = asignaciones[p.ID]
	}
	return list, nil
}

// CountByColaborador cuenta los proyectos que asignan al colaborador.
func (r *ProyectoRepo) CountByColaborador(ctx context.Context, colaboradorID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(DISTINCT proyecto_id) FROM proyecto_colaboradores WHERE colaborador_id = $1`, colaboradorID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count proyectos por colaborador: %w", err)
	}
	return n, nil
}

func (r *ProyectoRepo) asignacionesPorProyecto(ctx context.Context, ids []string) (map[string][]entity.ProyectoColaborador, error) {
	rows, err := r.q.Query(ctx, `
		SELECT proyecto_id, colaborador_id, recargo, horas_asignadas, rol_en_proyecto, costo_por_hora_custom
		FROM proyecto_colaboradores
		WHERE proyecto_id = ANY($1)
		ORDER BY proyecto_id, orden`, ids)
	if err != nil {
		return nil, fmt.Errorf("list asignaciones: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.ProyectoColaborador, len(ids))
	for rows.Next() {
		var proyectoID string
		var a entity.ProyectoColaborador
		if err := rows.Scan(
			&proyectoID, &a.ColaboradorID, &a.Recargo, &a.HorasAsignadas, &a.RolEnProyecto, &a.CostoPorHoraCustom,
		); err != nil {
			return nil, fmt.Errorf("scan asignacion: %w", err)
		}
		out[proyectoID] = append(out[proyectoID], a)
	}
	return out, rows.Err()
}

func insertAsignaciones(ctx context.Context, tx pgx.Tx, proyectoID string, asignaciones []entity.ProyectoColaborador) error {
	if len(asignaciones) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, a := range asignaciones {
		batch.Queue(`
			INSERT INTO proyecto_colaboradores
				(proyecto_id, colaborador_id, orden, recargo, horas_asignadas, rol_en_proyecto, costo_por_hora_custom)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			proyectoID, a.ColaboradorID, i, a.Recargo, a.HorasAsignadas, a.RolEnProyecto, a.CostoPorHoraCustom,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: colaborador asignado dos veces", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert asignaciones: %w", err)
	}
	return nil
}

func scanProyecto(row pgx.Row) (*entity.Proyecto, error) {
	var p entity.Proyecto
	g := &p.GastosAdicionales
	if err := row.Scan(
		&p.ID, &p.Nombre, &p.Cliente, &p.Descripcion, &p.DuracionMeses, &p.TasaCambio, &p.MargenDeseado,
		&p.FactorRiesgoProyecto, &g.Infraestructura, &g.Licencias, &g.Capacitacion, &g.Otros,
		&p.Estado, &p.FechaInicio, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
