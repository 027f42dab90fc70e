package postgres

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDValido(t *testing.T) {
	assert.True(t, idValido(uuid.NewString()))
	assert.True(t, idValido("6F9619FF-8B86-D011-B42D-00C04FC964FF"))
	assert.False(t, idValido(""))
	assert.False(t, idValido("fantasma"))
	assert.False(t, idValido("123"))
}

// Sin Querier: cualquier consulta haría panic, así que los ids mal formados
// deben resolverse antes de tocar la base.
func TestRepos_IDNoUUIDEsNoEncontrado(t *testing.T) {
	ctx := context.Background()
	const id = "no-es-uuid"

	t.Run("proyectos", func(t *testing.T) {
		r := NewProyectoRepository(nil)
		p, err := r.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, r.Update(ctx, &entity.Proyecto{ID: id}), domain.ErrNotFound)
		assert.ErrorIs(t, r.Delete(ctx, id), domain.ErrNotFound)
	})

	t.Run("colaboradores", func(t *testing.T) {
		r := NewColaboradorRepository(nil)
		c, err := r.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, c)
		assert.ErrorIs(t, r.Update(ctx, &entity.Colaborador{ID: id}), domain.ErrNotFound)
		assert.ErrorIs(t, r.Delete(ctx, id), domain.ErrNotFound)
	})

	t.Run("costos rigidos", func(t *testing.T) {
		r := NewCostoRigidoRepository(nil)
		c, err := r.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, c)
		assert.ErrorIs(t, r.Update(ctx, &entity.CostoRigido{ID: id}), domain.ErrNotFound)
		assert.ErrorIs(t, r.Delete(ctx, id), domain.ErrNotFound)
	})
}

func TestMigraciones_AsignacionAceptaIDTexto(t *testing.T) {
	nombres, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, nombres)

	// La última definición de colaborador_id debe ser TEXT.
	var ultima string
	for _, n := range nombres {
		raw, err := fs.ReadFile(migrationsFS, n)
		require.NoError(t, err)
		up, _, _ := strings.Cut(string(raw), "-- +goose Down")
		for _, linea := range strings.Split(up, "\n") {
			if strings.Contains(linea, "colaborador_id") && (strings.Contains(linea, "UUID") || strings.Contains(linea, "TEXT")) {
				ultima = linea
			}
		}
	}
	assert.Contains(t, ultima, "TYPE TEXT", "última definición: %q", ultima)
}
