package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_MapeoDeEstados(t *testing.T) {
	casos := []struct {
		nombre string
		err    error
		status int
	}{
		{"no encontrado", domain.ErrNotFound, http.StatusNotFound},
		{"entrada inválida envuelta", fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput), http.StatusBadRequest},
		{"horas de alta gana 400", fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrHorasMensualesInvalidas), http.StatusBadRequest},
		{"horas en cotización", fmt.Errorf("cotizar proyecto: %w", domain.ErrHorasMensualesInvalidas), http.StatusUnprocessableEntity},
		{"conflicto", domain.ErrConflict, http.StatusConflict},
		{"duplicado", domain.ErrDuplicate, http.StatusConflict},
		{"otro", errors.New("db caída"), http.StatusInternalServerError},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return writeError(c, tc.err) })
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
