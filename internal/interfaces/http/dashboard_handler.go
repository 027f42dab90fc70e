package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/Costeo-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los totales de la cartera y la utilización del equipo.
// GET /api/dashboard/summary
//
// Los proyectos que el motor no puede cotizar no suman a los totales y se
// listan en proyectos_con_error.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
