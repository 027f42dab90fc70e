package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/Costeo-api/internal/application/analytics"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportsHandler expone la página de reportes y su exportación a Excel.
type ReportsHandler struct {
	uc *appanalytics.ReportsUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *appanalytics.ReportsUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// Get godoc
// @Summary      Reporte de cartera
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "Filtro de estado del proyecto"
// @Success      200     {object}  dto.ReportDTO
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reportes [get]
func (h *ReportsHandler) Get(c *fiber.Ctx) error {
	var filter dto.ReportFilter
	if err := c.QueryParser(&filter); err != nil {
		return badBody(c)
	}
	out, err := h.uc.GetReport(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar reporte a Excel
// @Tags         reportes
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        estado  query  string  false  "Filtro de estado del proyecto"
// @Success      200     {file}  binary
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reportes/export [get]
func (h *ReportsHandler) Export(c *fiber.Ctx) error {
	var filter dto.ReportFilter
	if err := c.QueryParser(&filter); err != nil {
		return badBody(c)
	}
	data, filename, err := h.uc.ExportXLSX(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
