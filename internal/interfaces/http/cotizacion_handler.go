package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/quote"
	"github.com/jhoicas/Costeo-api/internal/application/report"
)

// QuoteHandler expone la calculadora de cotizaciones y la descarga del PDF.
type QuoteHandler struct {
	uc  *quote.QuoteUseCase
	pdf *report.PDFUseCase
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(uc *quote.QuoteUseCase, pdf *report.PDFUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc, pdf: pdf}
}

// Calculate godoc
// @Summary      Cotizar proyecto guardado
// @Description  Costo por colaborador, costo mensual y total, riesgo, margen, IVA y precio final.
// @Tags         cotizaciones
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/proyectos/{id}/cotizacion [get]
func (h *QuoteHandler) Calculate(c *fiber.Ctx) error {
	out, err := h.uc.Calculate(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Simulate godoc
// @Summary      Simular cotización
// @Description  Cotiza un proyecto sin guardarlo, contra el catálogo persistido.
// @Tags         cotizaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SimulateQuoteRequest  true  "Proyecto a simular"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/cotizaciones/simular [post]
func (h *QuoteHandler) Simulate(c *fiber.Ctx) error {
	var in dto.SimulateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Simulate(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar cotización en PDF
// @Tags         cotizaciones
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proyectos/{id}/cotizacion/pdf [get]
func (h *QuoteHandler) DownloadPDF(c *fiber.Ctx) error {
	data, filename, err := h.pdf.DownloadProjectPDF(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
