package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/usecase"
)

// ProjectHandler maneja las peticiones HTTP de proyectos.
type ProjectHandler struct {
	uc *usecase.ProjectUseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proyecto
// @Tags         proyectos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProyectoRequest  true  "Proyecto con asignaciones"
// @Success      201   {object}  dto.ProyectoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/proyectos [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.ProyectoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/proyectos/:id
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar proyectos
// @Tags         proyectos
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "planificacion | activo | pausado | completado | cancelado"
// @Success      200     {object}  dto.ProyectoListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/proyectos [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("estado"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update reemplaza el proyecto completo, asignaciones incluidas.
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in dto.ProyectoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/proyectos/:id
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
