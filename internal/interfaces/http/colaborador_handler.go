package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/usecase"
)

// CollaboratorHandler maneja las peticiones HTTP de colaboradores.
type CollaboratorHandler struct {
	uc *usecase.CollaboratorUseCase
}

// NewCollaboratorHandler construye el handler.
func NewCollaboratorHandler(uc *usecase.CollaboratorUseCase) *CollaboratorHandler {
	return &CollaboratorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear colaborador
// @Tags         colaboradores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateColaboradorRequest  true  "Datos del colaborador"
// @Success      201   {object}  dto.ColaboradorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/colaboradores [post]
func (h *CollaboratorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateColaboradorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID devuelve el colaborador con su carga rígida y tarifa base.
func (h *CollaboratorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/colaboradores
func (h *CollaboratorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar colaborador
// @Tags         colaboradores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del colaborador"
// @Param        body  body  dto.UpdateColaboradorRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ColaboradorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/colaboradores/{id} [put]
func (h *CollaboratorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateColaboradorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/colaboradores/:id. 409 si está asignado a algún proyecto.
func (h *CollaboratorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
