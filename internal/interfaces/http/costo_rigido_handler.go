package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/usecase"
)

// RigidCostHandler maneja las peticiones HTTP del catálogo de costos rígidos.
type RigidCostHandler struct {
	uc *usecase.RigidCostUseCase
}

// NewRigidCostHandler construye el handler.
func NewRigidCostHandler(uc *usecase.RigidCostUseCase) *RigidCostHandler {
	return &RigidCostHandler{uc: uc}
}

// Create godoc
// @Summary      Crear costo rígido
// @Tags         costos-rigidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCostoRigidoRequest  true  "Datos del costo"
// @Success      201   {object}  dto.CostoRigidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/costos-rigidos [post]
func (h *RigidCostHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCostoRigidoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener costo rígido por ID
// @Tags         costos-rigidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del costo"
// @Success      200  {object}  dto.CostoRigidoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/costos-rigidos/{id} [get]
func (h *RigidCostHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar costos rígidos
// @Tags         costos-rigidos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CostoRigidoListResponse
// @Router       /api/costos-rigidos [get]
func (h *RigidCostHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar costo rígido
// @Tags         costos-rigidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del costo"
// @Param        body  body  dto.UpdateCostoRigidoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CostoRigidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/costos-rigidos/{id} [put]
func (h *RigidCostHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCostoRigidoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar costo rígido
// @Description  409 si algún colaborador todavía lo referencia.
// @Tags         costos-rigidos
// @Security     Bearer
// @Param        id   path  string  true  "ID del costo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/costos-rigidos/{id} [delete]
func (h *RigidCostHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
