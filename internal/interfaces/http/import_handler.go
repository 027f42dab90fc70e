package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/application/importer"
)

// maxImportSize límite de la planilla subida (10 MB).
const maxImportSize = 10 << 20

// ImportHandler recibe planillas de carga masiva.
type ImportHandler struct {
	uc *importer.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import godoc
// @Summary      Importar costos rígidos y colaboradores
// @Description  Acepta .xlsx (hojas CostosRigidos y Colaboradores) o .csv de colaboradores. Todo o nada:
// @Description  si alguna fila es inválida no se escribe nada y se devuelven los errores.
// @Tags         importar
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Planilla"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ImportResult
// @Router       /api/importar [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo file requerido"})
	}
	if fh.Size > maxImportSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "la planilla supera 10 MB"})
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()

	res, err := h.uc.Importar(c.Context(), f, fh.Filename)
	if err != nil {
		return writeError(c, err)
	}
	if len(res.Errores) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(res)
	}
	return c.JSON(res)
}
