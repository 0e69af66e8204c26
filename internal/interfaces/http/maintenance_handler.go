package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-stock-api/internal/application/dto"
	"github.com/jhoicas/retail-stock-api/internal/application/usecase"
)

// MaintenanceHandler endpoints de desarrollo (limpieza de datos).
type MaintenanceHandler struct {
	uc *usecase.MaintenanceUseCase
}

// NewMaintenanceHandler construye el handler.
func NewMaintenanceHandler(uc *usecase.MaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc}
}

// Clear godoc
// @Summary      Borrar todos los datos
// @Description  Vacía tiendas, productos y stock y reinicia los IDs. Solo desarrollo/pruebas.
// @Tags         dev
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /clear [post]
func (h *MaintenanceHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.ClearAll(c.UserContext()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "All data cleared"})
}
