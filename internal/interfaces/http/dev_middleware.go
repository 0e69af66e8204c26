package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-stock-api/internal/application/dto"
)

// RequireDevReset devuelve un middleware Fiber que bloquea los endpoints de limpieza
// cuando INVENTORY_ENABLE_DEV_RESET=false.
//
// Comportamiento:
//   - 403 Forbidden → limpieza deshabilitada en este entorno.
//   - Habilitada → continúa al handler.
func RequireDevReset(enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "DEV_RESET_DISABLED",
				Message: "la limpieza de datos está deshabilitada en este entorno",
			})
		}
		return c.Next()
	}
}
