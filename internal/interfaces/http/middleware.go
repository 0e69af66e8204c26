package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/retail-stock-api/internal/infrastructure/metrics"
	"github.com/jhoicas/retail-stock-api/pkg/logger"
)

// RequestLogger adjunta al contexto de usuario un sublogger con request_id,
// para que los casos de uso lo recuperen con zerolog.Ctx, y registra cada petición.
// Si m no es nil también alimenta las métricas HTTP.
func RequestLogger(log *logger.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		// Sin Immutable, c.Method() apunta al buffer que Fiber reutiliza entre peticiones.
		method := utils.CopyString(c.Method())
		reqLog := log.With().
			Str("request_id", requestIDOf(c)).
			Str("method", method).
			Str("path", c.Path()).
			Logger()
		c.SetUserContext(reqLog.WithContext(c.UserContext()))

		err := c.Next()
		if err != nil {
			// Deja que el ErrorHandler de Fiber fije el status antes de medir.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		elapsed := time.Since(start)
		if m != nil {
			m.ObserveRequest(method, routeOf(c), status, elapsed)
		}
		reqLog.Debug().Int("status", status).Dur("elapsed", elapsed).Msg("petición atendida")
		return nil
	}
}

func requestIDOf(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return id
	}
	return ""
}

// routeOf devuelve el patrón de ruta (/stores/:id) para acotar la cardinalidad.
func routeOf(c *fiber.Ctx) string {
	if r := c.Route(); r != nil && r.Path != "" {
		return utils.CopyString(r.Path)
	}
	return "desconocida"
}
