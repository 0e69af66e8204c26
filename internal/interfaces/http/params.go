package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// pathID lee :id como entero; ok=false si falta o no es numérico.
func pathID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// queryInt64 lee un query param opcional. Ausente -> (nil, true); no numérico -> (nil, false).
func queryInt64(c *fiber.Ctx, key string) (*int64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}
