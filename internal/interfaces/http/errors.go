package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/retail-stock-api/internal/application/dto"
	"github.com/jhoicas/retail-stock-api/internal/domain"
)

// respondError traduce un error de dominio a su respuesta HTTP.
// Lo que no es de dominio se registra y sale como 500 sin exponer el detalle.
func respondError(c *fiber.Ctx, err error) error {
	detail := domain.Detail(err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error(), Detail: detail})
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: domain.ErrValidation.Error(), Detail: detail})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: domain.ErrInvalidInput.Error(), Detail: detail})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: domain.ErrConflict.Error(), Detail: detail})
	}
	zerolog.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

// badRequest responde 400 INVALID_INPUT para cuerpos o parámetros mal formados.
func badRequest(c *fiber.Ctx, detail string) error {
	return respondError(c, domain.Invalid(detail))
}
