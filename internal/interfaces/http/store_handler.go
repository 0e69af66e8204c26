package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-stock-api/internal/application/dto"
	"github.com/jhoicas/retail-stock-api/internal/application/usecase"
)

// StoreHandler maneja las peticiones HTTP para Store.
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar tienda
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRequest  true  "Datos de la tienda"
// @Success      201   {object}  dto.StoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /stores [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in.Name, in.City)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToStoreResponse(out))
}

// List godoc
// @Summary      Listar tiendas
// @Tags         stores
// @Produce      json
// @Success      200  {array}  dto.StoreResponse
// @Router       /stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToStoreList(list))
}

// GetByID godoc
// @Summary      Obtener tienda por ID
// @Tags         stores
// @Produce      json
// @Param        id   path  int  true  "ID de la tienda"
// @Success      200  {object}  dto.StoreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /stores/{id} [get]
func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id debe ser entero")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToStoreResponse(out))
}

// Delete godoc
// @Summary      Eliminar tienda (y su stock)
// @Tags         stores
// @Param        id   path  int  true  "ID de la tienda"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /stores/{id} [delete]
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id debe ser entero")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
