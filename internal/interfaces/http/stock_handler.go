package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-stock-api/internal/application/dto"
	"github.com/jhoicas/retail-stock-api/internal/application/inventory"
	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
	"github.com/jhoicas/retail-stock-api/internal/infrastructure/metrics"
)

// StockHandler maneja las peticiones HTTP del libro de stock.
type StockHandler struct {
	ledger  *inventory.StockLedger
	metrics *metrics.Metrics
}

// NewStockHandler construye el handler. metrics puede ser nil.
func NewStockHandler(ledger *inventory.StockLedger, m *metrics.Metrics) *StockHandler {
	return &StockHandler{ledger: ledger, metrics: m}
}

// List godoc
// @Summary      Listar stock
// @Description  Filtros opcionales; si vienen ambos se combinan (AND).
// @Tags         stock
// @Produce      json
// @Param        store_id    query  int  false  "Filtrar por tienda"
// @Param        product_id  query  int  false  "Filtrar por producto"
// @Success      200  {array}   dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	storeID, ok := queryInt64(c, "store_id")
	if !ok {
		return badRequest(c, "store_id debe ser entero")
	}
	productID, ok := queryInt64(c, "product_id")
	if !ok {
		return badRequest(c, "product_id debe ser entero")
	}
	list, err := h.ledger.List(c.UserContext(), entity.StockFilter{StoreID: storeID, ProductID: productID})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToStockList(list))
}

// Upsert godoc
// @Summary      Crear o actualizar stock
// @Description  La tienda y el producto deben existir. Si el par ya tiene registro se sobrescribe la cantidad.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertStockRequest  true  "store_id, product_id, quantity"
// @Success      201   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /stock [post]
func (h *StockHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.StoreID == nil || in.ProductID == nil || in.Quantity == nil {
		return badRequest(c, "store_id, product_id y quantity son requeridos")
	}
	out, err := h.ledger.Upsert(c.UserContext(), inventory.UpsertInput{
		StoreID:   *in.StoreID,
		ProductID: *in.ProductID,
		Quantity:  *in.Quantity,
	})
	h.observe("upsert", err)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToStockResponse(out))
}

// Delete godoc
// @Summary      Eliminar stock de un par (tienda, producto)
// @Tags         stock
// @Param        store_id    query  int  true  "ID de la tienda"
// @Param        product_id  query  int  true  "ID del producto"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /stock [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	storeID, okStore := queryInt64(c, "store_id")
	productID, okProduct := queryInt64(c, "product_id")
	if !okStore || !okProduct || storeID == nil || productID == nil {
		return badRequest(c, "store_id y product_id enteros son requeridos")
	}
	err := h.ledger.Delete(c.UserContext(), entity.StockKey{StoreID: *storeID, ProductID: *productID})
	h.observe("delete", err)
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *StockHandler) observe(op string, err error) {
	if h.metrics != nil {
		h.metrics.ObserveStockWrite(op, err)
	}
}
