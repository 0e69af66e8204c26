package dto

import "github.com/jhoicas/retail-stock-api/internal/domain/entity"

// UpsertStockRequest entrada para crear o actualizar la cantidad de un par (tienda, producto).
// Los punteros distinguen un campo ausente de un cero.
type UpsertStockRequest struct {
	StoreID   *int64 `json:"store_id" validate:"required"`
	ProductID *int64 `json:"product_id" validate:"required"`
	Quantity  *int64 `json:"quantity" validate:"required"`
}

// StockResponse salida de un registro de stock.
type StockResponse struct {
	StoreID   int64 `json:"store_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// ToStockResponse convierte la entidad a DTO.
func ToStockResponse(s *entity.StockRecord) StockResponse {
	return StockResponse{StoreID: s.StoreID, ProductID: s.ProductID, Quantity: s.Quantity}
}

// ToStockList convierte una lista; nunca devuelve nil.
func ToStockList(list []*entity.StockRecord) []StockResponse {
	out := make([]StockResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToStockResponse(s))
	}
	return out
}
