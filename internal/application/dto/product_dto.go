package dto

import "github.com/jhoicas/retail-stock-api/internal/domain/entity"

// CreateProductRequest entrada para registrar un producto.
type CreateProductRequest struct {
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// ToProductResponse convierte la entidad a DTO.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, SKU: p.SKU}
}

// ToProductList convierte una lista; nunca devuelve nil.
func ToProductList(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToProductResponse(p))
	}
	return out
}
