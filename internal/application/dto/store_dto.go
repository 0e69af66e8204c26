package dto

import "github.com/jhoicas/retail-stock-api/internal/domain/entity"

// CreateStoreRequest entrada para registrar una tienda.
type CreateStoreRequest struct {
	Name string `json:"name"`
	City string `json:"city"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

// ToStoreResponse convierte la entidad a DTO.
func ToStoreResponse(s *entity.Store) StoreResponse {
	return StoreResponse{ID: s.ID, Name: s.Name, City: s.City}
}

// ToStoreList convierte una lista; nunca devuelve nil (se serializa como []).
func ToStoreList(list []*entity.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToStoreResponse(s))
	}
	return out
}
