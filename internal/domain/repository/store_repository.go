package repository

import (
	"context"

	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store (DIP).
// GetByID devuelve (nil, nil) si no existe.
type StoreRepository interface {
	Create(ctx context.Context, name, city string) (*entity.Store, error)
	GetByID(ctx context.Context, id int64) (*entity.Store, error)
	List(ctx context.Context) ([]*entity.Store, error)
	// Delete elimina la tienda; devuelve false si no existía.
	Delete(ctx context.Context, id int64) (bool, error)
	// Clear vacía la tabla y reinicia el contador de IDs a 1.
	Clear(ctx context.Context) error
}
