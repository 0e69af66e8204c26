package repository

import (
	"context"

	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Create devuelve domain.ErrDuplicateSKU si el backend rechaza el SKU por unicidad.
type ProductRepository interface {
	Create(ctx context.Context, name, sku string) (*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Clear(ctx context.Context) error
}
