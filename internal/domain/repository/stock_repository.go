package repository

import (
	"context"

	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
)

// StockRepository define el puerto para el libro de stock (tienda, producto) -> cantidad.
// Usado dentro de transacciones (TxRunner) para garantizar consistencia.
type StockRepository interface {
	Get(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error)
	// Upsert inserta o sobrescribe la cantidad; un registro nuevo va al final del orden de inserción.
	Upsert(ctx context.Context, rec entity.StockRecord) (*entity.StockRecord, error)
	List(ctx context.Context, filter entity.StockFilter) ([]*entity.StockRecord, error)
	Delete(ctx context.Context, key entity.StockKey) (bool, error)
	DeleteByStore(ctx context.Context, storeID int64) (int64, error)
	DeleteByProduct(ctx context.Context, productID int64) (int64, error)
	Clear(ctx context.Context) error
}
