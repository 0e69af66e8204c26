package inventory

import (
	"context"

	"github.com/jhoicas/retail-stock-api/internal/domain"
	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
	"github.com/jhoicas/retail-stock-api/internal/domain/repository"
)

// StockLedger mantiene el mapeo (tienda, producto) -> cantidad y hace cumplir la integridad
// referencial en cada escritura. No es dueño de tiendas ni productos: solo los lee.
type StockLedger struct {
	txRunner TxRunner
}

// NewStockLedger construye el libro de stock.
func NewStockLedger(txRunner TxRunner) *StockLedger {
	return &StockLedger{txRunner: txRunner}
}

// UpsertInput entrada de Upsert.
type UpsertInput struct {
	StoreID   int64
	ProductID int64
	Quantity  int64
}

// Upsert crea o sobrescribe la cantidad de un par (tienda, producto).
// Orden de validación: primero la tienda, luego el producto.
func (l *StockLedger) Upsert(ctx context.Context, in UpsertInput) (*entity.StockRecord, error) {
	var out *entity.StockRecord
	err := l.txRunner.Run(ctx, func(
		storeRepo repository.StoreRepository,
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error {
		store, err := storeRepo.GetByID(ctx, in.StoreID)
		if err != nil {
			return err
		}
		if store == nil {
			return domain.ErrUnknownStore
		}
		product, err := productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrUnknownProduct
		}
		out, err = stockRepo.Upsert(ctx, entity.StockRecord{
			StoreID:   in.StoreID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devuelve los registros en orden de inserción, filtrados por tienda y/o producto.
func (l *StockLedger) List(ctx context.Context, filter entity.StockFilter) ([]*entity.StockRecord, error) {
	var out []*entity.StockRecord
	err := l.txRunner.View(ctx, func(
		_ repository.StoreRepository,
		_ repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error {
		var err error
		out, err = stockRepo.List(ctx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina el registro exacto; ErrStockNotFound si no existe.
func (l *StockLedger) Delete(ctx context.Context, key entity.StockKey) error {
	return l.txRunner.Run(ctx, func(
		_ repository.StoreRepository,
		_ repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error {
		deleted, err := stockRepo.Delete(ctx, key)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.ErrStockNotFound
		}
		return nil
	})
}

// CascadeDeleteByStore elimina todo el stock de una tienda. Se ejecuta con el stockRepo de la
// transacción del llamador (borrado de tienda), nunca abre una propia.
func (l *StockLedger) CascadeDeleteByStore(ctx context.Context, stockRepo repository.StockRepository, storeID int64) (int64, error) {
	return stockRepo.DeleteByStore(ctx, storeID)
}

// CascadeDeleteByProduct simétrico a CascadeDeleteByStore.
func (l *StockLedger) CascadeDeleteByProduct(ctx context.Context, stockRepo repository.StockRepository, productID int64) (int64, error) {
	return stockRepo.DeleteByProduct(ctx, productID)
}
