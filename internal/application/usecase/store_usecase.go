package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/retail-stock-api/internal/application/inventory"
	"github.com/jhoicas/retail-stock-api/internal/domain"
	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
	"github.com/jhoicas/retail-stock-api/internal/domain/repository"
)

// StoreUseCase casos de uso para tiendas: alta, consulta y baja con cascada de stock.
type StoreUseCase struct {
	txRunner inventory.TxRunner
	ledger   *inventory.StockLedger
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(txRunner inventory.TxRunner, ledger *inventory.StockLedger) *StoreUseCase {
	return &StoreUseCase{txRunner: txRunner, ledger: ledger}
}

// Create registra una nueva tienda con el siguiente ID disponible.
func (uc *StoreUseCase) Create(ctx context.Context, name, city string) (*entity.Store, error) {
	name, city = normalize(name), normalize(city)
	var out *entity.Store
	err := uc.txRunner.Run(ctx, func(
		storeRepo repository.StoreRepository,
		_ repository.ProductRepository,
		_ repository.StockRepository,
	) error {
		var err error
		out, err = storeRepo.Create(ctx, name, city)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene una tienda; ErrStoreNotFound si no existe.
func (uc *StoreUseCase) GetByID(ctx context.Context, id int64) (*entity.Store, error) {
	var out *entity.Store
	err := uc.txRunner.View(ctx, func(
		storeRepo repository.StoreRepository,
		_ repository.ProductRepository,
		_ repository.StockRepository,
	) error {
		var err error
		out, err = storeRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, domain.ErrStoreNotFound
	}
	return out, nil
}

// List lista todas las tiendas en orden de creación.
func (uc *StoreUseCase) List(ctx context.Context) ([]*entity.Store, error) {
	var out []*entity.Store
	err := uc.txRunner.View(ctx, func(
		storeRepo repository.StoreRepository,
		_ repository.ProductRepository,
		_ repository.StockRepository,
	) error {
		var err error
		out, err = storeRepo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina la tienda y todo su stock en una sola transacción.
func (uc *StoreUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		storeRepo repository.StoreRepository,
		_ repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error {
		store, err := storeRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if store == nil {
			return domain.ErrStoreNotFound
		}
		removed, err := uc.ledger.CascadeDeleteByStore(ctx, stockRepo, id)
		if err != nil {
			return err
		}
		if _, err := storeRepo.Delete(ctx, id); err != nil {
			return err
		}
		zerolog.Ctx(ctx).Debug().
			Int64("store_id", id).
			Int64("stock_removed", removed).
			Msg("tienda eliminada con cascada de stock")
		return nil
	})
}
