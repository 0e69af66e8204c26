package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/retail-stock-api/internal/application/inventory"
	"github.com/jhoicas/retail-stock-api/internal/domain"
	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
	"github.com/jhoicas/retail-stock-api/internal/domain/repository"
)

// ProductUseCase casos de uso para productos. La unicidad de SKU es configurable.
type ProductUseCase struct {
	txRunner   inventory.TxRunner
	ledger     *inventory.StockLedger
	uniqueSKUs bool
}

// NewProductUseCase construye el caso de uso. uniqueSKUs activa el rechazo de SKUs repetidos.
func NewProductUseCase(txRunner inventory.TxRunner, ledger *inventory.StockLedger, uniqueSKUs bool) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, ledger: ledger, uniqueSKUs: uniqueSKUs}
}

// Create registra un nuevo producto. Con unicidad activa devuelve ErrDuplicateSKU si el SKU existe.
func (uc *ProductUseCase) Create(ctx context.Context, name, sku string) (*entity.Product, error) {
	name, sku = normalize(name), normalize(sku)
	var out *entity.Product
	err := uc.txRunner.Run(ctx, func(
		_ repository.StoreRepository,
		productRepo repository.ProductRepository,
		_ repository.StockRepository,
	) error {
		if uc.uniqueSKUs {
			existing, err := productRepo.GetBySKU(ctx, sku)
			if err != nil {
				return err
			}
			if existing != nil {
				return domain.ErrDuplicateSKU
			}
		}
		var err error
		out, err = productRepo.Create(ctx, name, sku)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un producto; ErrProductNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var out *entity.Product
	err := uc.txRunner.View(ctx, func(
		_ repository.StoreRepository,
		productRepo repository.ProductRepository,
		_ repository.StockRepository,
	) error {
		var err error
		out, err = productRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, domain.ErrProductNotFound
	}
	return out, nil
}

// List lista todos los productos en orden de creación.
func (uc *ProductUseCase) List(ctx context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	err := uc.txRunner.View(ctx, func(
		_ repository.StoreRepository,
		productRepo repository.ProductRepository,
		_ repository.StockRepository,
	) error {
		var err error
		out, err = productRepo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina el producto y su stock en todas las tiendas, en una sola transacción.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		_ repository.StoreRepository,
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error {
		product, err := productRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		removed, err := uc.ledger.CascadeDeleteByProduct(ctx, stockRepo, id)
		if err != nil {
			return err
		}
		if _, err := productRepo.Delete(ctx, id); err != nil {
			return err
		}
		zerolog.Ctx(ctx).Debug().
			Int64("product_id", id).
			Int64("stock_removed", removed).
			Msg("producto eliminado con cascada de stock")
		return nil
	})
}
