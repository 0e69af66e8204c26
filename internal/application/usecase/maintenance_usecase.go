package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/retail-stock-api/internal/application/inventory"
	"github.com/jhoicas/retail-stock-api/internal/domain/repository"
)

// MaintenanceUseCase operaciones de desarrollo/pruebas. Sin autorización: no exponer en producción.
type MaintenanceUseCase struct {
	txRunner inventory.TxRunner
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(txRunner inventory.TxRunner) *MaintenanceUseCase {
	return &MaintenanceUseCase{txRunner: txRunner}
}

// ClearAll vacía tiendas, productos y stock, y reinicia los contadores de ID a 1.
// El stock se vacía primero para no violar las llaves foráneas.
func (uc *MaintenanceUseCase) ClearAll(ctx context.Context) error {
	err := uc.txRunner.Run(ctx, func(
		storeRepo repository.StoreRepository,
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := stockRepo.Clear(ctx); err != nil {
			return err
		}
		if err := productRepo.Clear(ctx); err != nil {
			return err
		}
		return storeRepo.Clear(ctx)
	})
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().Msg("datos de inventario eliminados")
	return nil
}
