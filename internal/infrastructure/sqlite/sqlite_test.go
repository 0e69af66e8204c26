package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-stock-api/internal/application/inventory"
	"github.com/jhoicas/retail-stock-api/internal/application/usecase"
	"github.com/jhoicas/retail-stock-api/internal/domain/repository"
	"github.com/jhoicas/retail-stock-api/internal/domain"
	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
	"github.com/jhoicas/retail-stock-api/internal/infrastructure/migrate"
	"github.com/jhoicas/retail-stock-api/internal/infrastructure/sqlite"
)

type backend struct {
	runner      *sqlite.TxRunner
	stores      *usecase.StoreUseCase
	products    *usecase.ProductUseCase
	maintenance *usecase.MaintenanceUseCase
	ledger      *inventory.StockLedger
}

func openBackend(t *testing.T, path string) backend {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = migrate.Up(ctx, db, migrate.DialectSQLite)
	require.NoError(t, err)

	runner := sqlite.NewTxRunner(db)
	ledger := inventory.NewStockLedger(runner)
	return backend{
		runner:      runner,
		stores:      usecase.NewStoreUseCase(runner, ledger),
		products:    usecase.NewProductUseCase(runner, ledger, true),
		maintenance: usecase.NewMaintenanceUseCase(runner),
		ledger:      ledger,
	}
}

func TestSQLite_EscenarioCompleto(t *testing.T) {
	ctx := context.Background()
	b := openBackend(t, ":memory:")

	s, err := b.stores.Create(ctx, "Store A", "X")
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.ID)
	p, err := b.products.Create(ctx, "Widget", "SKU-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)

	_, err = b.ledger.Upsert(ctx, inventory.UpsertInput{StoreID: 1, ProductID: 1, Quantity: 10})
	require.NoError(t, err)
	rec, err := b.ledger.Upsert(ctx, inventory.UpsertInput{StoreID: 1, ProductID: 1, Quantity: 25})
	require.NoError(t, err)
	assert.Equal(t, entity.StockRecord{StoreID: 1, ProductID: 1, Quantity: 25}, *rec)

	list, err := b.ledger.List(ctx, entity.StockFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, b.stores.Delete(ctx, 1))
	list, err = b.ledger.List(ctx, entity.StockFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSQLite_ErroresDeDominio(t *testing.T) {
	ctx := context.Background()
	b := openBackend(t, ":memory:")

	_, err := b.ledger.Upsert(ctx, inventory.UpsertInput{StoreID: 999, ProductID: 1, Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrUnknownStore)

	_, err = b.products.Create(ctx, "Widget", "SKU-1")
	require.NoError(t, err)
	_, err = b.products.Create(ctx, "Otro", "SKU-1")
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)

	assert.ErrorIs(t, b.stores.Delete(ctx, 3), domain.ErrStoreNotFound)
	assert.ErrorIs(t, b.ledger.Delete(ctx, entity.StockKey{StoreID: 1, ProductID: 1}), domain.ErrStockNotFound)
}

func TestSQLite_OrdenYFiltros(t *testing.T) {
	ctx := context.Background()
	b := openBackend(t, ":memory:")
	for _, name := range []string{"A", "B"} {
		_, err := b.stores.Create(ctx, name, "X")
		require.NoError(t, err)
	}
	for _, sku := range []string{"SKU-1", "SKU-2"} {
		_, err := b.products.Create(ctx, "P", sku)
		require.NoError(t, err)
	}
	// insertado fuera de orden de llave: el listado respeta el orden de inserción
	for _, in := range []inventory.UpsertInput{
		{StoreID: 2, ProductID: 1, Quantity: 3},
		{StoreID: 1, ProductID: 2, Quantity: 2},
		{StoreID: 1, ProductID: 1, Quantity: 1},
	} {
		_, err := b.ledger.Upsert(ctx, in)
		require.NoError(t, err)
	}
	// sobrescribir no mueve el registro
	_, err := b.ledger.Upsert(ctx, inventory.UpsertInput{StoreID: 2, ProductID: 1, Quantity: 30})
	require.NoError(t, err)

	list, err := b.ledger.List(ctx, entity.StockFilter{})
	require.NoError(t, err)
	quantities := []int64{}
	for _, r := range list {
		quantities = append(quantities, r.Quantity)
	}
	assert.Equal(t, []int64{30, 2, 1}, quantities)

	storeID, productID := int64(1), int64(1)
	list, err = b.ledger.List(ctx, entity.StockFilter{StoreID: &storeID})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	list, err = b.ledger.List(ctx, entity.StockFilter{StoreID: &storeID, ProductID: &productID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].Quantity)
}

func TestSQLite_ClearReiniciaIDs(t *testing.T) {
	ctx := context.Background()
	b := openBackend(t, ":memory:")
	for i := 0; i < 3; i++ {
		_, err := b.stores.Create(ctx, "T", "X")
		require.NoError(t, err)
	}
	require.NoError(t, b.stores.Delete(ctx, 3))
	s, err := b.stores.Create(ctx, "T", "X")
	require.NoError(t, err)
	assert.Equal(t, int64(4), s.ID, "AUTOINCREMENT no reutiliza ids")

	require.NoError(t, b.maintenance.ClearAll(ctx))
	s, err = b.stores.Create(ctx, "T", "X")
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.ID)
}

func TestSQLite_PersisteEnArchivo(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "inventory.db")

	b := openBackend(t, path)
	_, err := b.stores.Create(ctx, "Centro", "Quito")
	require.NoError(t, err)

	// reabrir: migrate.Up no reaplica y los datos siguen ahí
	again := openBackend(t, path)
	stores, err := again.stores.List(ctx)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Centro", stores[0].Name)
}

func TestSQLite_CantidadNegativaSeGuarda(t *testing.T) {
	ctx := context.Background()
	b := openBackend(t, ":memory:")
	_, err := b.stores.Create(ctx, "A", "X")
	require.NoError(t, err)
	_, err = b.products.Create(ctx, "P", "SKU-1")
	require.NoError(t, err)

	_, err = b.ledger.Upsert(ctx, inventory.UpsertInput{StoreID: 1, ProductID: 1, Quantity: -5})
	require.NoError(t, err)
	list, err := b.ledger.List(ctx, entity.StockFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(-5), list[0].Quantity)
}

// Escribiendo directo en el repositorio (sin las validaciones del libro) la llave
// foránea decide, y el error debe nombrar la referencia que falta.
func TestSQLite_LlaveForaneaNombraLaReferencia(t *testing.T) {
	ctx := context.Background()
	b := openBackend(t, ":memory:")
	_, err := b.stores.Create(ctx, "A", "X")
	require.NoError(t, err)
	_, err = b.products.Create(ctx, "P", "SKU-1")
	require.NoError(t, err)

	upsert := func(storeID, productID int64) error {
		return b.runner.Run(ctx, func(_ repository.StoreRepository, _ repository.ProductRepository, stock repository.StockRepository) error {
			_, err := stock.Upsert(ctx, entity.StockRecord{StoreID: storeID, ProductID: productID, Quantity: 1})
			return err
		})
	}

	err = upsert(9, 1)
	assert.ErrorIs(t, err, domain.ErrUnknownStore)
	assert.Equal(t, "Store not found", domain.Detail(err))

	err = upsert(1, 9)
	assert.ErrorIs(t, err, domain.ErrUnknownProduct)
	assert.Equal(t, "Product not found", domain.Detail(err))
}
