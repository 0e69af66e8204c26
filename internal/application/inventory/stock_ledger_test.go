package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-stock-api/internal/application/inventory"
	"github.com/jhoicas/retail-stock-api/internal/domain"
	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
	"github.com/jhoicas/retail-stock-api/internal/domain/repository"
	"github.com/jhoicas/retail-stock-api/internal/infrastructure/memory"
)

// seed crea n tiendas y m productos directamente en el backend.
func seed(t *testing.T, db *memory.DB, stores, products int) {
	t.Helper()
	ctx := context.Background()
	err := db.Run(ctx, func(s repository.StoreRepository, p repository.ProductRepository, _ repository.StockRepository) error {
		for i := 0; i < stores; i++ {
			if _, err := s.Create(ctx, "Tienda", "Quito"); err != nil {
				return err
			}
		}
		for i := 0; i < products; i++ {
			if _, err := p.Create(ctx, "Producto", "SKU-"+string(rune('A'+i))); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func ptr(v int64) *int64 { return &v }

func TestStockLedger_UpsertSobrescribeMismaLlave(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB(true)
	seed(t, db, 1, 1)
	ledger := inventory.NewStockLedger(db)

	rec, err := ledger.Upsert(ctx, inventory.UpsertInput{StoreID: 1, ProductID: 1, Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, entity.StockRecord{StoreID: 1, ProductID: 1, Quantity: 10}, *rec)

	rec, err = ledger.Upsert(ctx, inventory.UpsertInput{StoreID: 1, ProductID: 1, Quantity: 25})
	require.NoError(t, err)
	assert.Equal(t, int64(25), rec.Quantity)

	list, err := ledger.List(ctx, entity.StockFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(25), list[0].Quantity)
}

func TestStockLedger_UpsertIdempotente(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB(true)
	seed(t, db, 1, 1)
	ledger := inventory.NewStockLedger(db)

	for i := 0; i < 3; i++ {
		_, err := ledger.Upsert(ctx, inventory.UpsertInput{StoreID: 1, ProductID: 1, Quantity: 7})
		require.NoError(t, err)
	}
	list, err := ledger.List(ctx, entity.StockFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStockLedger_TiendaInexistenteSiempreFalla(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB(true)
	seed(t, db, 0, 1)
	ledger := inventory.NewStockLedger(db)

	// producto válido e inválido: en ambos casos gana el error de tienda
	for _, productID := range []int64{1, 2} {
		_, err := ledger.Upsert(ctx, inventory.UpsertInput{StoreID: 999, ProductID: productID, Quantity: 5})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnknownStore))
		assert.True(t, errors.Is(err, domain.ErrValidation))
	}

	list, err := ledger.List(ctx, entity.StockFilter{})
	require.NoError(t, err)
	assert.Empty(t, list, "el estado no debe cambiar")
}

func TestStockLedger_ProductoInexistente(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB(true)
	seed(t, db, 1, 0)
	ledger := inventory.NewStockLedger(db)

	_, err := ledger.Upsert(ctx, inventory.UpsertInput{StoreID: 1, ProductID: 3, Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrUnknownProduct)
	assert.Equal(t, "Product not found", domain.Detail(err))
}

func TestStockLedger_CantidadNegativaSeGuarda(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB(true)
	seed(t, db, 1, 1)
	ledger := inventory.NewStockLedger(db)

	rec, err := ledger.Upsert(ctx, inventory.UpsertInput{StoreID: 1, ProductID: 1, Quantity: -5})
	require.NoError(t, err)
	assert.Equal(t, int64(-5), rec.Quantity)

	list, err := ledger.List(ctx, entity.StockFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(-5), list[0].Quantity)
}

func TestStockLedger_FiltrosCombinados(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB(true)
	seed(t, db, 2, 2)
	ledger := inventory.NewStockLedger(db)
	// cobertura parcial: (1,1) (1,2) (2,1)
	for _, in := range []inventory.UpsertInput{
		{StoreID: 1, ProductID: 1, Quantity: 1},
		{StoreID: 1, ProductID: 2, Quantity: 2},
		{StoreID: 2, ProductID: 1, Quantity: 3},
	} {
		_, err := ledger.Upsert(ctx, in)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter entity.StockFilter
		want   []entity.StockKey
	}{
		{"sin filtros", entity.StockFilter{}, []entity.StockKey{{StoreID: 1, ProductID: 1}, {StoreID: 1, ProductID: 2}, {StoreID: 2, ProductID: 1}}},
		{"por tienda", entity.StockFilter{StoreID: ptr(1)}, []entity.StockKey{{StoreID: 1, ProductID: 1}, {StoreID: 1, ProductID: 2}}},
		{"por producto", entity.StockFilter{ProductID: ptr(1)}, []entity.StockKey{{StoreID: 1, ProductID: 1}, {StoreID: 2, ProductID: 1}}},
		{"ambos", entity.StockFilter{StoreID: ptr(2), ProductID: ptr(1)}, []entity.StockKey{{StoreID: 2, ProductID: 1}}},
		{"ambos sin registro", entity.StockFilter{StoreID: ptr(2), ProductID: ptr(2)}, []entity.StockKey{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := ledger.List(ctx, tt.filter)
			require.NoError(t, err)
			got := make([]entity.StockKey, 0, len(list))
			for _, r := range list {
				got = append(got, r.Key())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStockLedger_EliminarLlaveExacta(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB(true)
	seed(t, db, 1, 2)
	ledger := inventory.NewStockLedger(db)
	_, err := ledger.Upsert(ctx, inventory.UpsertInput{StoreID: 1, ProductID: 1, Quantity: 1})
	require.NoError(t, err)

	err = ledger.Delete(ctx, entity.StockKey{StoreID: 1, ProductID: 2})
	assert.ErrorIs(t, err, domain.ErrStockNotFound)

	require.NoError(t, ledger.Delete(ctx, entity.StockKey{StoreID: 1, ProductID: 1}))
	err = ledger.Delete(ctx, entity.StockKey{StoreID: 1, ProductID: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockLedger_CascadaSinCoincidenciasNoFalla(t *testing.T) {
	ctx := context.Background()
	db := memory.NewDB(true)
	ledger := inventory.NewStockLedger(db)
	err := db.Run(ctx, func(_ repository.StoreRepository, _ repository.ProductRepository, stock repository.StockRepository) error {
		n, err := ledger.CascadeDeleteByStore(ctx, stock, 42)
		assert.Zero(t, n)
		return err
	})
	assert.NoError(t, err)
}
