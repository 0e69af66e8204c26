package backend_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-stock-api/internal/infrastructure/backend"
	"github.com/jhoicas/retail-stock-api/internal/infrastructure/memory"
	"github.com/jhoicas/retail-stock-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/retail-stock-api/pkg/config"
	"github.com/jhoicas/retail-stock-api/pkg/logger"
)

func TestOpen_Memoria(t *testing.T) {
	cfg := &config.Config{Inventory: config.InventoryConfig{Backend: config.BackendMemory, EnforceUniqueSKU: true}}
	b, err := backend.Open(context.Background(), cfg, logger.Nop(), backend.Options{Migrate: true})
	require.NoError(t, err)
	defer b.Close()

	assert.IsType(t, &memory.DB{}, b.TxRunner)
	assert.Nil(t, b.SQL)
}

func TestOpen_SQLiteMigraAlAbrir(t *testing.T) {
	cfg := &config.Config{
		Inventory: config.InventoryConfig{Backend: config.BackendSQLite},
		SQLite:    config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "inv.db")},
	}
	b, err := backend.Open(context.Background(), cfg, logger.Nop(), backend.Options{Migrate: true})
	require.NoError(t, err)
	defer b.Close()

	assert.IsType(t, &sqlite.TxRunner{}, b.TxRunner)
	var n int
	require.NoError(t, b.SQL.QueryRow(`SELECT COUNT(*) FROM stock`).Scan(&n))
	assert.Zero(t, n)
}

func TestOpen_BackendDesconocido(t *testing.T) {
	cfg := &config.Config{Inventory: config.InventoryConfig{Backend: "redis"}}
	_, err := backend.Open(context.Background(), cfg, logger.Nop(), backend.Options{})
	assert.Error(t, err)
}
