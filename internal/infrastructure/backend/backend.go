// Package backend elige y abre la persistencia configurada (memoria, PostgreSQL o SQLite).
// Lo comparten cmd/api y cmd/inventoryctl.
package backend

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/jhoicas/retail-stock-api/internal/application/inventory"
	"github.com/jhoicas/retail-stock-api/internal/infrastructure/memory"
	"github.com/jhoicas/retail-stock-api/internal/infrastructure/migrate"
	"github.com/jhoicas/retail-stock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/retail-stock-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/retail-stock-api/pkg/config"
	"github.com/jhoicas/retail-stock-api/pkg/logger"
)

// Backend persistencia abierta lista para los casos de uso.
type Backend struct {
	Kind     string
	TxRunner inventory.TxRunner
	// SQL handle para migraciones; nil en memoria.
	SQL     *sql.DB
	Dialect string

	closers []func()
}

// Close libera conexiones en orden inverso a la apertura.
func (b *Backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
	b.closers = nil
}

// Options controla la apertura.
type Options struct {
	// Migrate aplica las migraciones pendientes al abrir (solo backends SQL).
	Migrate bool
}

// Open abre el backend indicado en cfg.Inventory.Backend.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger, opts Options) (*Backend, error) {
	b := &Backend{Kind: cfg.Inventory.Backend}
	switch cfg.Inventory.Backend {
	case config.BackendMemory:
		b.TxRunner = memory.NewDB(cfg.Inventory.EnforceUniqueSKU)
		return b, nil

	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		b.closers = append(b.closers, pool.Close)
		b.SQL = stdlib.OpenDBFromPool(pool)
		b.closers = append(b.closers, func() { _ = b.SQL.Close() })
		b.Dialect = migrate.DialectPostgres
		b.TxRunner = postgres.NewTxRunner(pool)

	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("abrir SQLite: %w", err)
		}
		b.SQL = db
		b.closers = append(b.closers, func() { _ = db.Close() })
		b.Dialect = migrate.DialectSQLite
		b.TxRunner = sqlite.NewTxRunner(db)

	default:
		return nil, fmt.Errorf("backend desconocido: %q", cfg.Inventory.Backend)
	}

	if opts.Migrate {
		applied, err := migrate.Up(ctx, b.SQL, b.Dialect)
		if err != nil {
			b.Close()
			return nil, err
		}
		log.Info().Str("backend", b.Kind).Int("applied", applied).Msg("migraciones aplicadas")
	}
	return b, nil
}
