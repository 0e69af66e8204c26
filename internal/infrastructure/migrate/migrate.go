// Package migrate aplica el esquema embebido con goose, sin estado global.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/jhoicas/retail-stock-api/migrations"
)

// Dialectos soportados; coinciden con los subdirectorios de migrations.FS.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// NewProvider construye un provider de goose para el dialecto indicado.
func NewProvider(db *sql.DB, dialect string) (*goose.Provider, error) {
	var gooseDialect goose.Dialect
	switch dialect {
	case DialectPostgres:
		gooseDialect = goose.DialectPostgres
	case DialectSQLite:
		gooseDialect = goose.DialectSQLite3
	default:
		return nil, fmt.Errorf("dialecto de migración desconocido: %q", dialect)
	}
	fsys, err := fs.Sub(migrations.FS, dialect)
	if err != nil {
		return nil, fmt.Errorf("migraciones %s: %w", dialect, err)
	}
	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("crear provider goose: %w", err)
	}
	return provider, nil
}

// Up aplica todas las migraciones pendientes y devuelve cuántas se aplicaron.
func Up(ctx context.Context, db *sql.DB, dialect string) (int, error) {
	provider, err := NewProvider(db, dialect)
	if err != nil {
		return 0, err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}
	return len(results), nil
}
