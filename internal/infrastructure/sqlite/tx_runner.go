package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/retail-stock-api/internal/application/inventory"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
// Con una única conexión abierta, las transacciones quedan serializadas.
type TxRunner struct {
	db *sql.DB
}

// NewTxRunner construye el runner sobre una base abierta con Open.
func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn inventory.TxFunc) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(NewStoreRepository(tx), NewProductRepository(tx), NewStockRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// View comparte la implementación de Run: SQLite serializa igual lecturas y escrituras aquí.
func (r *TxRunner) View(ctx context.Context, fn inventory.TxFunc) error {
	return r.Run(ctx, fn)
}
