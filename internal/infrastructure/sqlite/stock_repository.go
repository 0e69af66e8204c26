package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/retail-stock-api/internal/domain"
	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
	"github.com/jhoicas/retail-stock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo libro de stock sobre SQLite; el orden de inserción es el rowid.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar db o tx.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

func (r *StockRepo) Get(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	var s entity.StockRecord
	err := r.q.QueryRowContext(ctx,
		`SELECT store_id, product_id, quantity FROM stock WHERE store_id = ? AND product_id = ?`,
		key.StoreID, key.ProductID,
	).Scan(&s.StoreID, &s.ProductID, &s.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza en sitio (el rowid se conserva, y con él la posición).
func (r *StockRepo) Upsert(ctx context.Context, rec entity.StockRecord) (*entity.StockRecord, error) {
	query := `
		INSERT INTO stock (store_id, product_id, quantity)
		VALUES (?, ?, ?)
		ON CONFLICT (store_id, product_id)
		DO UPDATE SET quantity = excluded.quantity`
	if _, err := r.q.ExecContext(ctx, query, rec.StoreID, rec.ProductID, rec.Quantity); err != nil {
		if isForeignKeyViolation(err) {
			return nil, r.missingReference(ctx, rec.StoreID)
		}
		return nil, fmt.Errorf("upsert stock: %w", err)
	}
	out := rec
	return &out, nil
}

func (r *StockRepo) List(ctx context.Context, filter entity.StockFilter) ([]*entity.StockRecord, error) {
	query := `
		SELECT store_id, product_id, quantity
		FROM stock
		WHERE (? IS NULL OR store_id = ?)
		  AND (? IS NULL OR product_id = ?)
		ORDER BY rowid`
	storeID, productID := nullable(filter.StoreID), nullable(filter.ProductID)
	rows, err := r.q.QueryContext(ctx, query, storeID, storeID, productID, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer func() { _ = rows.Close() }()
	list := make([]*entity.StockRecord, 0)
	for rows.Next() {
		var s entity.StockRecord
		if err := rows.Scan(&s.StoreID, &s.ProductID, &s.Quantity); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *StockRepo) Delete(ctx context.Context, key entity.StockKey) (bool, error) {
	n, err := r.exec(ctx, `DELETE FROM stock WHERE store_id = ? AND product_id = ?`, key.StoreID, key.ProductID)
	if err != nil {
		return false, fmt.Errorf("delete stock: %w", err)
	}
	return n > 0, nil
}

func (r *StockRepo) DeleteByStore(ctx context.Context, storeID int64) (int64, error) {
	n, err := r.exec(ctx, `DELETE FROM stock WHERE store_id = ?`, storeID)
	if err != nil {
		return 0, fmt.Errorf("delete stock by store: %w", err)
	}
	return n, nil
}

func (r *StockRepo) DeleteByProduct(ctx context.Context, productID int64) (int64, error) {
	n, err := r.exec(ctx, `DELETE FROM stock WHERE product_id = ?`, productID)
	if err != nil {
		return 0, fmt.Errorf("delete stock by product: %w", err)
	}
	return n, nil
}

func (r *StockRepo) Clear(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM stock`); err != nil {
		return fmt.Errorf("clear stock: %w", err)
	}
	return nil
}

func (r *StockRepo) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// nullable pasa un filtro opcional como NULL o como su valor.
func nullable(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

// missingReference decide qué referencia falló tras una violación de llave foránea:
// SQLite no informa el nombre de la constraint.
func (r *StockRepo) missingReference(ctx context.Context, storeID int64) error {
	var one int
	err := r.q.QueryRowContext(ctx, `SELECT 1 FROM stores WHERE id = ?`, storeID).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrUnknownStore
	case err != nil:
		return fmt.Errorf("verificar tienda: %w", err)
	}
	return domain.ErrUnknownProduct
}
