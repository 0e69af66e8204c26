package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
	"github.com/jhoicas/retail-stock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// El orden de inserción se conserva con la columna seq, que el upsert no toca.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el registro de un par (tienda, producto).
func (r *StockRepo) Get(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	var s entity.StockRecord
	err := r.q.QueryRow(ctx,
		`SELECT store_id, product_id, quantity FROM stock WHERE store_id = $1 AND product_id = $2`,
		key.StoreID, key.ProductID,
	).Scan(&s.StoreID, &s.ProductID, &s.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por tienda y producto).
func (r *StockRepo) Upsert(ctx context.Context, rec entity.StockRecord) (*entity.StockRecord, error) {
	query := `
		INSERT INTO stock (store_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (store_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity
		RETURNING store_id, product_id, quantity`
	var out entity.StockRecord
	err := r.q.QueryRow(ctx, query, rec.StoreID, rec.ProductID, rec.Quantity).
		Scan(&out.StoreID, &out.ProductID, &out.Quantity)
	if err != nil {
		if fkErr := foreignKeyError(err); fkErr != nil {
			return nil, fkErr
		}
		return nil, fmt.Errorf("upsert stock: %w", err)
	}
	return &out, nil
}

// List lista el stock en orden de inserción; los filtros nil se ignoran.
func (r *StockRepo) List(ctx context.Context, filter entity.StockFilter) ([]*entity.StockRecord, error) {
	query := `
		SELECT store_id, product_id, quantity
		FROM stock
		WHERE ($1::bigint IS NULL OR store_id = $1)
		  AND ($2::bigint IS NULL OR product_id = $2)
		ORDER BY seq`
	rows, err := r.q.Query(ctx, query, filter.StoreID, filter.ProductID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
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

// Delete elimina el registro exacto.
func (r *StockRepo) Delete(ctx context.Context, key entity.StockKey) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM stock WHERE store_id = $1 AND product_id = $2`,
		key.StoreID, key.ProductID,
	)
	if err != nil {
		return false, fmt.Errorf("delete stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DeleteByStore elimina todo el stock de una tienda.
func (r *StockRepo) DeleteByStore(ctx context.Context, storeID int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock WHERE store_id = $1`, storeID)
	if err != nil {
		return 0, fmt.Errorf("delete stock by store: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteByProduct elimina todo el stock de un producto.
func (r *StockRepo) DeleteByProduct(ctx context.Context, productID int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock WHERE product_id = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("delete stock by product: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Clear vacía stock y reinicia la secuencia de orden.
func (r *StockRepo) Clear(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `TRUNCATE stock RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate stock: %w", err)
	}
	return nil
}
