package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
	"github.com/jhoicas/retail-stock-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo tiendas sobre SQLite. AUTOINCREMENT garantiza que un ID borrado no se reutiliza.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador. Pasar db o tx.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

func (r *StoreRepo) Create(ctx context.Context, name, city string) (*entity.Store, error) {
	res, err := r.q.ExecContext(ctx, `INSERT INTO stores (name, city) VALUES (?, ?)`, name, city)
	if err != nil {
		return nil, fmt.Errorf("insert store: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert store id: %w", err)
	}
	return &entity.Store{ID: id, Name: name, City: city}, nil
}

func (r *StoreRepo) GetByID(ctx context.Context, id int64) (*entity.Store, error) {
	var s entity.Store
	err := r.q.QueryRowContext(ctx, `SELECT id, name, city FROM stores WHERE id = ?`, id).Scan(&s.ID, &s.Name, &s.City)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

func (r *StoreRepo) List(ctx context.Context) ([]*entity.Store, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name, city FROM stores ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer func() { _ = rows.Close() }()
	list := make([]*entity.Store, 0)
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.City); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *StoreRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM stores WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete store: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete store: %w", err)
	}
	return n > 0, nil
}

// Clear vacía la tabla y borra su entrada en sqlite_sequence para reiniciar los IDs.
func (r *StoreRepo) Clear(ctx context.Context) error {
	return clearTable(ctx, r.q, "stores")
}

func clearTable(ctx context.Context, q Querier, table string) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM `+table); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	if _, err := q.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name = ?`, table); err != nil {
		return fmt.Errorf("reset %s sequence: %w", table, err)
	}
	return nil
}
