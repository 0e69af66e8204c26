package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
	"github.com/jhoicas/retail-stock-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL (usable con pool o tx).
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste una nueva tienda; el ID sale de la secuencia BIGSERIAL.
func (r *StoreRepo) Create(ctx context.Context, name, city string) (*entity.Store, error) {
	s := entity.Store{Name: name, City: city}
	err := r.q.QueryRow(ctx,
		`INSERT INTO stores (name, city) VALUES ($1, $2) RETURNING id`,
		name, city,
	).Scan(&s.ID)
	if err != nil {
		return nil, fmt.Errorf("insert store: %w", err)
	}
	return &s, nil
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(ctx context.Context, id int64) (*entity.Store, error) {
	var s entity.Store
	err := r.q.QueryRow(ctx, `SELECT id, name, city FROM stores WHERE id = $1`, id).Scan(&s.ID, &s.Name, &s.City)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// List lista todas las tiendas en orden de ID (= orden de inserción).
func (r *StoreRepo) List(ctx context.Context) ([]*entity.Store, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, city FROM stores ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
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

// Delete elimina una tienda por ID.
func (r *StoreRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete store: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Clear vacía stores y reinicia la secuencia de IDs.
func (r *StoreRepo) Clear(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `TRUNCATE stores RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("truncate stores: %w", err)
	}
	return nil
}
