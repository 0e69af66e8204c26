package memory

import (
	"context"

	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
	"github.com/jhoicas/retail-stock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo libro de stock sobre el estado de una transacción en memoria.
// Los recorridos lineales son aceptables a esta escala.
type StockRepo struct {
	st *state
}

func (r *StockRepo) index(key entity.StockKey) int {
	for i, s := range r.st.stock {
		if s.Key() == key {
			return i
		}
	}
	return -1
}

func (r *StockRepo) Get(_ context.Context, key entity.StockKey) (*entity.StockRecord, error) {
	if i := r.index(key); i >= 0 {
		rec := r.st.stock[i]
		return &rec, nil
	}
	return nil, nil
}

// Upsert sobrescribe en sitio (conserva la posición) o agrega al final.
func (r *StockRepo) Upsert(_ context.Context, rec entity.StockRecord) (*entity.StockRecord, error) {
	if i := r.index(rec.Key()); i >= 0 {
		r.st.stock[i].Quantity = rec.Quantity
		out := r.st.stock[i]
		return &out, nil
	}
	r.st.stock = append(r.st.stock, rec)
	return &rec, nil
}

func (r *StockRepo) List(_ context.Context, filter entity.StockFilter) ([]*entity.StockRecord, error) {
	list := make([]*entity.StockRecord, 0, len(r.st.stock))
	for i := range r.st.stock {
		if !filter.Matches(r.st.stock[i]) {
			continue
		}
		rec := r.st.stock[i]
		list = append(list, &rec)
	}
	return list, nil
}

func (r *StockRepo) Delete(_ context.Context, key entity.StockKey) (bool, error) {
	i := r.index(key)
	if i < 0 {
		return false, nil
	}
	r.st.stock = append(r.st.stock[:i], r.st.stock[i+1:]...)
	return true, nil
}

func (r *StockRepo) DeleteByStore(_ context.Context, storeID int64) (int64, error) {
	return r.deleteWhere(func(s entity.StockRecord) bool { return s.StoreID == storeID }), nil
}

func (r *StockRepo) DeleteByProduct(_ context.Context, productID int64) (int64, error) {
	return r.deleteWhere(func(s entity.StockRecord) bool { return s.ProductID == productID }), nil
}

func (r *StockRepo) deleteWhere(match func(entity.StockRecord) bool) int64 {
	kept := r.st.stock[:0]
	var removed int64
	for _, s := range r.st.stock {
		if match(s) {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	r.st.stock = kept
	return removed
}

func (r *StockRepo) Clear(_ context.Context) error {
	r.st.stock = nil
	return nil
}
