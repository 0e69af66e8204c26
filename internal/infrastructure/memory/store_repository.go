package memory

import (
	"context"

	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
	"github.com/jhoicas/retail-stock-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo tiendas sobre el estado de una transacción en memoria.
type StoreRepo struct {
	st *state
}

func (r *StoreRepo) Create(_ context.Context, name, city string) (*entity.Store, error) {
	s := entity.Store{ID: r.st.nextStoreID, Name: name, City: city}
	r.st.nextStoreID++
	r.st.stores = append(r.st.stores, s)
	return &s, nil
}

func (r *StoreRepo) GetByID(_ context.Context, id int64) (*entity.Store, error) {
	for _, s := range r.st.stores {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *StoreRepo) List(_ context.Context) ([]*entity.Store, error) {
	list := make([]*entity.Store, 0, len(r.st.stores))
	for i := range r.st.stores {
		s := r.st.stores[i]
		list = append(list, &s)
	}
	return list, nil
}

func (r *StoreRepo) Delete(_ context.Context, id int64) (bool, error) {
	for i, s := range r.st.stores {
		if s.ID == id {
			r.st.stores = append(r.st.stores[:i], r.st.stores[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *StoreRepo) Clear(_ context.Context) error {
	r.st.stores = nil
	r.st.nextStoreID = 1
	return nil
}
