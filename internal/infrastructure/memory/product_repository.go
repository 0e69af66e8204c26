package memory

import (
	"context"

	"github.com/jhoicas/retail-stock-api/internal/domain"
	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
	"github.com/jhoicas/retail-stock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos sobre el estado de una transacción en memoria.
type ProductRepo struct {
	st         *state
	uniqueSKUs bool
}

// Create asigna el siguiente ID. Con uniqueSKUs se comporta como el índice único de los backends SQL.
func (r *ProductRepo) Create(ctx context.Context, name, sku string) (*entity.Product, error) {
	if r.uniqueSKUs {
		existing, _ := r.GetBySKU(ctx, sku)
		if existing != nil {
			return nil, domain.ErrDuplicateSKU
		}
	}
	p := entity.Product{ID: r.st.nextProductID, Name: name, SKU: sku}
	r.st.nextProductID++
	r.st.products = append(r.st.products, p)
	return &p, nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range r.st.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

// GetBySKU devuelve el primer producto con ese SKU (puede haber varios si la unicidad está desactivada).
func (r *ProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.st.products {
		if p.SKU == sku {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(r.st.products))
	for i := range r.st.products {
		p := r.st.products[i]
		list = append(list, &p)
	}
	return list, nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	for i, p := range r.st.products {
		if p.ID == id {
			r.st.products = append(r.st.products[:i], r.st.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *ProductRepo) Clear(_ context.Context) error {
	r.st.products = nil
	r.st.nextProductID = 1
	return nil
}
