package inventory

import (
	"context"

	"github.com/jhoicas/retail-stock-api/internal/domain/repository"
)

// TxFunc recibe los repositorios atados a una misma transacción.
type TxFunc func(
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
) error

// TxRunner ejecuta una función dentro de una transacción del backend, pasando repositorios atados a esa tx.
// Run serializa las escrituras: o se aplica todo fn o nada. View da una lectura consistente;
// fn no debe escribir dentro de View.
type TxRunner interface {
	Run(ctx context.Context, fn TxFunc) error
	View(ctx context.Context, fn TxFunc) error
}
