package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/retail-stock-api/internal/application/inventory"
	"github.com/jhoicas/retail-stock-api/internal/domain/entity"
)

var _ inventory.TxRunner = (*DB)(nil)

// state es todo lo que guarda el backend en memoria. Los slices conservan el orden de inserción.
type state struct {
	stores        []entity.Store
	products      []entity.Product
	stock         []entity.StockRecord
	nextStoreID   int64
	nextProductID int64
}

func newState() *state {
	return &state{nextStoreID: 1, nextProductID: 1}
}

func (s *state) clone() *state {
	return &state{
		stores:        append([]entity.Store(nil), s.stores...),
		products:      append([]entity.Product(nil), s.products...),
		stock:         append([]entity.StockRecord(nil), s.stock...),
		nextStoreID:   s.nextStoreID,
		nextProductID: s.nextProductID,
	}
}

// DB backend en memoria: un único dueño del estado, protegido por un RWMutex.
// Run trabaja sobre una copia y la publica solo si fn termina sin error,
// así una operación fallida nunca deja el estado a medias.
type DB struct {
	mu         sync.RWMutex
	st         *state
	uniqueSKUs bool
}

// NewDB crea un backend vacío. uniqueSKUs hace que ProductRepo.Create rechace SKUs repetidos.
func NewDB(uniqueSKUs bool) *DB {
	return &DB{st: newState(), uniqueSKUs: uniqueSKUs}
}

// Run ejecuta fn en exclusión mutua sobre una copia del estado (commit al terminar sin error).
func (db *DB) Run(ctx context.Context, fn inventory.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	work := db.st.clone()
	if err := fn(&StoreRepo{st: work}, &ProductRepo{st: work, uniqueSKUs: db.uniqueSKUs}, &StockRepo{st: work}); err != nil {
		return err
	}
	db.st = work
	return nil
}

// View ejecuta fn con lectura compartida sobre el estado publicado.
func (db *DB) View(ctx context.Context, fn inventory.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.RLock()
	defer db.mu.RUnlock()
	return fn(&StoreRepo{st: db.st}, &ProductRepo{st: db.st, uniqueSKUs: db.uniqueSKUs}, &StockRepo{st: db.st})
}
