package entity

// StockKey identidad compuesta de un registro de stock.
type StockKey struct {
	StoreID   int64
	ProductID int64
}

// StockRecord cantidad de un producto en una tienda. Como máximo uno por (tienda, producto).
type StockRecord struct {
	StoreID   int64
	ProductID int64
	Quantity  int64
}

// Key devuelve la identidad compuesta del registro.
func (s StockRecord) Key() StockKey {
	return StockKey{StoreID: s.StoreID, ProductID: s.ProductID}
}

// StockFilter filtros opcionales para listar stock; nil = sin restricción. Se combinan con AND.
type StockFilter struct {
	StoreID   *int64
	ProductID *int64
}

// Matches indica si el registro cumple todos los filtros presentes.
func (f StockFilter) Matches(s StockRecord) bool {
	if f.StoreID != nil && s.StoreID != *f.StoreID {
		return false
	}
	if f.ProductID != nil && s.ProductID != *f.ProductID {
		return false
	}
	return true
}
