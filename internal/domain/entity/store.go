package entity

// Store representa una tienda física (sucursal) donde se lleva stock.
// Inmutable una vez creada; el ID lo asigna el backend de persistencia.
type Store struct {
	ID   int64
	Name string
	City string
}
