package entity

// Product representa un artículo vendible identificado por su SKU.
type Product struct {
	ID   int64
	Name string
	SKU  string // único si la unicidad de SKU está activa
}
