package domain

import "errors"

// Categorías de error de dominio (sin dependencias externas).
// La capa HTTP decide el código de estado a partir de la categoría.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrValidation   = errors.New("referencia inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrInvalidInput = errors.New("entrada inválida")
)

// Error es un error de dominio concreto: pertenece a una categoría (Kind) y
// lleva el texto que ve el cliente (Detail).
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string { return e.Detail }

// Unwrap permite errors.Is(err, domain.ErrNotFound) y similares.
func (e *Error) Unwrap() error { return e.Kind }

// Errores de lookup/borrado (404).
var (
	ErrStoreNotFound   = &Error{Kind: ErrNotFound, Detail: "Store not found"}
	ErrProductNotFound = &Error{Kind: ErrNotFound, Detail: "Product not found"}
	ErrStockNotFound   = &Error{Kind: ErrNotFound, Detail: "Stock item not found"}
)

// Errores de integridad referencial en escrituras de stock (400).
var (
	ErrUnknownStore   = &Error{Kind: ErrValidation, Detail: "Store not found"}
	ErrUnknownProduct = &Error{Kind: ErrValidation, Detail: "Product not found"}
)

// ErrDuplicateSKU se devuelve cuando la unicidad de SKU está activa y ya existe.
var ErrDuplicateSKU = &Error{Kind: ErrConflict, Detail: "Product with this SKU already exists"}

// Invalid construye un error de entrada inválida con el detalle indicado.
func Invalid(detail string) error {
	return &Error{Kind: ErrInvalidInput, Detail: detail}
}

// Detail devuelve el texto para el cliente si err es un *Error; si no, "".
func Detail(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Detail
	}
	return ""
}
