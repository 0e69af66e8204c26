package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/retail-stock-api/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"

	constraintStockStore   = "stock_store_id_fkey"
	constraintStockProduct = "stock_product_id_fkey"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// foreignKeyError traduce una violación de llave foránea (23503) sobre stock al error de dominio
// de la referencia que falló. Ocurre si una tienda o producto se borra entre la validación y el upsert.
func foreignKeyError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeForeignKeyViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case constraintStockStore:
		return domain.ErrUnknownStore
	case constraintStockProduct:
		return domain.ErrUnknownProduct
	}
	return nil
}
