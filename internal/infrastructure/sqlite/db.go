// Package sqlite implementa el backend de persistencia sobre SQLite (driver puro Go de modernc).
//
// Se abre con una sola conexión: SQLite admite un escritor a la vez y así cada
// transacción de TxRunner queda serializada sin locks adicionales.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"modernc.org/sqlite"
)

const (
	codeConstraintUnique     = 2067 // SQLITE_CONSTRAINT_UNIQUE
	codeConstraintPrimaryKey = 1555 // SQLITE_CONSTRAINT_PRIMARYKEY
	codeConstraintForeignKey = 787  // SQLITE_CONSTRAINT_FOREIGNKEY
)

// Open abre (o crea) la base en path con llaves foráneas activas. ":memory:" crea una base efímera.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		path = "inventory.db"
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

func dsn(path string) string {
	pragmas := "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if path == ":memory:" {
		return "file::memory:?" + pragmas
	}
	if strings.Contains(path, "?") {
		return "file:" + path + "&" + pragmas
	}
	return "file:" + path + "?" + pragmas
}

func errorCode(err error) int {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()
	}
	return 0
}

func isUniqueViolation(err error) bool {
	code := errorCode(err)
	return code == codeConstraintUnique || code == codeConstraintPrimaryKey
}

func isForeignKeyViolation(err error) bool {
	return errorCode(err) == codeConstraintForeignKey
}
