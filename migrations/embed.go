// Package migrations contiene el esquema versionado (goose) para los backends SQL.
package migrations

import "embed"

// FS incluye un directorio por dialecto: postgres/ y sqlite/.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
