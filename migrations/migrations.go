// Package migrations embeds the SQL schema so binaries and tests share one copy.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

const (
	SchemaUp   = "001_create_schema.up.sql"
	SchemaDown = "001_create_schema.down.sql"
)
