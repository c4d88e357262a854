package migrations

import "embed"

// Files contains the SQL migrations embedded into the binary, named with a
// flat ordering convention (001_init.sql, 002_*.sql, ...) so the store's
// migration runner can apply them in sorted order.
//
//go:embed *.sql
var Files embed.FS
