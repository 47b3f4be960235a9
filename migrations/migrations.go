package migrations

import "embed"

// Files Встроенные SQL миграции.
//
//go:embed *.sql
var Files embed.FS
