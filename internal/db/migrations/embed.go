// Package migrations embeds the goose SQL migrations.
// The same set is applied to PostgreSQL and SQLite, so statements stick to
// the subset both dialects accept.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
