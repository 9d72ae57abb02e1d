// Package migrations embeds the session store schema.
package migrations

import "embed"

// FS holds the SQL migration files for the session store.
//
//go:embed *.sql
var FS embed.FS
