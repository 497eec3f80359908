// Package scripts embeds the versioned SQL migrations, one directory per goose dialect.
package scripts

import "embed"

//go:embed sqlite3/*.sql mysql/*.sql
var FS embed.FS
