// Package migrations embeds the SQL migrations applied by the postgres
// repository manager at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
