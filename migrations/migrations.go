// Package migrations embeds the schema migration files so the server
// binary can bring a database up to date on boot.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
