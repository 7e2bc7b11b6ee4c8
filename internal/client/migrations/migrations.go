// Package migrations embeds the goose migrations of the local preferences DB.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
