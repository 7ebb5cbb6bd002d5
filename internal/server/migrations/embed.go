// Package migrations embeds the goose migrations for the blog schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
