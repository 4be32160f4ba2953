// Package orgdomain embeds the SQL migrations applied by the migrate command.
package orgdomain

import "embed"

// Migrations holds the goose migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
