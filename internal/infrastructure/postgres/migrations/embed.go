package migrations

import "embed"

// Migrations arquivos SQL embutidos no binário, aplicados pelo goose.
//
//go:embed *.sql
var Migrations embed.FS
