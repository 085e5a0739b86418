package profilecard

import (
	"embed"

	pkgsql "github.com/mobileheap/profilecard/pkg/sql"
)

var Migrations = pkgsql.FSMigrations(migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
