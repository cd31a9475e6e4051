package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the cgo-free "sqlite" driver used by the dialector below
	_ "modernc.org/sqlite"
)

// Connect opens a postgres connection for postgres:// style DSNs and falls
// back to a local sqlite database file (or :memory:) for anything else.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("database: connecting to postgres")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("database: using sqlite at", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}
