package migrations

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
)

// Open connects to dsn through database/sql, as goose requires, and
// returns a provider over the embedded migrations. The caller closes db.
//
// The Provider API is used instead of goose.Up because it handles
// $$-delimited function bodies.
func Open(dsn string) (provider *goose.Provider, db *sql.DB, err error) {
	db, err = sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	provider, err = goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("goose provider: %w", err)
	}
	return provider, db, nil
}
