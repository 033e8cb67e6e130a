package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// NewPostgresConnection opens the shared pool over the asset_inventory
// database and verifies it with a ping before handing it out.
func NewPostgresConnection(dbURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("could not open asset inventory database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("could not reach asset inventory database: %w", err)
	}

	return db, nil
}
