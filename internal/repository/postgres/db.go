package postgres

import (
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"showroomos/internal/config"
)

// NewDB opens a PostgreSQL connection pool via the pgx stdlib driver and
// verifies connectivity before returning.
func NewDB(cfg *config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	// Recycle connections so rolling credential changes and LB failovers
	// do not pin stale backends.
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
