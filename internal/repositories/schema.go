package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS countries (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		capital VARCHAR(255),
		region VARCHAR(255),
		population BIGINT NOT NULL DEFAULT 0,
		currency_code VARCHAR(10),
		exchange_rate DOUBLE PRECISION,
		estimated_gdp DOUBLE PRECISION,
		flag_url TEXT,
		last_refreshed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_countries_lower_name ON countries (LOWER(name));`,
	`CREATE TABLE IF NOT EXISTS metadata (
		key_name VARCHAR(100) PRIMARY KEY,
		key_value TEXT
	);`,
	`INSERT INTO metadata (key_name, key_value)
		VALUES ('last_refreshed_at', NULL)
		ON CONFLICT (key_name) DO NOTHING;`,
}

// EnsureSchema creates the countries and metadata tables if they are missing
// and seeds the last refresh entry. It is safe to run on every start.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Log.Errorw("failed to apply schema", "statement", stmt, "error", err)
			return err
		}
	}
	return nil
}
