package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
)

// LastRefreshedAtKey is the metadata key holding the last refresh time.
const LastRefreshedAtKey = "last_refreshed_at"

// MetadataRepository reads and writes the key/value metadata table.
type MetadataRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewMetadataRepository creates a new repository instance.
func NewMetadataRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MetadataRepository {
	return &MetadataRepository{db: db, txGetter: txGetter}
}

// SetLastRefreshedAt upserts the last refresh time.
func (r *MetadataRepository) SetLastRefreshedAt(ctx context.Context, at time.Time) error {
	query := `
		INSERT INTO metadata (key_name, key_value)
		VALUES ($1, $2)
		ON CONFLICT (key_name) DO UPDATE
		SET key_value = EXCLUDED.key_value
	`
	args := []any{LastRefreshedAtKey, at.UTC().Format(time.RFC3339Nano)}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// GetLastRefreshedAt returns the last refresh time, or nil if no refresh has completed.
func (r *MetadataRepository) GetLastRefreshedAt(ctx context.Context) (*time.Time, error) {
	const query = `SELECT key_value FROM metadata WHERE key_name = $1`

	var value sql.NullString
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &value, query, LastRefreshedAtKey)

	logger.Log.Infow("db query",
		"query", query,
		"args", []any{LastRefreshedAtKey},
		"result", value.String,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !value.Valid || value.String == "" {
		return nil, nil
	}

	at, err := time.Parse(time.RFC3339Nano, value.String)
	if err != nil {
		return nil, err
	}
	return &at, nil
}
