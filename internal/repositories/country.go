package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
	"github.com/sbilibin2017/gw-country-exchange/internal/models"
)

const countryColumns = `id, name, capital, region, population, currency_code,
	exchange_rate, estimated_gdp, flag_url, last_refreshed_at`

// CountryWriteRepository handles country write operations
type CountryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewCountryWriteRepository creates a new repository instance.
// When txGetter yields a transaction, statements run inside it.
func NewCountryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CountryWriteRepository {
	return &CountryWriteRepository{db: db, txGetter: txGetter}
}

// Upsert inserts the country or overwrites every field of the row with the same name.
func (r *CountryWriteRepository) Upsert(ctx context.Context, c models.Country) error {
	query := `
		INSERT INTO countries (name, capital, region, population, currency_code,
			exchange_rate, estimated_gdp, flag_url, last_refreshed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (name) DO UPDATE
		SET capital = EXCLUDED.capital,
		    region = EXCLUDED.region,
		    population = EXCLUDED.population,
		    currency_code = EXCLUDED.currency_code,
		    exchange_rate = EXCLUDED.exchange_rate,
		    estimated_gdp = EXCLUDED.estimated_gdp,
		    flag_url = EXCLUDED.flag_url,
		    last_refreshed_at = EXCLUDED.last_refreshed_at
	`
	args := []any{
		c.Name, c.Capital, c.Region, c.Population, c.CurrencyCode,
		c.ExchangeRate, c.EstimatedGDP, c.FlagURL, c.LastRefreshedAt,
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// DeleteByName removes the country whose name matches case-insensitively
// and returns the number of deleted rows.
func (r *CountryWriteRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	const query = `DELETE FROM countries WHERE LOWER(name) = LOWER($1)`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, name)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("db query",
		"query", query,
		"args", []any{name},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// CountryReadRepository handles country read operations
type CountryReadRepository struct {
	db *sqlx.DB
}

// NewCountryReadRepository creates a new repository instance.
func NewCountryReadRepository(db *sqlx.DB) *CountryReadRepository {
	return &CountryReadRepository{db: db}
}

// List returns countries matching the filter. Region and currency are exact,
// case-sensitive matches combined with AND.
func (r *CountryReadRepository) List(ctx context.Context, filter models.CountryFilter) ([]models.Country, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Region != "" {
		args = append(args, filter.Region)
		conds = append(conds, fmt.Sprintf("region = $%d", len(args)))
	}
	if filter.Currency != "" {
		args = append(args, filter.Currency)
		conds = append(conds, fmt.Sprintf("currency_code = $%d", len(args)))
	}

	query := "SELECT " + countryColumns + " FROM countries"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	switch filter.Sort {
	case models.SortGDPDesc:
		query += " ORDER BY estimated_gdp DESC NULLS LAST"
	case models.SortGDPAsc:
		query += " ORDER BY estimated_gdp ASC NULLS FIRST"
	default:
		query += " ORDER BY id"
	}

	countries := []models.Country{}
	err := r.db.SelectContext(ctx, &countries, query, args...)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(countries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return countries, nil
}

// GetByName returns the country whose name matches case-insensitively,
// or nil when there is none.
func (r *CountryReadRepository) GetByName(ctx context.Context, name string) (*models.Country, error) {
	query := "SELECT " + countryColumns + " FROM countries WHERE LOWER(name) = LOWER($1) LIMIT 1"

	var country models.Country
	err := r.db.GetContext(ctx, &country, query, name)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"result", country.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// Count returns the number of stored countries.
func (r *CountryReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM countries`

	var total int64
	err := r.db.GetContext(ctx, &total, query)

	logger.Log.Infow("db query",
		"query", query,
		"result", total,
		"error", err,
	)

	return total, err
}

// TopByGDP returns up to limit countries ordered by estimated GDP, highest first.
func (r *CountryReadRepository) TopByGDP(ctx context.Context, limit int) ([]models.GDPEntry, error) {
	const query = `
		SELECT name, estimated_gdp
		FROM countries
		ORDER BY estimated_gdp DESC NULLS LAST
		LIMIT $1
	`

	entries := []models.GDPEntry{}
	err := r.db.SelectContext(ctx, &entries, query, limit)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}
