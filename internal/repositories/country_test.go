package repositories

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-country-exchange/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var countryRowColumns = []string{
	"id", "name", "capital", "region", "population", "currency_code",
	"exchange_rate", "estimated_gdp", "flag_url", "last_refreshed_at",
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestCountryWriteRepository_UpsertUsesContextTx(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2025, 10, 22, 18, 30, 0, 0, time.UTC)

	country := models.Country{
		Name:            "Nigeria",
		Capital:         strPtr("Abuja"),
		Region:          strPtr("Africa"),
		Population:      206139589,
		CurrencyCode:    strPtr("NGN"),
		ExchangeRate:    floatPtr(1600.23),
		EstimatedGDP:    floatPtr(25767448125.2),
		FlagURL:         strPtr("https://flagcdn.com/ng.svg"),
		LastRefreshedAt: now,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO countries")).
		WithArgs(country.Name, country.Capital, country.Region, country.Population, country.CurrencyCode,
			country.ExchangeRate, country.EstimatedGDP, country.FlagURL, now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := NewCountryWriteRepository(db, GetTxFromContext)
	err := NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error {
		return repo.Upsert(ctx, country)
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountryWriteRepository_DeleteByName(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM countries WHERE LOWER(name) = LOWER($1)")).
				WithArgs("CANADA").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			repo := NewCountryWriteRepository(db, nil)
			n, err := repo.DeleteByName(context.Background(), "CANADA")

			assert.NoError(t, err)
			assert.Equal(t, tt.affected, n)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCountryReadRepository_ListBuildsQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.CountryFilter
		wantQuery string
		wantArgs  []driver.Value
	}{
		{
			name:      "no filter natural order",
			filter:    models.CountryFilter{Sort: "name_asc"},
			wantQuery: "FROM countries ORDER BY id",
		},
		{
			name:      "region and currency with gdp_desc",
			filter:    models.CountryFilter{Region: "Europe", Currency: "EUR", Sort: models.SortGDPDesc},
			wantQuery: "FROM countries WHERE region = $1 AND currency_code = $2 ORDER BY estimated_gdp DESC NULLS LAST",
			wantArgs:  []driver.Value{"Europe", "EUR"},
		},
		{
			name:      "currency only with gdp_asc",
			filter:    models.CountryFilter{Currency: "USD", Sort: models.SortGDPAsc},
			wantQuery: "FROM countries WHERE currency_code = $1 ORDER BY estimated_gdp ASC NULLS FIRST",
			wantArgs:  []driver.Value{"USD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)

			rows := sqlmock.NewRows(countryRowColumns).
				AddRow(1, "Germany", "Berlin", "Europe", 83240525, "EUR", 0.92, 123.45, nil, time.Now())
			q := mock.ExpectQuery(regexp.QuoteMeta(tt.wantQuery))
			if len(tt.wantArgs) > 0 {
				q.WithArgs(tt.wantArgs...)
			}
			q.WillReturnRows(rows)

			repo := NewCountryReadRepository(db)
			countries, err := repo.List(context.Background(), tt.filter)

			assert.NoError(t, err)
			require.Len(t, countries, 1)
			assert.Equal(t, "Germany", countries[0].Name)
			assert.Nil(t, countries[0].FlagURL)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCountryReadRepository_GetByName(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		rows := sqlmock.NewRows(countryRowColumns).
			AddRow(7, "Canada", "Ottawa", "Americas", 38005238, "CAD", 1.37, nil, nil, time.Now())
		mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(name) = LOWER($1)")).
			WithArgs("canada").
			WillReturnRows(rows)

		country, err := NewCountryReadRepository(db).GetByName(context.Background(), "canada")

		assert.NoError(t, err)
		require.NotNil(t, country)
		assert.Equal(t, "Canada", country.Name)
		assert.Nil(t, country.EstimatedGDP)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(name) = LOWER($1)")).
			WithArgs("Atlantis").
			WillReturnRows(sqlmock.NewRows(countryRowColumns))

		country, err := NewCountryReadRepository(db).GetByName(context.Background(), "Atlantis")

		assert.NoError(t, err)
		assert.Nil(t, country)
	})
}

func TestCountryReadRepository_CountAndTop(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM countries")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY estimated_gdp DESC NULLS LAST LIMIT $1")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"name", "estimated_gdp"}).
			AddRow("China", 9.5e12).
			AddRow("Chad", nil))

	repo := NewCountryReadRepository(db)

	total, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)

	top, err := repo.TopByGDP(context.Background(), 5)
	assert.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 9.5e12, *top[0].EstimatedGDP)
	assert.Nil(t, top[1].EstimatedGDP)
	assert.NoError(t, mock.ExpectationsWereMet())
}
