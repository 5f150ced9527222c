package models

import "time"

// Sort orders accepted by the country list endpoint.
const (
	SortGDPDesc = "gdp_desc"
	SortGDPAsc  = "gdp_asc"
)

// Country represents a country record in the database
// swagger:model Country
type Country struct {
	ID              int64     `json:"id" db:"id"`                               // Primary key
	Name            string    `json:"name" db:"name"`                           // Unique country name
	Capital         *string   `json:"capital" db:"capital"`                     // Capital city
	Region          *string   `json:"region" db:"region"`                       // Region, e.g. Europe
	Population      int64     `json:"population" db:"population"`               // Population count
	CurrencyCode    *string   `json:"currency_code" db:"currency_code"`         // First currency of the country
	ExchangeRate    *float64  `json:"exchange_rate" db:"exchange_rate"`         // Rate against USD
	EstimatedGDP    *float64  `json:"estimated_gdp" db:"estimated_gdp"`         // Derived GDP estimate
	FlagURL         *string   `json:"flag_url" db:"flag_url"`                   // Flag image URL
	LastRefreshedAt time.Time `json:"last_refreshed_at" db:"last_refreshed_at"` // Last write timestamp
}

// RawCountry is a country entry as returned by the country data provider.
type RawCountry struct {
	Name          string
	Capital       string
	Region        string
	Population    int64
	Flag          string
	CurrencyCodes []string
}

// CountryFilter holds the optional filters of the country list.
type CountryFilter struct {
	Region   string
	Currency string
	Sort     string
}

// CountryInput is a manually submitted country.
// Name, Population and CurrencyCode stay untyped so that type errors
// are reported as validation failures.
type CountryInput struct {
	Name         any      `json:"name"`
	Capital      *string  `json:"capital"`
	Region       *string  `json:"region"`
	Population   any      `json:"population"`
	CurrencyCode any      `json:"currency_code"`
	ExchangeRate *float64 `json:"exchange_rate"`
	EstimatedGDP *float64 `json:"estimated_gdp"`
	FlagURL      *string  `json:"flag_url"`
}

// GDPEntry is a single row of the GDP ranking.
type GDPEntry struct {
	Name         string   `db:"name"`
	EstimatedGDP *float64 `db:"estimated_gdp"`
}
