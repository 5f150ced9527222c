package services

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
	"github.com/sbilibin2017/gw-country-exchange/internal/models"
)

//go:generate mockgen -source=country.go -destination=country_mock.go -package=services

const (
	reasonRequired         = "is required"
	reasonPositiveRequired = "is required and must be a positive number"
)

// CountryReader defines read-only operations for countries.
type CountryReader interface {
	List(ctx context.Context, filter models.CountryFilter) ([]models.Country, error)
	GetByName(ctx context.Context, name string) (*models.Country, error)
}

// CountryWriter defines write operations for countries.
type CountryWriter interface {
	Upsert(ctx context.Context, c models.Country) error
	DeleteByName(ctx context.Context, name string) (int64, error)
}

// CountryService serves the query, delete and manual insert operations.
type CountryService struct {
	reader CountryReader
	writer CountryWriter
}

// NewCountryService creates a new CountryService instance.
func NewCountryService(reader CountryReader, writer CountryWriter) *CountryService {
	return &CountryService{reader: reader, writer: writer}
}

// List returns countries matching filter.
func (svc *CountryService) List(ctx context.Context, filter models.CountryFilter) ([]models.Country, error) {
	countries, err := svc.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list countries", "filter", filter, "err", err)
		return nil, err
	}
	return countries, nil
}

// GetByName returns the country with the given name, ignoring case.
func (svc *CountryService) GetByName(ctx context.Context, name string) (*models.Country, error) {
	country, err := svc.reader.GetByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to get country", "name", name, "err", err)
		return nil, err
	}
	if country == nil {
		return nil, ErrCountryNotFound
	}
	return country, nil
}

// DeleteByName removes the country with the given name, ignoring case.
func (svc *CountryService) DeleteByName(ctx context.Context, name string) error {
	deleted, err := svc.writer.DeleteByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to delete country", "name", name, "err", err)
		return err
	}
	if deleted == 0 {
		return ErrCountryNotFound
	}
	return nil
}

// Save validates a manually submitted country and upserts it by name.
// A failing input yields *ValidationError listing every failing field.
func (svc *CountryService) Save(ctx context.Context, input models.CountryInput) error {
	country, err := ValidateCountryInput(input)
	if err != nil {
		return err
	}
	country.LastRefreshedAt = time.Now().UTC()

	if err := svc.writer.Upsert(ctx, country); err != nil {
		logger.Log.Errorw("failed to save country", "name", country.Name, "err", err)
		return err
	}
	return nil
}

// ValidateCountryInput checks the required fields and converts the input
// into a storable record. Unset optional fields, and zero exchange rate or
// GDP, are stored as null.
func ValidateCountryInput(input models.CountryInput) (models.Country, error) {
	details := make(map[string]string)

	name, ok := input.Name.(string)
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		details["name"] = reasonRequired
	}

	population, ok := parsePopulation(input.Population)
	population = math.Round(population)
	// float64(math.MaxInt64) is 2^63, itself out of range
	if !ok || population < 1 || population >= float64(math.MaxInt64) {
		details["population"] = reasonPositiveRequired
	}

	currency, ok := input.CurrencyCode.(string)
	currency = strings.TrimSpace(currency)
	if !ok || currency == "" {
		details["currency_code"] = reasonRequired
	}

	if len(details) > 0 {
		return models.Country{}, &ValidationError{Details: details}
	}

	return models.Country{
		Name:         name,
		Capital:      nonEmpty(input.Capital),
		Region:       nonEmpty(input.Region),
		Population:   int64(population),
		CurrencyCode: &currency,
		ExchangeRate: nonZero(input.ExchangeRate),
		EstimatedGDP: nonZero(input.EstimatedGDP),
		FlagURL:      nonEmpty(input.FlagURL),
	}, nil
}

// parsePopulation accepts JSON numbers and numeric strings.
func parsePopulation(v any) (float64, bool) {
	switch p := v.(type) {
	case float64:
		return p, !math.IsNaN(p) && !math.IsInf(p, 0)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func nonZero(f *float64) *float64 {
	if f == nil || *f == 0 {
		return nil
	}
	return f
}
