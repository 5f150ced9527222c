package services

import (
	"errors"
	"time"

	"github.com/sbilibin2017/gw-country-exchange/internal/models"
)

var errMissingCountryName = errors.New("country entry without name")

// NormalizeCountry derives the stored record from a provider entry.
//
//   - no currencies: exchange rate null, estimated GDP 0, estimator not called;
//   - first currency unknown to rates, or its rate is zero: both null;
//   - otherwise the rate is kept and the GDP estimated.
func NormalizeCountry(raw models.RawCountry, rates map[string]float64, estimator GDPEstimator, now time.Time) (models.Country, error) {
	if raw.Name == "" {
		return models.Country{}, errMissingCountryName
	}

	population := raw.Population
	if population < 0 {
		population = 0
	}

	country := models.Country{
		Name:            raw.Name,
		Capital:         nullable(raw.Capital),
		Region:          nullable(raw.Region),
		Population:      population,
		FlagURL:         nullable(raw.Flag),
		LastRefreshedAt: now,
	}

	if len(raw.CurrencyCodes) == 0 {
		zero := 0.0
		country.EstimatedGDP = &zero
		return country, nil
	}

	country.CurrencyCode = nullable(raw.CurrencyCodes[0])
	if country.CurrencyCode == nil {
		return country, nil
	}

	rate, ok := rates[*country.CurrencyCode]
	if !ok || rate == 0 {
		return country, nil
	}

	gdp := estimator.Estimate(population, rate)
	country.ExchangeRate = &rate
	country.EstimatedGDP = &gdp

	return country, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
