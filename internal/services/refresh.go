package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
	"github.com/sbilibin2017/gw-country-exchange/internal/metrics"
	"github.com/sbilibin2017/gw-country-exchange/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=refresh.go -destination=refresh_mock.go -package=services

// Provider names reported when an upstream call fails.
const (
	ExchangeRatesSource = "open.er-api.com"
	CountriesSource     = "restcountries.com"
)

// RatesBase is the currency all exchange rates are quoted against.
const RatesBase = "USD"

// ExchangeRatesReader fetches the current rate of every currency against USD.
type ExchangeRatesReader interface {
	GetExchangeRates(ctx context.Context) (map[string]float64, error)
}

// CountriesReader fetches raw country entries from the country data provider.
type CountriesReader interface {
	GetCountries(ctx context.Context) ([]models.RawCountry, error)
}

// TxRunner runs fn inside one transaction, rolling back when fn fails.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CountryUpserter writes a country keyed by name.
type CountryUpserter interface {
	Upsert(ctx context.Context, c models.Country) error
}

// CountryCounter counts stored countries.
type CountryCounter interface {
	Count(ctx context.Context) (int64, error)
}

// MetadataWriter records the last refresh time.
type MetadataWriter interface {
	SetLastRefreshedAt(ctx context.Context, at time.Time) error
}

// SummaryRenderer regenerates the summary image.
type SummaryRenderer interface {
	Render(ctx context.Context) error
}

// RatesCacheWriter keeps a copy of the latest rate snapshot.
type RatesCacheWriter interface {
	SetRates(ctx context.Context, base string, rates map[string]float64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// RefreshService runs the fetch, normalize, persist and render pipeline.
type RefreshService struct {
	rates       ExchangeRatesReader
	countries   CountriesReader
	tx          TxRunner
	writer      CountryUpserter
	counter     CountryCounter
	meta        MetadataWriter
	estimator   GDPEstimator
	renderer    SummaryRenderer
	cache       RatesCacheWriter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// RefreshOption configures optional collaborators of RefreshService.
type RefreshOption func(*RefreshService)

// WithRatesCache stores every fetched snapshot in cache after a successful refresh.
func WithRatesCache(cache RatesCacheWriter) RefreshOption {
	return func(s *RefreshService) { s.cache = cache }
}

// WithKafkaWriter publishes a RefreshEvent after a successful refresh.
func WithKafkaWriter(w KafkaWriter) RefreshOption {
	return func(s *RefreshService) { s.kafkaWriter = w }
}

// WithClock overrides the time source used for refresh timestamps.
func WithClock(now func() time.Time) RefreshOption {
	return func(s *RefreshService) { s.now = now }
}

// NewRefreshService creates a new RefreshService.
func NewRefreshService(
	rates ExchangeRatesReader,
	countries CountriesReader,
	tx TxRunner,
	writer CountryUpserter,
	counter CountryCounter,
	meta MetadataWriter,
	estimator GDPEstimator,
	renderer SummaryRenderer,
	opts ...RefreshOption,
) *RefreshService {
	s := &RefreshService{
		rates:     rates,
		countries: countries,
		tx:        tx,
		writer:    writer,
		counter:   counter,
		meta:      meta,
		estimator: estimator,
		renderer:  renderer,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh fetches both providers, upserts every country and the refresh time
// in one transaction and returns the number of stored countries.
//
// Provider failures are returned as *ExternalSourceError before any write.
// Any write failure rolls the whole batch back. Once committed the refresh
// succeeds; if the stored total cannot be read, the fetched batch size is reported.
func (s *RefreshService) Refresh(ctx context.Context) (int64, error) {
	start := time.Now()
	total, err := s.refresh(ctx)
	metrics.RecordRefresh(refreshStatus(err), time.Since(start))
	return total, err
}

func (s *RefreshService) refresh(ctx context.Context) (int64, error) {
	rates, err := s.rates.GetExchangeRates(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates", "error", err)
		return 0, &ExternalSourceError{Source: ExchangeRatesSource, Err: err}
	}

	raws, err := s.countries.GetCountries(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch countries", "error", err)
		return 0, &ExternalSourceError{Source: CountriesSource, Err: err}
	}

	now := s.now().UTC()
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, raw := range raws {
			country, err := NormalizeCountry(raw, rates, s.estimator, now)
			if err != nil {
				return err
			}
			if err := s.writer.Upsert(ctx, country); err != nil {
				return fmt.Errorf("upsert %q: %w", country.Name, err)
			}
		}
		if err := s.meta.SetLastRefreshedAt(ctx, now); err != nil {
			return fmt.Errorf("set last refreshed at: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("refresh failed", "countries", len(raws), "error", err)
		return 0, err
	}

	if err := s.renderer.Render(ctx); err != nil {
		logger.Log.Errorw("failed to render summary image", "error", err)
	}

	if s.cache != nil {
		if err := s.cache.SetRates(ctx, RatesBase, rates); err != nil {
			logger.Log.Errorw("failed to cache exchange rates", "error", err)
		}
	}

	// committed: a failed count falls back to the batch size
	total, err := s.counter.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count countries after refresh", "error", err)
		total = int64(len(raws))
	}

	s.publishRefresh(ctx, models.RefreshEvent{
		EventID:        uuid.NewString(),
		Timestamp:      now.Unix(),
		TotalCountries: total,
		RatesCount:     len(rates),
	})

	logger.Log.Infow("countries refreshed", "total", total, "fetched", len(raws))

	return total, nil
}

// publishRefresh publishes a refresh event to Kafka.
func (s *RefreshService) publishRefresh(ctx context.Context, event models.RefreshEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal refresh event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish refresh event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Refresh event published to Kafka", "event_id", event.EventID, "total", event.TotalCountries)
	}
}

func refreshStatus(err error) string {
	if err == nil {
		return "success"
	}
	var sourceErr *ExternalSourceError
	if errors.As(err, &sourceErr) {
		return "source_unavailable"
	}
	return "failure"
}
