package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
)

// ErrRateNotCached is returned when no snapshot holds the requested rate.
var ErrRateNotCached = errors.New("exchange rate not found in cache")

// RatesCacheRepository keeps the last fetched rate snapshot in Redis
type RatesCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewRatesCacheRepository creates a new repository instance with optional TTL
func NewRatesCacheRepository(client *redis.Client, expiration time.Duration) *RatesCacheRepository {
	return &RatesCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func rateKey(base, currency string) string {
	return fmt.Sprintf("exchange_rate:%s:%s", base, currency)
}

// SetRates caches every rate of the snapshot in a single pipeline.
func (r *RatesCacheRepository) SetRates(ctx context.Context, base string, rates map[string]float64) error {
	pipe := r.client.Pipeline()
	for currency, rate := range rates {
		pipe.Set(ctx, rateKey(base, currency), strconv.FormatFloat(rate, 'f', -1, 64), r.exp)
	}
	_, err := pipe.Exec(ctx)

	logger.Log.Infow("redis pipeline",
		"base", base,
		"rates", len(rates),
		"error", err,
	)

	return err
}

// GetRate fetches a cached rate of currency against base.
func (r *RatesCacheRepository) GetRate(ctx context.Context, base, currency string) (float64, error) {
	key := rateKey(base, currency)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("redis get",
			"key", key,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return 0, fmt.Errorf("%w for %s->%s", ErrRateNotCached, base, currency)
		}
		return 0, err
	}

	rate, err := strconv.ParseFloat(val, 64)

	logger.Log.Infow("redis get",
		"key", key,
		"value", val,
		"result", rate,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return rate, nil
}
