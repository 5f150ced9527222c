package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
	"github.com/sbilibin2017/gw-country-exchange/internal/models"
)

//go:generate mockgen -source=status.go -destination=status_mock.go -package=services

// ISOTimeLayout formats timestamps with millisecond precision in UTC.
const ISOTimeLayout = "2006-01-02T15:04:05.000Z"

// MetadataReader reads the last refresh time.
type MetadataReader interface {
	GetLastRefreshedAt(ctx context.Context) (*time.Time, error)
}

// StatusService reports the size of the store and its freshness.
type StatusService struct {
	counter CountryCounter
	meta    MetadataReader
}

// NewStatusService creates a new StatusService instance.
func NewStatusService(counter CountryCounter, meta MetadataReader) *StatusService {
	return &StatusService{counter: counter, meta: meta}
}

// Status returns the total number of countries and the last refresh time.
func (svc *StatusService) Status(ctx context.Context) (models.Status, error) {
	total, err := svc.counter.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count countries", "err", err)
		return models.Status{}, err
	}

	last, err := svc.meta.GetLastRefreshedAt(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read last refresh time", "err", err)
		return models.Status{}, err
	}

	status := models.Status{TotalCountries: total}
	if last != nil {
		formatted := last.UTC().Format(ISOTimeLayout)
		status.LastRefreshedAt = &formatted
	}
	return status, nil
}
