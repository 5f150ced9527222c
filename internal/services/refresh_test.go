package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-country-exchange/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type refreshMocks struct {
	rates     *MockExchangeRatesReader
	countries *MockCountriesReader
	tx        *MockTxRunner
	writer    *MockCountryUpserter
	counter   *MockCountryCounter
	meta      *MockMetadataWriter
	renderer  *MockSummaryRenderer
	cache     *MockRatesCacheWriter
	kafka     *MockKafkaWriter
}

func newRefreshMocks(ctrl *gomock.Controller) *refreshMocks {
	return &refreshMocks{
		rates:     NewMockExchangeRatesReader(ctrl),
		countries: NewMockCountriesReader(ctrl),
		tx:        NewMockTxRunner(ctrl),
		writer:    NewMockCountryUpserter(ctrl),
		counter:   NewMockCountryCounter(ctrl),
		meta:      NewMockMetadataWriter(ctrl),
		renderer:  NewMockSummaryRenderer(ctrl),
		cache:     NewMockRatesCacheWriter(ctrl),
		kafka:     NewMockKafkaWriter(ctrl),
	}
}

func (m *refreshMocks) service(now time.Time, opts ...RefreshOption) *RefreshService {
	opts = append(opts, WithClock(func() time.Time { return now }))
	return NewRefreshService(m.rates, m.countries, m.tx, m.writer, m.counter, m.meta, fixedEstimator(1500), m.renderer, opts...)
}

func runInline(m *refreshMocks) {
	m.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

var (
	refreshRates = map[string]float64{"NGN": 1600, "GHS": 15}
	refreshRaws  = []models.RawCountry{
		{Name: "Nigeria", Capital: "Abuja", Region: "Africa", Population: 3200, CurrencyCodes: []string{"NGN"}},
		{Name: "Ghana", Capital: "Accra", Region: "Africa", Population: 30, CurrencyCodes: []string{"GHS"}},
		{Name: "Antarctica", Population: 1000},
	}
)

func TestRefreshService_Refresh_Success(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 10, 22, 18, 30, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newRefreshMocks(ctrl)

	var stored []models.Country
	var event models.RefreshEvent

	gomock.InOrder(
		m.rates.EXPECT().GetExchangeRates(ctx).Return(refreshRates, nil),
		m.countries.EXPECT().GetCountries(ctx).Return(refreshRaws, nil),
	)
	runInline(m)
	m.writer.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, c models.Country) error {
			stored = append(stored, c)
			return nil
		},
	)
	m.meta.EXPECT().SetLastRefreshedAt(gomock.Any(), now).Return(nil)
	m.renderer.EXPECT().Render(ctx).Return(nil)
	m.cache.EXPECT().SetRates(ctx, RatesBase, refreshRates).Return(nil)
	m.counter.EXPECT().Count(ctx).Return(int64(3), nil)
	m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			return nil
		},
	)

	svc := m.service(now, WithRatesCache(m.cache), WithKafkaWriter(m.kafka))
	total, err := svc.Refresh(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	require.Len(t, stored, 3)
	assert.Equal(t, "Nigeria", stored[0].Name)
	assert.Equal(t, 1600.0, *stored[0].ExchangeRate)
	assert.Equal(t, 3000.0, *stored[0].EstimatedGDP)
	assert.Equal(t, 3000.0, *stored[1].EstimatedGDP)
	assert.Nil(t, stored[2].ExchangeRate)
	assert.Equal(t, 0.0, *stored[2].EstimatedGDP)
	for _, c := range stored {
		assert.Equal(t, now, c.LastRefreshedAt)
	}

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, now.Unix(), event.Timestamp)
	assert.Equal(t, int64(3), event.TotalCountries)
	assert.Equal(t, 2, event.RatesCount)
}

func TestRefreshService_Refresh_ProviderFailures(t *testing.T) {
	ctx := context.Background()
	upstream := errors.New("connection refused")

	tests := []struct {
		name       string
		setup      func(m *refreshMocks)
		wantSource string
	}{
		{
			name: "exchange rates unavailable",
			setup: func(m *refreshMocks) {
				m.rates.EXPECT().GetExchangeRates(ctx).Return(nil, upstream)
			},
			wantSource: ExchangeRatesSource,
		},
		{
			name: "countries unavailable",
			setup: func(m *refreshMocks) {
				m.rates.EXPECT().GetExchangeRates(ctx).Return(refreshRates, nil)
				m.countries.EXPECT().GetCountries(ctx).Return(nil, upstream)
			},
			wantSource: CountriesSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newRefreshMocks(ctrl)
			tt.setup(m)

			svc := m.service(time.Now(), WithRatesCache(m.cache), WithKafkaWriter(m.kafka))
			total, err := svc.Refresh(ctx)

			assert.Equal(t, int64(0), total)
			var sourceErr *ExternalSourceError
			require.ErrorAs(t, err, &sourceErr)
			assert.Equal(t, tt.wantSource, sourceErr.Source)
			assert.ErrorIs(t, err, upstream)
			assert.Equal(t, "source_unavailable", refreshStatus(err))
		})
	}
}

func TestRefreshService_Refresh_WriteFailureAborts(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("value too long")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newRefreshMocks(ctrl)

	m.rates.EXPECT().GetExchangeRates(ctx).Return(refreshRates, nil)
	m.countries.EXPECT().GetCountries(ctx).Return(refreshRaws, nil)
	runInline(m)
	m.writer.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	m.writer.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(dbErr)

	svc := m.service(time.Now(), WithRatesCache(m.cache), WithKafkaWriter(m.kafka))
	_, err := svc.Refresh(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), `"Ghana"`)
	assert.Equal(t, "failure", refreshStatus(err))
}

func TestRefreshService_Refresh_MetadataFailureAborts(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("metadata unavailable")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newRefreshMocks(ctrl)

	m.rates.EXPECT().GetExchangeRates(ctx).Return(refreshRates, nil)
	m.countries.EXPECT().GetCountries(ctx).Return(refreshRaws[:1], nil)
	runInline(m)
	m.writer.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	m.meta.EXPECT().SetLastRefreshedAt(gomock.Any(), gomock.Any()).Return(dbErr)

	_, err := m.service(time.Now()).Refresh(ctx)

	assert.ErrorIs(t, err, dbErr)
}

func TestRefreshService_Refresh_SideEffectFailuresAreIgnored(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newRefreshMocks(ctrl)

	m.rates.EXPECT().GetExchangeRates(ctx).Return(refreshRates, nil)
	m.countries.EXPECT().GetCountries(ctx).Return(refreshRaws[:1], nil)
	runInline(m)
	m.writer.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	m.meta.EXPECT().SetLastRefreshedAt(gomock.Any(), gomock.Any()).Return(nil)
	m.renderer.EXPECT().Render(ctx).Return(errors.New("disk full"))
	m.cache.EXPECT().SetRates(ctx, RatesBase, refreshRates).Return(errors.New("redis down"))
	m.counter.EXPECT().Count(ctx).Return(int64(1), nil)
	m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("broker down"))

	svc := m.service(time.Now(), WithRatesCache(m.cache), WithKafkaWriter(m.kafka))
	total, err := svc.Refresh(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestRefreshService_Refresh_WithoutOptionalCollaborators(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newRefreshMocks(ctrl)

	m.rates.EXPECT().GetExchangeRates(ctx).Return(refreshRates, nil)
	m.countries.EXPECT().GetCountries(ctx).Return([]models.RawCountry{}, nil)
	runInline(m)
	m.meta.EXPECT().SetLastRefreshedAt(gomock.Any(), gomock.Any()).Return(nil)
	m.renderer.EXPECT().Render(ctx).Return(nil)
	m.counter.EXPECT().Count(ctx).Return(int64(0), nil)

	total, err := m.service(time.Now()).Refresh(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestRefreshService_Refresh_CountFailureAfterCommit(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newRefreshMocks(ctrl)

	m.rates.EXPECT().GetExchangeRates(ctx).Return(refreshRates, nil)
	m.countries.EXPECT().GetCountries(ctx).Return(refreshRaws, nil)
	runInline(m)
	m.writer.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(3).Return(nil)
	m.meta.EXPECT().SetLastRefreshedAt(gomock.Any(), gomock.Any()).Return(nil)
	m.renderer.EXPECT().Render(ctx).Return(nil)
	m.counter.EXPECT().Count(ctx).Return(int64(0), errors.New("connection reset"))
	m.kafka.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

	svc := m.service(time.Now(), WithKafkaWriter(m.kafka))
	total, err := svc.Refresh(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(len(refreshRaws)), total)
	assert.Equal(t, "success", refreshStatus(err))
}
