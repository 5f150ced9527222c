package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-country-exchange/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const countriesPayload = `[
	{"name":"Nigeria","capital":"Abuja","region":"Africa","population":206139589,
	 "flag":"https://flagcdn.com/ng.svg","currencies":[{"code":"NGN","name":"Nigerian naira","symbol":"₦"}]},
	{"name":"Antarctica","region":"Polar","population":1000,"flag":"https://flagcdn.com/aq.svg"},
	{"name":"Nowhere","population":"many","currencies":[{"name":"no code"}]},
	{"name":"Zimbabwe","capital":"Harare","region":"Africa","population":14862924,
	 "currencies":[{"code":"USD"},{"code":"ZWL"}]}
]`

func TestGetCountries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "name,capital,region,population,flag,currencies", r.URL.Query().Get("fields"))
		_, _ = w.Write([]byte(countriesPayload))
	}))
	defer srv.Close()

	facade := NewCountryHTTPFacade(NewHTTPClient(time.Second), srv.URL+"/v2/all?fields=name,capital,region,population,flag,currencies")
	countries, err := facade.GetCountries(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.RawCountry{
		{
			Name: "Nigeria", Capital: "Abuja", Region: "Africa", Population: 206139589,
			Flag: "https://flagcdn.com/ng.svg", CurrencyCodes: []string{"NGN"},
		},
		{
			Name: "Antarctica", Region: "Polar", Population: 1000, Flag: "https://flagcdn.com/aq.svg",
		},
		{
			Name: "Nowhere", CurrencyCodes: []string{""},
		},
		{
			Name: "Zimbabwe", Capital: "Harare", Region: "Africa", Population: 14862924,
			CurrencyCodes: []string{"USD", "ZWL"},
		},
	}, countries)
}

func TestGetCountries_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "bad gateway", status: http.StatusBadGateway, body: `[]`},
		{name: "not an array", status: http.StatusOK, body: `{"message":"rate limited"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			facade := NewCountryHTTPFacade(NewHTTPClient(time.Second), srv.URL)
			countries, err := facade.GetCountries(context.Background())

			assert.Error(t, err)
			assert.Nil(t, countries)
		})
	}
}

func TestGetCountries_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewCountryHTTPFacade(NewHTTPClient(time.Second), url).GetCountries(context.Background())
	assert.Error(t, err)
}
