package models

// RefreshResponse represents a successful refresh response
// swagger:model RefreshResponse
type RefreshResponse struct {
	// Success message
	// example: Countries refreshed successfully
	Message string `json:"message"`

	// Number of stored countries after the refresh
	// example: 250
	TotalCountries int64 `json:"total_countries"`
}

// MessageResponse represents a plain confirmation
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Country deleted successfully
	Message string `json:"message"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Country not found
	Error string `json:"error"`

	// Optional details: provider description or per-field validation reasons
	Details any `json:"details,omitempty"`
}

// RateResponse represents a cached exchange rate
// swagger:model RateResponse
type RateResponse struct {
	// example: EUR
	CurrencyCode string `json:"currency_code"`

	// Rate against USD
	// example: 0.92
	Rate float64 `json:"rate"`
}
