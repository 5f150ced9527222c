package models

// Status represents the current state of the country store
// swagger:model Status
type Status struct {
	// Number of stored countries
	// example: 250
	TotalCountries int64 `json:"total_countries"`

	// Time of the last successful refresh, null if never refreshed
	// example: 2025-10-22T18:30:00.000Z
	LastRefreshedAt *string `json:"last_refreshed_at"`
}
