package models

// RefreshEvent is published after every successful refresh.
type RefreshEvent struct {
	EventID        string `json:"event_id"`
	Timestamp      int64  `json:"timestamp"`
	TotalCountries int64  `json:"total_countries"`
	RatesCount     int    `json:"rates_count"`
}
