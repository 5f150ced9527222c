package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrCountryNotFound is returned when a lookup or delete matches no country.
var ErrCountryNotFound = errors.New("country not found")

// ExternalSourceError reports that an upstream provider could not be reached.
type ExternalSourceError struct {
	Source string // provider host, e.g. restcountries.com
	Err    error
}

func (e *ExternalSourceError) Error() string {
	return fmt.Sprintf("external source %s unavailable: %v", e.Source, e.Err)
}

func (e *ExternalSourceError) Unwrap() error {
	return e.Err
}

// ValidationError lists the failing fields of a manual insert and the reason for each.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for field := range e.Details {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+" "+e.Details[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
