package services

import (
	"math/rand/v2"
	"sync"
)

// GDP multiplier bounds, both inclusive.
const (
	MinGDPMultiplier = 1000
	MaxGDPMultiplier = 2000
)

// GDPEstimator derives the estimated GDP of a country.
type GDPEstimator interface {
	Estimate(population int64, exchangeRate float64) float64
}

// RandomGDPEstimator computes population * m / exchangeRate with m drawn
// uniformly from [MinGDPMultiplier, MaxGDPMultiplier] on every call.
// Results are intentionally not reproducible unless a seeded source is supplied.
type RandomGDPEstimator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomGDPEstimator creates an estimator drawing from src,
// or from a randomly seeded source when src is nil.
func NewRandomGDPEstimator(src rand.Source) *RandomGDPEstimator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &RandomGDPEstimator{rnd: rand.New(src)}
}

// Estimate returns the estimated GDP. exchangeRate must be positive.
func (e *RandomGDPEstimator) Estimate(population int64, exchangeRate float64) float64 {
	e.mu.Lock()
	multiplier := MinGDPMultiplier + e.rnd.IntN(MaxGDPMultiplier-MinGDPMultiplier+1)
	e.mu.Unlock()

	return float64(population) * float64(multiplier) / exchangeRate
}
