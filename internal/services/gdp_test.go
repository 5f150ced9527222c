package services

import (
	"math/rand/v2"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestRandomGDPEstimator_RatioProperty(t *testing.T) {
	estimator := NewRandomGDPEstimator(nil)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("gdp * rate / population lies in [1000, 2000]", prop.ForAll(
		func(population int64, rate float64) bool {
			gdp := estimator.Estimate(population, rate)
			ratio := gdp * rate / float64(population)
			return ratio >= MinGDPMultiplier-1e-6 && ratio <= MaxGDPMultiplier+1e-6
		},
		gen.Int64Range(1, 2_000_000_000),
		gen.Float64Range(0.0001, 100000),
	))

	properties.Property("zero population yields zero gdp", prop.ForAll(
		func(rate float64) bool {
			return estimator.Estimate(0, rate) == 0
		},
		gen.Float64Range(0.0001, 100000),
	))

	properties.TestingRun(t)
}

func TestRandomGDPEstimator_MultiplierBounds(t *testing.T) {
	estimator := NewRandomGDPEstimator(rand.NewPCG(1, 2))

	minSeen, maxSeen := float64(MaxGDPMultiplier), float64(MinGDPMultiplier)
	for i := 0; i < 200000; i++ {
		m := estimator.Estimate(1, 1)
		assert.Equal(t, m, float64(int64(m)), "multiplier must be an integer")
		if m < minSeen {
			minSeen = m
		}
		if m > maxSeen {
			maxSeen = m
		}
	}

	assert.Equal(t, float64(MinGDPMultiplier), minSeen)
	assert.Equal(t, float64(MaxGDPMultiplier), maxSeen)
}

func TestRandomGDPEstimator_SeededIsReproducible(t *testing.T) {
	a := NewRandomGDPEstimator(rand.NewPCG(42, 7))
	b := NewRandomGDPEstimator(rand.NewPCG(42, 7))

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Estimate(206139589, 1600.23), b.Estimate(206139589, 1600.23))
	}
}
