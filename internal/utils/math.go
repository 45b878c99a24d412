package utils

import (
	"fmt"
	"math"

	"github.com/osse101/PropForecast_Go/internal/domain"
)

// MetricPrecision is the number of decimal places derived metrics are rounded to
const MetricPrecision = 4

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 bounds v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Round rounds v to the given number of decimal places
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// RoundMetric rounds v to MetricPrecision decimal places
func RoundMetric(v float64) float64 {
	return Round(v, MetricPrecision)
}

// WeightedAverage returns sum(values[i]*weights[i]) / sum(weights).
// Mismatched lengths, negative weights and a zero total weight are invalid input.
func WeightedAverage(values, weights []float64) (float64, error) {
	if len(values) != len(weights) {
		return 0, fmt.Errorf("%w: %d values but %d weights", domain.ErrInvalidInput, len(values), len(weights))
	}

	var sum, total float64
	for i, w := range weights {
		if w < 0 {
			return 0, fmt.Errorf("%w: negative weight %v at index %d", domain.ErrInvalidInput, w, i)
		}
		sum += values[i] * w
		total += w
	}

	if total == 0 {
		return 0, fmt.Errorf("%w: total weight is zero", domain.ErrInvalidInput)
	}

	return sum / total, nil
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
