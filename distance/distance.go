package distance

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Func is a function type for distance calculation between two points
// of the same dimensionality. Implementations must be non-negative.
// Length agreement is the caller's responsibility.
type Func func(a, b []float64) float64

// SquaredL2 calculates the squared L2 (Euclidean) distance between two
// points. It is the default metric for k-d tree queries: it preserves
// the ordering of Euclidean and avoids the square root.
func SquaredL2(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Euclidean calculates the L2 distance between two points.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Manhattan calculates the L1 distance between two points.
func Manhattan(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// Metric represents the distance metric used for point comparison.
type Metric int

const (
	MetricSquaredL2 Metric = iota
	MetricEuclidean
	MetricManhattan
)

func (m Metric) String() string {
	switch m {
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricEuclidean:
		return "Euclidean"
	case MetricManhattan:
		return "Manhattan"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricSquaredL2:
		return SquaredL2, nil
	case MetricEuclidean:
		return Euclidean, nil
	case MetricManhattan:
		return Manhattan, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
