package domain

import "fmt"

// Point is a 2-D coordinate for a depot, house, or dump node.
type Point struct {
	X float64
	Y float64
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Metric selects the distance function used to build a Graph's distance matrix.
type Metric int

const (
	// MetricEuclidean uses straight-line distance: sqrt(dx^2 + dy^2).
	MetricEuclidean Metric = iota
	// MetricManhattan uses grid (taxicab) distance: |dx| + |dy|.
	MetricManhattan
)

// String returns the metric's lowercase name.
func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "euclidean"
	case MetricManhattan:
		return "grid"
	default:
		return "unknown"
	}
}
