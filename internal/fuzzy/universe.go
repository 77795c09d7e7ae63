package fuzzy

import "fmt"

// Universe is the discretized numeric domain of a linguistic variable:
// evenly spaced samples over [min, max] with a fixed step. It serves both
// as the sampling grid for membership evaluation and as the integration
// grid for centroid defuzzification. Immutable once constructed.
type Universe struct {
	min    float64
	max    float64
	step   float64
	points []float64
}

// NewUniverse builds a universe over [min, max] sampled every step.
// Both endpoints are included.
func NewUniverse(min, max, step float64) (Universe, error) {
	if max <= min {
		return Universe{}, fmt.Errorf("universe: max %g must exceed min %g", max, min)
	}
	if step <= 0 {
		return Universe{}, fmt.Errorf("universe: step must be positive, got %g", step)
	}

	n := int((max-min)/step) + 1
	points := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		points = append(points, min+float64(i)*step)
	}
	// Guard against the accumulated rounding dropping the upper endpoint.
	if points[len(points)-1] < max-step/2 {
		points = append(points, max)
	}

	return Universe{min: min, max: max, step: step, points: points}, nil
}

func (u Universe) Min() float64 { return u.min }
func (u Universe) Max() float64 { return u.max }

// Len returns the number of sample points.
func (u Universe) Len() int { return len(u.points) }

// Point returns the i-th sample point.
func (u Universe) Point(i int) float64 { return u.points[i] }

// Contains reports whether x lies within the universe bounds.
func (u Universe) Contains(x float64) bool {
	return x >= u.min && x <= u.max
}
