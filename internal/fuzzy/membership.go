package fuzzy

import "fmt"

// Trimf is a triangular membership function with feet at a and c and peak
// at b. Degenerate shapes (a=b or b=c) are shoulders: the zero-width side
// steps straight to 1 instead of dividing by zero.
type Trimf struct {
	a, b, c float64
}

// NewTrimf builds a triangular membership function. Requires a <= b <= c.
func NewTrimf(a, b, c float64) (Trimf, error) {
	if a > b || b > c {
		return Trimf{}, fmt.Errorf("trimf: parameters must satisfy a <= b <= c, got (%g, %g, %g)", a, b, c)
	}
	return Trimf{a: a, b: b, c: c}, nil
}

// Evaluate returns the degree of membership of x, always in [0,1].
// Anything outside [a,c] is 0; the function is total and never errors.
func (f Trimf) Evaluate(x float64) float64 {
	switch {
	case x < f.a || x > f.c:
		return 0
	case x == f.b:
		return 1
	case x < f.b:
		if f.b == f.a {
			return 1
		}
		return (x - f.a) / (f.b - f.a)
	default:
		if f.c == f.b {
			return 1
		}
		return (f.c - x) / (f.c - f.b)
	}
}

// Support returns the interval [a,c] outside of which membership is zero.
func (f Trimf) Support() (float64, float64) { return f.a, f.c }

// Peak returns the x where membership is 1.
func (f Trimf) Peak() float64 { return f.b }
