package fuzzy

import "fmt"

// Variable is a linguistic variable: a name, a universe, and a set of named
// triangular terms over that universe. The same type serves both roles —
// antecedents are fuzzified from a crisp input, the consequent receives the
// aggregated curve and is defuzzified.
type Variable struct {
	name     string
	universe Universe
	terms    map[string]Trimf
}

// NewVariable creates an empty linguistic variable over the given universe.
func NewVariable(name string, universe Universe) *Variable {
	return &Variable{
		name:     name,
		universe: universe,
		terms:    make(map[string]Trimf),
	}
}

func (v *Variable) Name() string       { return v.name }
func (v *Variable) Universe() Universe { return v.universe }

// AddTerm registers a named term. Term names are unique per variable and
// the function's support must lie within the universe bounds.
func (v *Variable) AddTerm(name string, f Trimf) error {
	if name == "" {
		return fmt.Errorf("variable %s: term name required", v.name)
	}
	if _, exists := v.terms[name]; exists {
		return fmt.Errorf("variable %s: duplicate term %q", v.name, name)
	}
	lo, hi := f.Support()
	if !v.universe.Contains(lo) || !v.universe.Contains(hi) {
		return fmt.Errorf("variable %s: term %q support [%g, %g] outside universe [%g, %g]",
			v.name, name, lo, hi, v.universe.Min(), v.universe.Max())
	}
	v.terms[name] = f
	return nil
}

// Term looks up a term by name.
func (v *Variable) Term(name string) (Trimf, bool) {
	f, ok := v.terms[name]
	return f, ok
}

// Fuzzify evaluates every term at the crisp value. Inputs outside the
// universe are not rejected; their degrees simply saturate at 0.
func (v *Variable) Fuzzify(value float64) map[string]float64 {
	degrees := make(map[string]float64, len(v.terms))
	for name, f := range v.terms {
		degrees[name] = f.Evaluate(value)
	}
	return degrees
}
