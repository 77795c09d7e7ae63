// Package fuzzy implements a small Mamdani inference pipeline: triangular
// membership functions over discretized universes, rules combining terms
// with min/max, and centroid defuzzification of the max-aggregated output.
package fuzzy

import (
	"errors"
	"fmt"
)

// ErrUndefinedDefuzzification is returned when the aggregated membership
// curve is identically zero: no rule fired with nonzero strength, so the
// centroid is undefined. Callers must treat this as distinct from a valid
// 0.0 output.
var ErrUndefinedDefuzzification = errors.New("fuzzy: aggregated membership is zero everywhere, defuzzification undefined")

// Engine is a Mamdani inference engine: min implication, pointwise max
// aggregation, centroid defuzzification. The rule base is validated as it
// is built and read-only afterwards, so one engine may serve any number of
// concurrent Compute calls.
type Engine struct {
	antecedents map[string]*Variable
	consequent  *Variable
	rules       []Rule
}

// NewEngine creates an engine producing values of the consequent variable
// from the given antecedents.
func NewEngine(consequent *Variable, antecedents ...*Variable) *Engine {
	ante := make(map[string]*Variable, len(antecedents))
	for _, v := range antecedents {
		ante[v.Name()] = v
	}
	return &Engine{antecedents: ante, consequent: consequent}
}

// AddRule validates every term reference against the registered variables
// and appends the rule. A rule naming an unknown variable or term is
// rejected here, at construction time, never at evaluation time.
func (e *Engine) AddRule(r Rule) error {
	for _, ref := range r.Antecedent.refs() {
		v, ok := e.antecedents[ref.Variable]
		if !ok {
			return fmt.Errorf("rule %q: unknown antecedent variable %q", r.Label, ref.Variable)
		}
		if _, ok := v.Term(ref.Term); !ok {
			return fmt.Errorf("rule %q: variable %q has no term %q", r.Label, ref.Variable, ref.Term)
		}
	}
	if r.Consequent.Variable != e.consequent.Name() {
		return fmt.Errorf("rule %q: consequent variable %q, engine output is %q",
			r.Label, r.Consequent.Variable, e.consequent.Name())
	}
	if _, ok := e.consequent.Term(r.Consequent.Term); !ok {
		return fmt.Errorf("rule %q: consequent has no term %q", r.Label, r.Consequent.Term)
	}
	e.rules = append(e.rules, r)
	return nil
}

// Rules returns the rule base.
func (e *Engine) Rules() []Rule { return e.rules }

// RuleStrength is one rule's firing strength for a given evaluation.
type RuleStrength struct {
	Label    string  `json:"label"`
	Strength float64 `json:"strength"`
}

// Result carries the crisp output together with the per-rule firing
// strengths that produced it.
type Result struct {
	Value     float64        `json:"value"`
	Strengths []RuleStrength `json:"strengths"`
}

// Compute runs the full pipeline for one set of crisp inputs, keyed by
// antecedent name. Missing inputs fuzzify as absent (all degrees 0).
// Returns ErrUndefinedDefuzzification when no rule fires.
func (e *Engine) Compute(inputs map[string]float64) (*Result, error) {
	// Fuzzification. The session is owned by this call alone.
	s := make(session, len(e.antecedents))
	for name, v := range e.antecedents {
		if value, ok := inputs[name]; ok {
			s[name] = v.Fuzzify(value)
		}
	}

	// Firing strengths.
	strengths := make([]RuleStrength, len(e.rules))
	for i, r := range e.rules {
		strengths[i] = RuleStrength{Label: r.Label, Strength: r.Antecedent.strength(s)}
	}

	// Implication and aggregation, sampled over the consequent universe.
	// Each rule clips its consequent term at the firing strength; the
	// aggregate takes the pointwise max across rules.
	u := e.consequent.Universe()
	var sumMu, sumXMu float64
	for i := 0; i < u.Len(); i++ {
		x := u.Point(i)
		var mu float64
		for j, r := range e.rules {
			w := strengths[j].Strength
			if w == 0 {
				continue
			}
			f, _ := e.consequent.Term(r.Consequent.Term)
			clipped := f.Evaluate(x)
			if clipped > w {
				clipped = w
			}
			if clipped > mu {
				mu = clipped
			}
		}
		sumMu += mu
		sumXMu += x * mu
	}

	if sumMu == 0 {
		return nil, ErrUndefinedDefuzzification
	}

	return &Result{Value: sumXMu / sumMu, Strengths: strengths}, nil
}
