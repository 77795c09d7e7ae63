// Package venture configures the fuzzy success model and turns its crisp
// output into a financial projection. The rule base is built once at
// process start and shared read-only across requests.
package venture

import (
	"fmt"

	"github.com/SandiaExe/LogicaDifusa/internal/fuzzy"
)

// Variable names used by the model.
const (
	VarAttractiveness = "attractiveness"
	VarAvailability   = "availability"
	VarSuccess        = "success"
)

// Attractiveness terms (meaningful input range 0-10).
const (
	TermLow         = "low"
	TermAverage     = "average"
	TermOutstanding = "outstanding"
)

// Availability terms (meaningful input range 1-100).
const (
	TermLimited  = "limited"
	TermAdequate = "adequate"
	TermAbundant = "abundant"
)

// Success terms (output range 0-100).
const (
	TermSuccessLow      = "low"
	TermSuccessModerate = "moderate"
	TermSuccessHigh     = "high"
)

type termDef struct {
	name    string
	a, b, c float64
}

func buildVariable(name string, min, max, step float64, terms []termDef) (*fuzzy.Variable, error) {
	u, err := fuzzy.NewUniverse(min, max, step)
	if err != nil {
		return nil, fmt.Errorf("variable %s: %w", name, err)
	}
	v := fuzzy.NewVariable(name, u)
	for _, td := range terms {
		f, err := fuzzy.NewTrimf(td.a, td.b, td.c)
		if err != nil {
			return nil, fmt.Errorf("variable %s term %s: %w", name, td.name, err)
		}
		if err := v.AddTerm(td.name, f); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// NewSuccessEngine builds the full success model: two antecedents, one
// consequent, six rules. Any misconfiguration is reported here, never at
// evaluation time.
func NewSuccessEngine() (*fuzzy.Engine, error) {
	attractiveness, err := buildVariable(VarAttractiveness, 0, 10, 0.1, []termDef{
		{TermLow, 0, 0, 5},
		{TermAverage, 3, 6, 9},
		{TermOutstanding, 7, 10, 10},
	})
	if err != nil {
		return nil, err
	}

	availability, err := buildVariable(VarAvailability, 1, 100, 1, []termDef{
		{TermLimited, 1, 1, 50},
		{TermAdequate, 30, 70, 90},
		{TermAbundant, 70, 100, 100},
	})
	if err != nil {
		return nil, err
	}

	success, err := buildVariable(VarSuccess, 0, 100, 0.1, []termDef{
		{TermSuccessLow, 0, 15, 30},
		{TermSuccessModerate, 20, 50, 80},
		{TermSuccessHigh, 70, 90, 100},
	})
	if err != nil {
		return nil, err
	}

	engine := fuzzy.NewEngine(success, attractiveness, availability)

	rules := []fuzzy.Rule{
		// Low attractiveness caps success regardless of availability.
		fuzzy.NewRule("low attractiveness -> low success",
			fuzzy.Term(VarAttractiveness, TermLow),
			VarSuccess, TermSuccessLow),
		fuzzy.NewRule("outstanding and abundant -> high success",
			fuzzy.And(fuzzy.Term(VarAttractiveness, TermOutstanding), fuzzy.Term(VarAvailability, TermAbundant)),
			VarSuccess, TermSuccessHigh),
		fuzzy.NewRule("outstanding but limited -> moderate success",
			fuzzy.And(fuzzy.Term(VarAttractiveness, TermOutstanding), fuzzy.Term(VarAvailability, TermLimited)),
			VarSuccess, TermSuccessModerate),
		fuzzy.NewRule("average and adequate -> moderate success",
			fuzzy.And(fuzzy.Term(VarAttractiveness, TermAverage), fuzzy.Term(VarAvailability, TermAdequate)),
			VarSuccess, TermSuccessModerate),
		fuzzy.NewRule("average and abundant -> high success",
			fuzzy.And(fuzzy.Term(VarAttractiveness, TermAverage), fuzzy.Term(VarAvailability, TermAbundant)),
			VarSuccess, TermSuccessHigh),
		fuzzy.NewRule("average but limited -> low success",
			fuzzy.And(fuzzy.Term(VarAttractiveness, TermAverage), fuzzy.Term(VarAvailability, TermLimited)),
			VarSuccess, TermSuccessLow),
	}
	for _, r := range rules {
		if err := engine.AddRule(r); err != nil {
			return nil, err
		}
	}

	return engine, nil
}
