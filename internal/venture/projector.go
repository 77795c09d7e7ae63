package venture

import (
	"github.com/SandiaExe/LogicaDifusa/internal/fuzzy"
)

// returnDivisor normalizes success percent into a return factor: 50%
// success breaks even, 100% doubles the investment.
const returnDivisor = 50.0

// Outcome is one complete projection: the crisp fuzzy output, its band,
// the financial figures, and the per-rule firing strengths behind it.
type Outcome struct {
	SuccessPercent  float64              `json:"success_percent"`
	Band            Band                 `json:"band"`
	ReturnFactor    float64              `json:"return_factor"`
	ProjectedReturn float64              `json:"projected_return"`
	NetGain         float64              `json:"net_gain"`
	RuleStrengths   []fuzzy.RuleStrength `json:"rule_strengths"`
}

// ProjectReturn computes the financial figures from a success percentage
// and an investment amount. Pure and total.
func ProjectReturn(successPercent, investment float64) (factor, projected, netGain float64) {
	factor = successPercent / returnDivisor
	projected = investment * factor
	netGain = projected - investment
	return factor, projected, netGain
}

// Projector evaluates the success model. Safe for concurrent use: the
// engine it wraps is read-only and every Project call owns its own
// working state.
type Projector struct {
	engine *fuzzy.Engine
}

// NewProjector builds the static rule base and wraps it.
func NewProjector() (*Projector, error) {
	engine, err := NewSuccessEngine()
	if err != nil {
		return nil, err
	}
	return &Projector{engine: engine}, nil
}

// Rules exposes the rule base, for explanations.
func (p *Projector) Rules() []fuzzy.Rule { return p.engine.Rules() }

// Project runs one evaluation. Out-of-range inputs are not rejected;
// they saturate to zero membership, and if nothing fires at all the
// engine's fuzzy.ErrUndefinedDefuzzification is passed through.
func (p *Projector) Project(attractiveness, availability, investment float64) (*Outcome, error) {
	res, err := p.engine.Compute(map[string]float64{
		VarAttractiveness: attractiveness,
		VarAvailability:   availability,
	})
	if err != nil {
		return nil, err
	}

	factor, projected, netGain := ProjectReturn(res.Value, investment)
	return &Outcome{
		SuccessPercent:  res.Value,
		Band:            Classify(res.Value),
		ReturnFactor:    factor,
		ProjectedReturn: projected,
		NetGain:         netGain,
		RuleStrengths:   res.Strengths,
	}, nil
}
