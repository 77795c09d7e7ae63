package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Projection is one persisted evaluation of the success model. The numeric
// outputs are pointers: a record of an undefined defuzzification carries
// nil values, which keeps "could not compute" distinguishable from a
// legitimate 0.0.
type Projection struct {
	ID       uuid.UUID `json:"projection_id"`
	ClientID string    `json:"client_id,omitempty"`

	// Inputs
	Attractiveness float64 `json:"attractiveness"`
	Availability   float64 `json:"availability"`
	Investment     float64 `json:"investment"`

	// Fuzzy output
	Undefined      bool     `json:"undefined"`
	SuccessPercent *float64 `json:"success_percent,omitempty"`
	Band           string   `json:"band,omitempty"`
	Message        string   `json:"message,omitempty"`
	Tone           string   `json:"tone,omitempty"`

	// Financial projection
	ReturnFactor    *float64 `json:"return_factor,omitempty"`
	ProjectedReturn *float64 `json:"projected_return,omitempty"`
	NetGain         *float64 `json:"net_gain,omitempty"`

	// Per-rule firing strengths, keyed by rule label
	RuleStrengths map[string]float64 `json:"rule_strengths,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ProjectionFilter narrows ListProjections.
type ProjectionFilter struct {
	Band     string
	ClientID string
	Limit    int
}

// ProjectionStats summarizes the stored history.
type ProjectionStats struct {
	Total             int      `json:"total"`
	LowCount          int      `json:"low_count"`
	ModerateCount     int      `json:"moderate_count"`
	HighCount         int      `json:"high_count"`
	UndefinedCount    int      `json:"undefined_count"`
	AvgSuccessPercent *float64 `json:"avg_success_percent,omitempty"`
}

// Store persists projection history.
type Store interface {
	SaveProjection(ctx context.Context, p *Projection) error
	GetProjection(ctx context.Context, id uuid.UUID) (*Projection, error)
	ListProjections(ctx context.Context, filter ProjectionFilter) ([]*Projection, error)
	GetStats(ctx context.Context) (*ProjectionStats, error)
	Close() error
}
