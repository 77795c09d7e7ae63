package events

// ProjectionComputedEvent is published after a successful evaluation.
type ProjectionComputedEvent struct {
	ProjectionID    string  `json:"projection_id"`
	ClientID        string  `json:"client_id,omitempty"`
	Attractiveness  float64 `json:"attractiveness"`
	Availability    float64 `json:"availability"`
	Investment      float64 `json:"investment"`
	SuccessPercent  float64 `json:"success_percent"`
	Band            string  `json:"band"`
	ProjectedReturn float64 `json:"projected_return"`
	NetGain         float64 `json:"net_gain"`
}

// ProjectionUndefinedEvent is published when no rule fired and the
// centroid was undefined.
type ProjectionUndefinedEvent struct {
	ProjectionID   string  `json:"projection_id"`
	ClientID       string  `json:"client_id,omitempty"`
	Attractiveness float64 `json:"attractiveness"`
	Availability   float64 `json:"availability"`
}

// StatsEvent is published periodically by the reporter.
type StatsEvent struct {
	Total             int      `json:"total"`
	LowCount          int      `json:"low_count"`
	ModerateCount     int      `json:"moderate_count"`
	HighCount         int      `json:"high_count"`
	UndefinedCount    int      `json:"undefined_count"`
	AvgSuccessPercent *float64 `json:"avg_success_percent,omitempty"`
}
