package venture

// Band classifies a success percentage into one of three advisory levels
// for the caller's rendering layer.
type Band struct {
	Label   string `json:"label"`
	Message string `json:"message"`
	Tone    string `json:"tone"`
}

// Band boundary cuts. Both are half-open upward: 35 and 75 belong to the
// upper band.
const (
	moderateCut = 35.0
	highCut     = 75.0
)

var (
	bandLow = Band{
		Label:   "Low",
		Message: "High risk. Review attractiveness or availability before committing.",
		Tone:    "red",
	}
	bandModerate = Band{
		Label:   "Moderate",
		Message: "Balanced potential. Improving availability is the most direct lever.",
		Tone:    "yellow",
	}
	bandHigh = Band{
		Label:   "High",
		Message: "Excellent outlook. Continue with the current strategy.",
		Tone:    "green",
	}
)

// Classify maps a success percentage to its band.
func Classify(successPercent float64) Band {
	switch {
	case successPercent < moderateCut:
		return bandLow
	case successPercent < highCut:
		return bandModerate
	default:
		return bandHigh
	}
}
