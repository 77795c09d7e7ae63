package events

const (
	SubjectStats = "difusa.stats"

	StreamName   = "DIFUSA_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectProjectionComputed(id string) string  { return "difusa.projection." + id + ".computed" }
func SubjectProjectionUndefined(id string) string { return "difusa.projection." + id + ".undefined" }
