package components

import (
	"log/slog"

	"veb_counter/pkg/set"
)

// returns helper function that seals a filled set into the segment's list
func stageProcessor(logger *slog.Logger, segment int, sets *[]set.Set) func(s set.Set) {
	stage := 0
	return func(s set.Set) {
		logger.Debug("stage sealed", "segment", segment, "stage", stage, "count", s.Count())
		*sets = append(*sets, s)
		stage++
	}
}
