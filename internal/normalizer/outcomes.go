package normalizer

import (
	"strings"

	"trialsync/internal/models"
)

// splitOutcomes splits a semicolon-delimited outcome-measure string
// into Outcome entries, all marked primary.
func splitOutcomes(outcomes string) []models.Outcome {
	var out []models.Outcome

	for _, measure := range strings.Split(outcomes, ";") {
		measure = strings.TrimSpace(measure)
		if measure == "" {
			continue
		}

		out = append(out, models.Outcome{
			Type:           models.TypeOutcome,
			OutcomeMeasure: measure,
			OutcomeType:    "primary",
		})
	}

	return out
}
