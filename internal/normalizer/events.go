package normalizer

import "trialsync/internal/models"

// The three dated occurrences the export reports per trial.
var eventColumns = []struct {
	col       string
	eventType string
}{
	{models.ColDateEnrollement, "start"},
	{models.ColResultsCompleted, "first submission of results"},
	{models.ColResultsPosted, "first posting of results"},
}

// extractEvents returns one StudyEvent per populated event column.
// Event dates pass through as reported by the registry.
func extractEvents(row models.Row) []models.StudyEvent {
	var events []models.StudyEvent

	for _, ec := range eventColumns {
		date, ok := row.Get(ec.col)
		if !ok {
			continue
		}

		events = append(events, models.StudyEvent{
			Type:          models.TypeStudyEvent,
			EventType:     ec.eventType,
			EventDate:     date,
			EventDateType: "actual",
		})
	}

	return events
}
