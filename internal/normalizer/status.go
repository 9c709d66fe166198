package normalizer

import (
	"strconv"
	"strings"

	"trialsync/internal/models"
)

// extractStatus builds the StudyStatus block. statusDate carries the
// row's modification date; enrollment is aggregated across the
// semicolon-delimited per-arm targets when any of them parse.
func extractStatus(row models.Row, statusDate string) *models.StudyStatus {
	status := &models.StudyStatus{
		Type:       models.TypeStudyStatus,
		StatusDate: statusDate,
	}

	if v, ok := row.Get(models.ColRecruitmentState); ok {
		status.Status = strings.ToLower(v)
	}

	if v, ok := row.Get(models.ColTargetSize); ok {
		if total := sumArmTargets(v); total > 0 {
			status.EnrollmentCount = total
			status.EnrollmentType = "anticipated"
		}
	}

	return status
}

// sumArmTargets sums the per-arm enrollment targets in a "Target size"
// value. Each semicolon-delimited entry is either "label:count" or a
// bare count; entries that do not parse as integers are skipped.
func sumArmTargets(targetSize string) int {
	total := 0

	for _, entry := range strings.Split(targetSize, ";") {
		parts := strings.Split(entry, ":")

		candidate := parts[0]
		if len(parts) == 2 {
			candidate = parts[1]
		}

		count, err := strconv.Atoi(strings.TrimSpace(candidate))
		if err != nil {
			continue
		}

		total += count
	}

	return total
}
