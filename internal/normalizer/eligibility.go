package normalizer

import (
	"strings"

	"trialsync/internal/models"
)

// exclusionMarker separates inclusion from exclusion text when a
// registry packs both into the "Inclusion Criteria" column.
const exclusionMarker = "Exclusion Criteria:"

// stripCriteriaLabel removes the redundant leading labels some
// registries repeat inside the criteria text itself.
func stripCriteriaLabel(text string, labels ...string) string {
	for _, label := range labels {
		text = strings.ReplaceAll(text, label, "")
	}

	return strings.TrimSpace(text)
}

// extractEligibility builds the Eligibility block. Both criteria lists
// are initialized up front so exclusion text is collected regardless
// of whether the combined inclusion column was populated.
func extractEligibility(row models.Row) []models.Eligibility {
	elig := models.Eligibility{Type: models.TypeEligibility}

	inclusion := []string{}
	exclusion := []string{}

	if v, ok := row.Get(models.ColInclusion); ok {
		criteria := strings.SplitN(v, exclusionMarker, 2)

		inclusion = append(inclusion, stripCriteriaLabel(criteria[0],
			"Inclusion criteria:", "Inclusion Criteria:"))

		if len(criteria) == 2 {
			exclusion = append(exclusion, strings.TrimSpace(criteria[1]))
		}
	}

	if v, ok := row.Get(models.ColExclusion); ok {
		exclusion = append(exclusion, stripCriteriaLabel(v,
			"Exclusion criteria:", "Exclusion Criteria:"))
	}

	if len(inclusion) > 0 {
		elig.InclusionCriteria = inclusion
	}

	if len(exclusion) > 0 {
		elig.ExclusionCriteria = exclusion
	}

	if v, ok := row.Get(models.ColInclusionAgeMin); ok {
		elig.MinimumAge = strings.ToLower(v)
	}

	if v, ok := row.Get(models.ColInclusionAgeMax); ok {
		elig.MaximumAge = strings.ToLower(v)
	}

	if v, ok := row.Get(models.ColInclusionGender); ok {
		elig.Gender = strings.ToLower(v)
	}

	if len(elig.InclusionCriteria) == 0 && len(elig.ExclusionCriteria) == 0 &&
		elig.MinimumAge == "" && elig.MaximumAge == "" && elig.Gender == "" {
		return nil
	}

	return []models.Eligibility{elig}
}
