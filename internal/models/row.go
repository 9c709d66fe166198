package models

import "strings"

// Column names of the WHO ICTRP CSV export. Any column may be missing
// or empty on a given row; the two cases are treated identically.
const (
	ColTrialID          = "TrialID"
	ColSourceRegister   = "Source Register"
	ColWebAddress       = "web address"
	ColScientificTitle  = "Scientific title"
	ColPublicTitle      = "Public title"
	ColAcronym          = "Acronym"
	ColPrimarySponsor   = "Primary sponsor"
	ColResultsYesNo     = "results yes no"
	ColDateRegistration = "Date registration3"
	ColLastRefreshed    = "Last Refreshed on"
	ColExportDate       = "Export date"
	ColCountries        = "Countries"
	ColCondition        = "Condition"
	ColRecruitmentState = "Recruitment Status"
	ColTargetSize       = "Target size"
	ColDateEnrollement  = "Date enrollement"
	ColResultsCompleted = "results date completed"
	ColResultsPosted    = "results date posted"
	ColInclusion        = "Inclusion Criteria"
	ColExclusion        = "Exclusion Criteria"
	ColInclusionAgeMin  = "Inclusion agemin"
	ColInclusionAgeMax  = "Inclusion agemax"
	ColInclusionGender  = "Inclusion gender"
	ColContactFirstname = "Contact Firstname"
	ColContactLastname  = "Contact Lastname"
	ColContactAffil     = "Contact Affiliation"
	ColStudyType        = "Study type"
	ColStudyDesign      = "Study design"
	ColPhase            = "Phase"
	ColIntervention     = "Intervention"
	ColPrimaryOutcome   = "Primary outcome"
)

// Row is one registry record from the ICTRP export, keyed by column name.
type Row map[string]string

// Get returns the trimmed value of a column and whether the column
// holds any text. Absent and empty columns both report false.
func (r Row) Get(col string) (string, bool) {
	v, ok := r[col]
	if !ok {
		return "", false
	}

	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}

	return v, true
}
