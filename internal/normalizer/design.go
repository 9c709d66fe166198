package normalizer

import (
	"regexp"
	"strconv"
	"strings"

	"trialsync/internal/models"
)

// The ~15 contributing registries encode the same design concepts in
// mutually incompatible free-text conventions. Each classifier below is
// an ordered cascade: registry-specific extraction rules tried in a
// fixed priority order, then a literal lookup on the whole lowercased
// text, then (where the source behaves that way) the lowercased raw
// text passed through.

// Study type vocabulary.
var studyTypes = map[string]string{
	"intervention":         "interventional",
	"treatment study":      "interventional",
	"interventional study": "interventional",
	"interventional clinical trial of medicinal product": "interventional",

	"prevention": "prevention",

	"observational study":     "observational",
	"epidemilogical research": "observational",
	"prognosis study":         "observational",

	"diagnostic test":          "diagnostic test",
	"screening":                "screening",
	"basic science":            "basic science",
	"health services research": "health services research",
	"health services reaserch": "health services research",
	"others,meta-analysis etc": "others",
}

// normalizeStudyType maps free-text study types onto the canonical
// enumeration; unknown values pass through lowercased.
func normalizeStudyType(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if v, ok := studyTypes[lower]; ok {
		return v
	}

	return lower
}

// Phase designator vocabulary. A nil value means the designator maps
// to no phase at all.
var phaseLabels = map[string][]string{
	"n/a":                 {"not applicable"},
	"not applicable":      {"not applicable"},
	"retrospective":       {"not applicable"},
	"retrospective study": {"not applicable"},
	"0":                   {"phase 0"},
	"1":                   {"phase 1"},
	"2":                   {"phase 2"},
	"3":                   {"phase 3"},
	"4":                   {"phase 4"},
	"i":                   {"phase 1"},
	"ii":                  {"phase 2"},
	"iii":                 {"phase 3"},
	"iv":                  {"phase 4"},
	"phase i":             {"phase 1"},
	"phase ii":            {"phase 2"},
	"phase iii":           {"phase 3"},
	"phase iv":            {"phase 4"},
	"phase-1":             {"phase 1"},
	"phase-2":             {"phase 2"},
	"phase-3":             {"phase 3"},
	"phase-4":             {"phase 4"},
	"phase 1/phase 2":     {"phase 1", "phase 2"},
	"phase 1 / phase 2":   {"phase 1", "phase 2"},
	"1-2":                 {"phase 1", "phase 2"},
	"phase i/ii":          {"phase 1", "phase 2"},
	"phase 2/phase 3":     {"phase 2", "phase 3"},
	"phase 2 / phase 3":   {"phase 2", "phase 3"},
	"phase ii/iii":        {"phase 2", "phase 3"},
	"ii-iii":              {"phase 2", "phase 3"},
	"2-3":                 {"phase 2", "phase 3"},
	"not selected":        nil,
}

// EU-CTR long form: one "human pharmacology (phase i): yes/no" line per
// phase; the trial is in every phase marked yes.
var euPhasePattern = regexp.MustCompile(`\(phase ([0-9a-z]+)\)`)

// normalizePhase maps a phase designator to canonical phase labels.
// Unknown designators pass through as a single lowercased label.
func normalizePhase(raw string) []string {
	lower := strings.ToLower(raw)

	if strings.Contains(lower, "human pharmacology") {
		var labels []string

		for _, line := range strings.Split(lower, "\n") {
			if !strings.Contains(line, "yes") {
				continue
			}

			m := euPhasePattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			labels = append(labels, phaseLabels[m[1]]...)
		}

		return labels
	}

	if labels, ok := phaseLabels[strings.TrimSpace(lower)]; ok {
		return labels
	}

	return []string{strings.TrimSpace(lower)}
}

// Numeric values for canonical phase labels. "early phase 1" spans two
// values; non-applicable and unknown labels contribute none.
var phaseNumberValues = map[string][]int{
	"early phase 1": {0, 1},
	"phase 0":       {0},
	"phase 1":       {1},
	"phase 2":       {2},
	"phase 3":       {3},
	"phase 4":       {4},
}

// phaseNumbers derives the numeric phase list from canonical labels.
func phaseNumbers(labels []string) []int {
	var nums []int

	for _, label := range labels {
		nums = append(nums, phaseNumberValues[label]...)
	}

	return nums
}

// Non-randomized phrasings are checked before the generic terms since
// several of them contain "randomized"/"randomised" as a substring.
var allocationChecks = []struct {
	substr string
	value  string
}{
	{"allocation: single arm study", "non-randomized"}, // DRKS
	{"randomized: no", "non-randomized"},               // NTR
	{"randomised: no", "non-randomized"},               // EU-CTR
	{"not randomized", "non-randomized"},
	{"non randomized", "non-randomized"},
	{"non-randomized", "non-randomized"},
	{"not randomised", "non-randomized"},
	{"non randomised", "non-randomized"},
	{"non-randomised", "non-randomized"},
	{"randomised", "randomized"},
	{"randomized", "randomized"},
}

// normalizeAllocation classifies the design text as randomized or
// non-randomized; no match yields no allocation.
func normalizeAllocation(designText string) string {
	lower := strings.ToLower(designText)

	for _, check := range allocationChecks {
		if strings.Contains(lower, check.substr) {
			return check.value
		}
	}

	return ""
}

// Design model vocabulary, from the ClinicalTrials.gov intervention and
// observational model enumerations.
var designModels = map[string]string{
	// interventional
	"cross-over":       "crossover assignment",
	"crossover":        "crossover assignment",
	"cross over":       "crossover assignment",
	"factorial":        "factorial assignment",
	"parallel":         "parallel assignment",
	"sequential":       "sequential assignment",
	"single group":     "single group assignment",
	"single arm":       "single group assignment",
	"single arm study": "single group assignment",
	// observational
	"case control":          "case control",
	"case-control":          "case-control",
	"case-control study":    "case-control",
	"case-crossover":        "case-crossover",
	"case-only":             "case-only",
	"case study":            "case-only",
	"cohort":                "cohort",
	"cohort study":          "cohort",
	"defined population":    "defined population",
	"ecologic or community": "ecologic or community",
	"family-based":          "family-based",
	"natural history":       "natural history",
	"other":                 "other",
}

// modelRule is one step of the model cascade: a registry-specific
// pattern with either a fixed result or a captured token to normalize
// through the vocabulary.
type modelRule struct {
	pattern *regexp.Regexp
	literal string
}

var modelRules = []modelRule{
	{pattern: regexp.MustCompile(`assignment: (.+?),`)},  // IRCT
	{pattern: regexp.MustCompile(`assignment: (.+?)\.`)}, // DRKS
	{pattern: regexp.MustCompile(`assignment: (.+?);`)},  // ANZCTR, LBCTR
	{pattern: regexp.MustCompile(`parallel group: yes`), literal: "parallel assignment"},    // EU-CTR
	{pattern: regexp.MustCompile(`cross over group: yes`), literal: "crossover assignment"}, // EU-CTR
	{pattern: regexp.MustCompile(`parallel assignment`), literal: "parallel assignment"},    // JPRN
	{pattern: regexp.MustCompile(`single assignment`), literal: "single group assignment"},  // JPRN
}

// normalizeModel extracts the structural assignment model from the
// design text. A total miss yields no model rather than a guess.
func normalizeModel(designText string) (string, bool) {
	lower := strings.ToLower(designText)

	for _, rule := range modelRules {
		m := rule.pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		if rule.literal != "" {
			return rule.literal, true
		}

		token := strings.TrimSpace(m[1])
		if v, ok := designModels[token]; ok {
			return v, true
		}

		return token, true
	}

	if v, ok := designModels[strings.TrimSpace(lower)]; ok {
		return v, true
	}

	return "", false
}

// Primary purpose vocabulary.
var designPurposes = map[string]string{
	"treatment":                    "treatment",
	"treatment.":                   "treatment",
	"prevention":                   "prevention",
	"diagnostic":                   "diagnostic",
	"diagnostic test for accuracy": "diagnostic",
	"supportive":                   "supportive care",
	"supportive care":              "supportive care",
	"screening":                    "screening",
	"health services research":     "health services research",
	"health services reaserch":     "health services research",
	"health care system":           "health services research",
	"basic science":                "basic science",
	"basic science/physiological study": "basic science",

	"other": "other",
}

var purposeRules = []*regexp.Regexp{
	regexp.MustCompile(`purpose: (.+?);`), // ANZCTR, DRKS
	regexp.MustCompile(`purpose: (.+?),`), // IRCT
}

// normalizePurpose extracts the primary purpose from the design text,
// falling back to the study type column when the design text yields
// nothing.
func normalizePurpose(designText, studyType string) (string, bool) {
	lower := strings.ToLower(designText)

	for _, pattern := range purposeRules {
		m := pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		token := strings.TrimSpace(m[1])
		if v, ok := designPurposes[token]; ok {
			return v, true
		}

		return token, true
	}

	if v, ok := designPurposes[strings.TrimSpace(lower)]; ok {
		return v, true
	}

	if v, ok := designPurposes[strings.ToLower(strings.TrimSpace(studyType))]; ok {
		return v, true
	}

	return "", false
}

// Time perspective vocabulary.
var timePerspectives = map[string]string{
	"cross-sectional":           "cross-sectional",
	"longitudinal":              "longitudinal",
	"other":                     "other",
	"prospective":               "prospective",
	"retrospective":             "retrospective",
	"both":                      "retrospective/prospective",
	"retrospective/prospective": "retrospective/prospective",
}

var timingRule = regexp.MustCompile(`timing: (.+?);`) // ANZCTR

// Containment checks in priority order; the combined phrasing must win
// over either of its parts.
var timingChecks = []struct {
	substr string
	value  string
}{
	{"prospective/retrospective", "retrospective/prospective"},
	{"retrospective", "retrospective"},
	{"prospective", "prospective"},
	{"longitudinal", "longitudinal"},
	{"cross-sectional", "cross-sectional"},
}

// normalizeTime extracts the time perspective from the design text.
func normalizeTime(designText string) (string, bool) {
	lower := strings.ToLower(designText)

	if m := timingRule.FindStringSubmatch(lower); m != nil {
		token := strings.TrimSpace(m[1])
		if v, ok := timePerspectives[token]; ok {
			return v, true
		}

		return token, true
	}

	for _, check := range timingChecks {
		if strings.Contains(lower, check.substr) {
			return check.value, true
		}
	}

	return "", false
}

// EU-CTR reports the arm count inside the design text.
var numberArmsPattern = regexp.MustCompile(`Number of treatment arms in the trial: (\d+)`)

// extractNumberArms pulls the EU-CTR arm count out of the design text.
func extractNumberArms(designText string) (int, bool) {
	m := numberArmsPattern.FindStringSubmatch(designText)
	if m == nil {
		return 0, false
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	return n, true
}

// extractDesign builds the StudyDesign block from the study type,
// phase, and design text columns. The raw design text is carried along
// for downstream inspection.
func extractDesign(row models.Row) *models.StudyDesign {
	design := &models.StudyDesign{Type: models.TypeStudyDesign}

	if v, ok := row.Get(models.ColStudyType); ok {
		design.StudyType = normalizeStudyType(v)
	}

	if v, ok := row.Get(models.ColPhase); ok {
		design.Phase = normalizePhase(v)
		design.PhaseNumber = phaseNumbers(design.Phase)
	}

	text, ok := row.Get(models.ColStudyDesign)
	if !ok {
		return design
	}

	design.DesignAllocation = normalizeAllocation(text)

	var modelList []string

	if model, ok := normalizeModel(text); ok {
		modelList = append(modelList, model)
	}

	if perspective, ok := normalizeTime(text); ok {
		modelList = append(modelList, perspective)
	}

	design.DesignModel = modelList

	studyType, _ := row.Get(models.ColStudyType)
	if purpose, ok := normalizePurpose(text, studyType); ok {
		design.DesignPrimaryPurpose = purpose
	}

	if arms, ok := extractNumberArms(text); ok {
		design.NumberArms = arms
	}

	design.StudyDesignText = text

	return design
}
