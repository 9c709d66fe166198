package normalizer

import (
	"reflect"
	"testing"

	"trialsync/internal/models"
)

func TestNormalizeStudyType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Interventional study", "interventional"},
		{"Intervention", "interventional"},
		{"Observational study", "observational"},
		{"Epidemilogical research", "observational"},
		{"Basic Science", "basic science"},
		{"Expanded Access", "expanded access"},
	}

	for _, tt := range tests {
		if got := normalizeStudyType(tt.input); got != tt.want {
			t.Errorf("normalizeStudyType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizePhase(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Phase 1/Phase 2", []string{"phase 1", "phase 2"}},
		{"N/A", []string{"not applicable"}},
		{"Retrospective study", []string{"not applicable"}},
		{"III", []string{"phase 3"}},
		{"1-2", []string{"phase 1", "phase 2"}},
		{"Not selected", nil},
		{"Phase 42", []string{"phase 42"}},
	}

	for _, tt := range tests {
		if got := normalizePhase(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("normalizePhase(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNormalizePhase_EULongForm(t *testing.T) {
	text := "Human pharmacology (Phase I): no\n" +
		"Therapeutic exploratory (Phase II): yes\n" +
		"Therapeutic confirmatory (Phase III): yes\n" +
		"Therapeutic use (Phase IV): no"

	want := []string{"phase 2", "phase 3"}
	if got := normalizePhase(text); !reflect.DeepEqual(got, want) {
		t.Errorf("normalizePhase EU long form = %v, want %v", got, want)
	}
}

func TestPhaseNumbers(t *testing.T) {
	tests := []struct {
		labels []string
		want   []int
	}{
		{[]string{"phase 1", "phase 2"}, []int{1, 2}},
		{[]string{"early phase 1"}, []int{0, 1}},
		{[]string{"not applicable"}, nil},
		{nil, nil},
	}

	for _, tt := range tests {
		if got := phaseNumbers(tt.labels); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("phaseNumbers(%v) = %v, want %v", tt.labels, got, tt.want)
		}
	}
}

func TestNormalizeAllocation(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Randomized controlled trial", "randomized"},
		{"Randomisation: randomised controlled trial", "randomized"},
		{"This is a non-randomized trial", "non-randomized"},
		{"Allocation: Single arm study", "non-randomized"},
		{"Randomised: no Controlled: yes", "non-randomized"},
		{"Case series", ""},
	}

	for _, tt := range tests {
		if got := normalizeAllocation(tt.input); got != tt.want {
			t.Errorf("normalizeAllocation(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeModel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"irct comma form", "Randomization: Randomized, Assignment: Parallel, Other design features:", "parallel assignment", true},
		{"drks period form", "Allocation: single arm study. Assignment: single arm study. Masking: open", "single group assignment", true},
		{"anzctr semicolon form", "Purpose: treatment; Allocation: randomised; Assignment: crossover; Masking: open", "crossover assignment", true},
		{"eu parallel group", "Controlled: yes Randomised: yes Parallel group: yes Cross over: no", "parallel assignment", true},
		{"jprn literal", "Basic design: parallel assignment", "parallel assignment", true},
		{"bare vocabulary value", "Cohort", "cohort", true},
		{"total miss yields no model", "some freeform design narrative", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeModel(tt.input)
			if ok != tt.ok {
				t.Fatalf("normalizeModel(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}

			if got != tt.want {
				t.Errorf("normalizeModel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePurpose(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		studyType string
		want      string
		ok        bool
	}{
		{"semicolon rule", "Purpose: treatment; Allocation: randomised", "", "treatment", true},
		{"comma rule", "Purpose: Supportive, Masking: none", "", "supportive care", true},
		{"whole text lookup", "Diagnostic test for accuracy", "", "diagnostic", true},
		{"study type fallback", "no structured purpose here", "Treatment study", "", false},
		{"study type resolves", "unstructured", "Prevention", "prevention", true},
		{"total miss", "unstructured", "Observational study", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizePurpose(tt.text, tt.studyType)
			if ok != tt.ok {
				t.Fatalf("normalizePurpose(%q, %q) ok = %v, want %v", tt.text, tt.studyType, ok, tt.ok)
			}

			if got != tt.want {
				t.Errorf("normalizePurpose(%q, %q) = %q, want %q", tt.text, tt.studyType, got, tt.want)
			}
		})
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"Timing: prospective; Duration: 12 months", "prospective", true},
		{"Observational study: prospective/retrospective cohort", "retrospective/prospective", true},
		{"Retrospective chart review", "retrospective", true},
		{"Cross-sectional survey", "cross-sectional", true},
		{"Parallel assignment", "", false},
	}

	for _, tt := range tests {
		got, ok := normalizeTime(tt.input)
		if ok != tt.ok {
			t.Errorf("normalizeTime(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}

		if got != tt.want {
			t.Errorf("normalizeTime(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExtractNumberArms(t *testing.T) {
	text := "Controlled: yes Randomised: yes Number of treatment arms in the trial: 3"

	arms, ok := extractNumberArms(text)
	if !ok {
		t.Fatal("extractNumberArms expected a match")
	}

	if arms != 3 {
		t.Errorf("extractNumberArms = %d, want 3", arms)
	}

	if _, ok := extractNumberArms("no arm count here"); ok {
		t.Error("extractNumberArms expected no match")
	}
}

func TestExtractDesign(t *testing.T) {
	row := models.Row{
		models.ColStudyType:   "Interventional study",
		models.ColPhase:       "Phase 1/Phase 2",
		models.ColStudyDesign: "Purpose: treatment; Allocation: randomised; Assignment: parallel; Masking: open",
	}

	design := extractDesign(row)

	if design.StudyType != "interventional" {
		t.Errorf("StudyType = %q, want interventional", design.StudyType)
	}

	if want := []string{"phase 1", "phase 2"}; !reflect.DeepEqual(design.Phase, want) {
		t.Errorf("Phase = %v, want %v", design.Phase, want)
	}

	if want := []int{1, 2}; !reflect.DeepEqual(design.PhaseNumber, want) {
		t.Errorf("PhaseNumber = %v, want %v", design.PhaseNumber, want)
	}

	if design.DesignAllocation != "randomized" {
		t.Errorf("DesignAllocation = %q, want randomized", design.DesignAllocation)
	}

	if want := []string{"parallel assignment"}; !reflect.DeepEqual(design.DesignModel, want) {
		t.Errorf("DesignModel = %v, want %v", design.DesignModel, want)
	}

	if design.DesignPrimaryPurpose != "treatment" {
		t.Errorf("DesignPrimaryPurpose = %q, want treatment", design.DesignPrimaryPurpose)
	}

	if design.StudyDesignText == "" {
		t.Error("StudyDesignText should carry the raw column")
	}
}

func TestExtractDesign_NoDesignText(t *testing.T) {
	row := models.Row{models.ColStudyType: "Observational study"}

	design := extractDesign(row)

	if design.StudyType != "observational" {
		t.Errorf("StudyType = %q, want observational", design.StudyType)
	}

	if len(design.DesignModel) != 0 {
		t.Errorf("DesignModel = %v, want empty", design.DesignModel)
	}

	if design.DesignAllocation != "" {
		t.Errorf("DesignAllocation = %q, want absent", design.DesignAllocation)
	}
}
