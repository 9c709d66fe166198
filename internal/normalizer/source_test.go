package normalizer

import "testing"

func TestRegistryName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"NCT", "ClinicalTrials.gov"},
		{"CHICTR", "Chinese Clinical Trial Register"},
		{"chictr", "Chinese Clinical Trial Register"},
		{"Anzctr", "Australian New Zealand Clinical Trials Registry"},
		{"EU-CTR", "EU Clinical Trials Register"},
		{"UNKNOWN-REGISTRY", "UNKNOWN-REGISTRY"},
	}

	for _, tt := range tests {
		if got := RegistryName(tt.code); got != tt.want {
			t.Errorf("RegistryName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
