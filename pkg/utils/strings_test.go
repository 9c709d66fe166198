package utils

import (
	"reflect"
	"testing"
)

func TestNonEmpty(t *testing.T) {
	tests := []struct {
		input []string
		want  []string
	}{
		{[]string{"AVT", "Antiviral treatment trial"}, []string{"AVT", "Antiviral treatment trial"}},
		{[]string{"", "only"}, []string{"only"}},
		{[]string{"  ", "\t"}, nil},
		{nil, nil},
	}

	for _, tt := range tests {
		if got := NonEmpty(tt.input...); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("NonEmpty(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	if got := NormalizeWhitespace("  multiple \t spaces\nhere  "); got != "multiple spaces here" {
		t.Errorf("NormalizeWhitespace = %q", got)
	}
}
