package normalizer

import "testing"

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		layout string
		want   string
	}{
		{"compact registration date", "20200215", LayoutCompact, "2020-02-15"},
		{"refreshed date", "4 February 2020", LayoutRefreshed, "2020-02-04"},
		{"refreshed date two digit day", "17 November 2020", LayoutRefreshed, "2020-11-17"},
		{"export timestamp", "3/16/2020 14:55:33 PM", LayoutExport, "2020-03-16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDate(tt.value, tt.layout)
			if err != nil {
				t.Fatalf("FormatDate(%q, %q) returned error: %v", tt.value, tt.layout, err)
			}

			if got != tt.want {
				t.Errorf("FormatDate(%q, %q) = %q, want %q", tt.value, tt.layout, got, tt.want)
			}
		})
	}
}

func TestFormatDate_LayoutMismatch(t *testing.T) {
	if _, err := FormatDate("February 15, 2020", LayoutCompact); err == nil {
		t.Error("FormatDate expected error for layout mismatch")
	}
}
