package curation

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	now := time.Date(2020, 3, 16, 18, 30, 0, 0, time.UTC)

	c := New("2020-03-16", now)

	if c.Type != "Organization" {
		t.Errorf("Type = %q, want Organization", c.Type)
	}

	if c.Name != CuratorName || c.Identifier != CuratorIdentifier || c.URL != CuratorURL {
		t.Errorf("curator identity = %+v, want ICTRP constants", c)
	}

	if c.VersionDate != "2020-03-16" {
		t.Errorf("VersionDate = %q, want 2020-03-16", c.VersionDate)
	}

	if c.CurationDate != "2020-03-16" {
		t.Errorf("CurationDate = %q, want 2020-03-16", c.CurationDate)
	}
}

func TestNew_EmptyVersionDate(t *testing.T) {
	c := New("", time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC))

	if c.VersionDate != "" {
		t.Errorf("VersionDate = %q, want empty", c.VersionDate)
	}

	if c.CurationDate != "2020-04-01" {
		t.Errorf("CurationDate = %q, want 2020-04-01", c.CurationDate)
	}
}
