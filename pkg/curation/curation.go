// Package curation builds the provenance block attached to every
// canonical trial document.
package curation

import "time"

// Source organization for all documents derived from the ICTRP export.
const (
	CuratorName       = "WHO International Clinical Trials Registry Platform"
	CuratorIdentifier = "ICTRP"
	CuratorURL        = "https://www.who.int/ictrp/en/"
)

// Curator records who produced a document, which source snapshot it was
// derived from, and when the derivation ran.
type Curator struct {
	Type         string `json:"@type"`
	Name         string `json:"name"`
	Identifier   string `json:"identifier"`
	URL          string `json:"url"`
	VersionDate  string `json:"versionDate,omitempty"`
	CurationDate string `json:"curationDate"`
}

// New returns the ICTRP curation block. versionDate is the export date
// of the source snapshot (ISO format, empty when unknown); now is the
// run time recorded as the curation date.
func New(versionDate string, now time.Time) *Curator {
	return &Curator{
		Type:         "Organization",
		Name:         CuratorName,
		Identifier:   CuratorIdentifier,
		URL:          CuratorURL,
		VersionDate:  versionDate,
		CurationDate: now.Format("2006-01-02"),
	}
}
