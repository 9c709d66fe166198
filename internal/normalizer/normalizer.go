// Package normalizer converts WHO ICTRP registry rows into canonical
// trial documents. Each field normalizer is independent and stateless;
// the Normalizer composes them row by row.
package normalizer

import (
	"strings"
	"time"

	"trialsync/internal/geo"
	"trialsync/internal/logger"
	"trialsync/internal/models"
	"trialsync/internal/report"
	"trialsync/pkg/curation"
	"trialsync/pkg/utils"
)

// Normalizer maps rows to canonical documents against a fixed country
// reference table. It holds no per-row state; a single instance may be
// shared across goroutines.
type Normalizer struct {
	countries *geo.Table
	logger    *logger.Logger
	stats     *report.Stats
	now       func() time.Time
}

// New creates a normalizer against the given country reference table.
func New(countries *geo.Table, log *logger.Logger) *Normalizer {
	return &Normalizer{
		countries: countries,
		logger:    log,
		stats:     report.NewStats(),
		now:       time.Now,
	}
}

// Stats returns the counters accumulated so far.
func (n *Normalizer) Stats() *report.Stats {
	return n.stats
}

// Normalize converts one row into exactly one canonical document.
// Field-level failures surface as absent fields plus a diagnostic,
// never as a row abort.
func (n *Normalizer) Normalize(row models.Row) *models.ClinicalTrial {
	doc := &models.ClinicalTrial{Type: models.TypeClinicalTrial}

	id, _ := row.Get(models.ColTrialID)
	doc.ID = id
	doc.Identifier = id

	if v, ok := row.Get(models.ColWebAddress); ok {
		doc.URL = v
	}

	if v, ok := row.Get(models.ColSourceRegister); ok {
		doc.IdentifierSource = RegistryName(v)
	}

	if v, ok := row.Get(models.ColScientificTitle); ok {
		doc.Name = v
	}

	doc.AlternateName = utils.NonEmpty(row[models.ColAcronym], row[models.ColPublicTitle])

	if v, ok := row.Get(models.ColPrimarySponsor); ok {
		doc.Funding = []models.Funding{{
			Funder: []models.Organization{{
				Type: models.TypeOrganization,
				Name: v,
				Role: "lead sponsor",
			}},
		}}
	}

	if v, ok := row.Get(models.ColResultsYesNo); ok {
		doc.HasResults = binarize(v)
	}

	doc.DateCreated = n.formatDateColumn(row, models.ColDateRegistration, LayoutCompact)
	doc.DateModified = n.formatDateColumn(row, models.ColLastRefreshed, LayoutRefreshed)
	doc.CuratedBy = curation.New(
		n.formatDateColumn(row, models.ColExportDate, LayoutExport), n.now())

	if v, ok := row.Get(models.ColCountries); ok {
		doc.StudyLocation = n.splitCountries(v)
	}

	if v, ok := row.Get(models.ColCondition); ok {
		doc.HealthCondition = splitConditions(v)
	}

	doc.StudyStatus = extractStatus(row, doc.DateModified)
	doc.StudyEvent = extractEvents(row)
	doc.EligibilityCriteria = extractEligibility(row)
	doc.Author = extractAuthors(row)
	doc.StudyDesign = extractDesign(row)
	doc.ArmGroup = extractArms(row)
	doc.Interventions = extractInterventions(row)

	// Raw copy of the intervention column, since its parsing is lossy.
	if v, ok := row.Get(models.ColIntervention); ok {
		doc.InterventionText = v
	}

	if v, ok := row.Get(models.ColPrimaryOutcome); ok {
		doc.Outcome = splitOutcomes(v)
	}

	return doc
}

// NormalizeAll maps every row to a document, then checks the full
// collection for duplicate identifiers. Duplicates are reported, not
// removed.
func (n *Normalizer) NormalizeAll(rows []models.Row) []*models.ClinicalTrial {
	docs := make([]*models.ClinicalTrial, 0, len(rows))

	for _, row := range rows {
		docs = append(docs, n.Normalize(row))

		register, _ := row.Get(models.ColSourceRegister)
		n.stats.CountRegistry(register)
	}

	n.stats.Documents += len(docs)

	if dupes := DuplicateIdentifiers(docs); len(dupes) > 0 {
		n.logger.Error("duplicate trial identifiers found",
			"count", len(dupes), "ids", strings.Join(dupes, ", "))
		n.stats.DuplicateIDs = append(n.stats.DuplicateIDs, dupes...)
	}

	return docs
}

// DuplicateIdentifiers returns one entry per extra occurrence of an
// identifier across the document set.
func DuplicateIdentifiers(docs []*models.ClinicalTrial) []string {
	seen := make(map[string]bool, len(docs))

	var dupes []string

	for _, doc := range docs {
		if seen[doc.Identifier] {
			dupes = append(dupes, doc.Identifier)
		}

		seen[doc.Identifier] = true
	}

	return dupes
}

// formatDateColumn reads a date column and converts it to ISO form.
// A layout mismatch yields an absent value and a diagnostic.
func (n *Normalizer) formatDateColumn(row models.Row, col, layout string) string {
	v, ok := row.Get(col)
	if !ok {
		return ""
	}

	iso, err := FormatDate(v, layout)
	if err != nil {
		n.logger.Warn("failed to normalize date", "column", col, "value", v, "error", err)
		n.stats.DateErrors++

		return ""
	}

	return iso
}

// binarize maps yes/no style flags onto a tri-state boolean.
func binarize(v string) *bool {
	switch strings.ToLower(v) {
	case "yes", "1":
		t := true
		return &t
	case "no", "0":
		f := false
		return &f
	}

	return nil
}
