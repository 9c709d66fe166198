// Package models defines the ICTRP input row and the canonical trial
// document produced by the normalizer.
package models

import "trialsync/pkg/curation"

// Schema type tags carried by the canonical document and its nested blocks.
const (
	TypeClinicalTrial = "ClinicalTrial"
	TypeStudyStatus   = "StudyStatus"
	TypeStudyEvent    = "StudyEvent"
	TypeEligibility   = "Eligibility"
	TypePerson        = "Person"
	TypeOrganization  = "Organization"
	TypeStudyDesign   = "StudyDesign"
	TypeArmGroup      = "ArmGroup"
	TypeIntervention  = "Intervention"
	TypeOutcome       = "Outcome"
	TypePlace         = "Place"
)

// ClinicalTrial is the canonical document for one trial registration.
// Every top-level key is part of the outbreak.info mapping allow-list;
// absent information is an absent key, never an empty placeholder.
type ClinicalTrial struct {
	Type                string            `json:"@type"`
	ID                  string            `json:"_id"`
	Identifier          string            `json:"identifier"`
	IdentifierSource    string            `json:"identifierSource,omitempty"`
	URL                 string            `json:"url,omitempty"`
	Name                string            `json:"name,omitempty"`
	AlternateName       []string          `json:"alternateName,omitempty"`
	Abstract            string            `json:"abstract,omitempty"`
	Description         string            `json:"description,omitempty"`
	Funding             []Funding         `json:"funding,omitempty"`
	Author              []Person          `json:"author,omitempty"`
	StudyStatus         *StudyStatus      `json:"studyStatus,omitempty"`
	StudyEvent          []StudyEvent      `json:"studyEvent,omitempty"`
	HasResults          *bool             `json:"hasResults,omitempty"`
	DateCreated         string            `json:"dateCreated,omitempty"`
	DateModified        string            `json:"dateModified,omitempty"`
	DatePublished       string            `json:"datePublished,omitempty"`
	CuratedBy           *curation.Curator `json:"curatedBy,omitempty"`
	HealthCondition     []string          `json:"healthCondition,omitempty"`
	Keywords            []string          `json:"keywords,omitempty"`
	StudyDesign         *StudyDesign      `json:"studyDesign,omitempty"`
	Outcome             []Outcome         `json:"outcome,omitempty"`
	EligibilityCriteria []Eligibility     `json:"eligibilityCriteria,omitempty"`
	IsBasedOn           []string          `json:"isBasedOn,omitempty"`
	RelatedTo           []string          `json:"relatedTo,omitempty"`
	StudyLocation       []Place           `json:"studyLocation,omitempty"`
	ArmGroup            []ArmGroup        `json:"armGroup,omitempty"`
	Interventions       []Intervention    `json:"interventions,omitempty"`
	InterventionText    string            `json:"interventionText,omitempty"`
}

// StudyStatus holds recruitment status and aggregated enrollment.
type StudyStatus struct {
	Type            string `json:"@type"`
	Status          string `json:"status,omitempty"`
	StatusDate      string `json:"statusDate,omitempty"`
	EnrollmentCount int    `json:"enrollmentCount,omitempty"`
	EnrollmentType  string `json:"enrollmentType,omitempty"`
}

// StudyEvent is one dated occurrence in the trial lifecycle.
type StudyEvent struct {
	Type          string `json:"@type"`
	EventType     string `json:"studyEventType"`
	EventDate     string `json:"studyEventDate"`
	EventDateType string `json:"studyEventDateType"`
}

// Eligibility holds participation criteria.
type Eligibility struct {
	Type              string   `json:"@type"`
	InclusionCriteria []string `json:"inclusionCriteria,omitempty"`
	ExclusionCriteria []string `json:"exclusionCriteria,omitempty"`
	MinimumAge        string   `json:"minimumAge,omitempty"`
	MaximumAge        string   `json:"maximumAge,omitempty"`
	Gender            string   `json:"gender,omitempty"`
}

// Person is a trial contact or author.
type Person struct {
	Type        string         `json:"@type"`
	Name        string         `json:"name"`
	Affiliation []Organization `json:"affiliation,omitempty"`
}

// Organization identifies a sponsor, affiliation, or curator.
type Organization struct {
	Type       string `json:"@type"`
	Name       string `json:"name"`
	Role       string `json:"role,omitempty"`
	Identifier string `json:"identifier,omitempty"`
	URL        string `json:"url,omitempty"`
}

// Funding wraps the funder organizations for a trial.
type Funding struct {
	Funder []Organization `json:"funder"`
}

// StudyDesign is the normalized design block plus the raw design text.
type StudyDesign struct {
	Type                 string   `json:"@type"`
	StudyType            string   `json:"studyType,omitempty"`
	Phase                []string `json:"phase,omitempty"`
	PhaseNumber          []int    `json:"phaseNumber,omitempty"`
	DesignAllocation     string   `json:"designAllocation,omitempty"`
	DesignModel          []string `json:"designModel,omitempty"`
	DesignPrimaryPurpose string   `json:"designPrimaryPurpose,omitempty"`
	NumberArms           int      `json:"numberArms,omitempty"`
	StudyDesignText      string   `json:"studyDesignText,omitempty"`
}

// ArmGroup is one treatment or control branch of a trial.
type ArmGroup struct {
	Type         string         `json:"@type"`
	Name         string         `json:"name,omitempty"`
	Description  string         `json:"description,omitempty"`
	Intervention []Intervention `json:"intervention,omitempty"`
}

// Intervention is a treatment, drug, or procedure applied in an arm.
type Intervention struct {
	Type        string `json:"@type"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Identifier  string `json:"identifier,omitempty"`
}

// Outcome is one outcome measure.
type Outcome struct {
	Type           string `json:"@type"`
	OutcomeMeasure string `json:"outcomeMeasure"`
	OutcomeType    string `json:"outcomeType"`
}

// Place is a study location.
type Place struct {
	Type                 string `json:"@type"`
	StudyLocationCountry string `json:"studyLocationCountry"`
}
