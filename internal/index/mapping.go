package index

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyMapping indicates a mapping document with no allowed fields.
var ErrEmptyMapping = errors.New("mapping contains none of the allowed fields")

// allowedFields is the fixed allow-list of top-level document keys; the
// canonical document's keys must stay a subset of it for downstream
// compatibility.
var allowedFields = []string{
	"@type", "abstract", "alternateName", "armGroup", "author",
	"curatedBy", "date", "dateCreated", "dateModified", "datePublished",
	"description", "eligibilityCriteria", "hasResults", "healthCondition",
	"identifier", "identifierSource", "interventions", "interventionText",
	"isBasedOn", "keywords", "name", "outcome", "relatedTo", "funding",
	"studyDesign", "studyEvent", "studyLocation", "studyStatus", "url",
	"topicCategory",
}

// AllowedFields returns the allow-list of top-level document keys.
func AllowedFields() []string {
	out := make([]string, len(allowedFields))
	copy(out, allowedFields)

	return out
}

// FilterMapping restricts a raw field-mapping document to the
// allow-listed top-level fields.
func FilterMapping(raw []byte) (map[string]json.RawMessage, error) {
	var full map[string]json.RawMessage
	if err := json.Unmarshal(raw, &full); err != nil {
		return nil, fmt.Errorf("failed to parse mapping document: %w", err)
	}

	filtered := make(map[string]json.RawMessage, len(allowedFields))

	for _, field := range allowedFields {
		if props, ok := full[field]; ok {
			filtered[field] = props
		}
	}

	if len(filtered) == 0 {
		return nil, ErrEmptyMapping
	}

	return filtered, nil
}
