package normalizer

import (
	"regexp"
	"strings"

	"trialsync/internal/models"
)

// Registries separate multiple names in one contact field with
// semicolons, commas, or question marks, reflecting inconsistent
// source punctuation.
var authorDelimiter = regexp.MustCompile(`[;?,]`)

// extractAuthors builds the author list from the contact name and
// affiliation columns. With both name parts present the row names one
// person; with a single part present that part is treated as a
// delimited list of names sharing the one affiliation.
func extractAuthors(row models.Row) []models.Person {
	affiliation := authorAffiliation(row)

	first, hasFirst := row.Get(models.ColContactFirstname)
	last, hasLast := row.Get(models.ColContactLastname)

	switch {
	case hasFirst && hasLast:
		return []models.Person{{
			Type:        models.TypePerson,
			Name:        first + " " + last,
			Affiliation: affiliation,
		}}
	case hasFirst:
		return splitAuthors(first, affiliation)
	case hasLast:
		return splitAuthors(last, affiliation)
	}

	return nil
}

// splitAuthors turns a delimited name list into Person entries, each
// sharing the same affiliation.
func splitAuthors(names string, affiliation []models.Organization) []models.Person {
	var authors []models.Person

	for _, name := range authorDelimiter.Split(names, -1) {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		authors = append(authors, models.Person{
			Type:        models.TypePerson,
			Name:        name,
			Affiliation: affiliation,
		})
	}

	return authors
}

func authorAffiliation(row models.Row) []models.Organization {
	v, ok := row.Get(models.ColContactAffil)
	if !ok {
		return nil
	}

	return []models.Organization{{Type: models.TypeOrganization, Name: v}}
}
