package normalizer

import (
	"regexp"
	"strings"

	"trialsync/internal/models"
)

// The Countries column uses commas both as list delimiters and inside
// certain country names. Known ambiguous names are rewritten to an
// unambiguous form before splitting. Each entry is its own rule; the
// replacements themselves contain no delimiter, so applying the table
// twice is a no-op.
var countrySubstitutions = []struct {
	from string
	to   string
}{
	{"Virgin Islands, U.S.", "United States of America"},
	{"Virgin Islands, British", "United Kingdom"},
	{"Korea, North", "North Korea"},
	{"Korea, South", "South Korea"},
	{"Korea, Republic of", "South Korea"},
	{"Iran, Islamic Republic of", "Iran"},
	{"Congo, Democratic Republic of the", "Democratic Republic of the Congo"},
	{"Congo, Republic of the", "Republic of the Congo"},
	{"Congo, The Democratic Republic of the", "Democratic Republic of the Congo"},
}

var countryDelimiter = regexp.MustCompile(`[,;]`)

// protectCountryNames rewrites country names that contain the list
// delimiter so the subsequent split stays per-country.
func protectCountryNames(s string) string {
	for _, sub := range countrySubstitutions {
		s = strings.ReplaceAll(s, sub.from, sub.to)
	}

	return s
}

// splitCountries splits a delimited country string into Place entries
// with standardized country names. An unresolvable name passes through
// unchanged with a diagnostic.
func (n *Normalizer) splitCountries(countries string) []models.Place {
	var places []models.Place

	for _, part := range countryDelimiter.Split(protectCountryNames(countries), -1) {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}

		places = append(places, models.Place{
			Type:                 models.TypePlace,
			StudyLocationCountry: n.standardizeCountry(name),
		})
	}

	return places
}

// standardizeCountry resolves a single country name against the
// reference table. Lookup failure is non-fatal.
func (n *Normalizer) standardizeCountry(name string) string {
	if n.countries != nil {
		if rec, ok := n.countries.Lookup(name); ok {
			return rec.Name
		}
	}

	n.logger.Warn("no match found for country", "country", name)
	n.stats.UnmatchedCountries++

	return name
}
