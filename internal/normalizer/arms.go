package normalizer

import (
	"regexp"
	"strings"

	"trialsync/internal/models"
)

// Only a handful of registries publish their intervention text in a
// parseable form; everything else yields no arms or interventions.
// Dispatch keys are the uppercased "Source Register" value — some
// feeds carry the short code, others the full registry name.
const (
	registerChiCTR = "CHICTR"
	registerPACTR  = "PACTR"
	registerDRKS   = "DRKS"
	registerIRCT   = "IRCT"
	registerEUCTR  = "EU-CTR"

	registerDRKSFull  = "GERMAN CLINICAL TRIALS REGISTER"
	registerEUCTRFull = "EU CLINICAL TRIALS REGISTER"
)

// DRKS and IRCT number their interventions inline ("Intervention 1: ...");
// the marker is rewritten to a delimiter that cannot occur in the text.
var (
	interventionMarker    = regexp.MustCompile(`Intervention \d+: `)
	interventionDelimiter = "****"
)

func splitNumberedInterventions(text string) []string {
	delimited := interventionMarker.ReplaceAllString(text, interventionDelimiter)
	return strings.Split(delimited, interventionDelimiter)
}

// extractArms builds the arm-group list for the registries whose
// intervention text encodes arms.
func extractArms(row models.Row) []models.ArmGroup {
	text, ok := row.Get(models.ColIntervention)
	if !ok {
		return nil
	}

	register, _ := row.Get(models.ColSourceRegister)

	switch strings.ToUpper(register) {
	case registerChiCTR:
		return chictrArms(text)
	case registerPACTR:
		return pactrArms(text)
	case registerDRKS, registerDRKSFull:
		return drksArms(text)
	case registerIRCT:
		return irctArms(text)
	}

	return nil
}

// extractInterventions builds the flat intervention list for the
// registries that publish one.
func extractInterventions(row models.Row) []models.Intervention {
	text, ok := row.Get(models.ColIntervention)
	if !ok {
		return nil
	}

	register, _ := row.Get(models.ColSourceRegister)

	switch strings.ToUpper(register) {
	case registerChiCTR:
		return chictrInterventions(text)
	case registerPACTR:
		return pactrInterventions(text)
	case registerEUCTR, registerEUCTRFull:
		return euctrInterventions(text)
	}

	return nil
}

// ChiCTR: semicolon-delimited "arm:intervention" pairs.
func chictrArms(text string) []models.ArmGroup {
	var arms []models.ArmGroup

	for _, group := range strings.Split(text, ";") {
		parts := strings.SplitN(group, ":", 2)
		if len(parts) < 2 {
			continue
		}

		arms = append(arms, models.ArmGroup{
			Type: models.TypeArmGroup,
			Name: strings.TrimSpace(parts[0]),
			Intervention: []models.Intervention{{
				Type: models.TypeIntervention,
				Name: strings.TrimSpace(parts[1]),
			}},
		})
	}

	return arms
}

func chictrInterventions(text string) []models.Intervention {
	var interventions []models.Intervention

	for _, group := range strings.Split(text, ";") {
		parts := strings.SplitN(group, ":", 2)
		if len(parts) < 2 {
			continue
		}

		interventions = append(interventions, models.Intervention{
			Type: models.TypeIntervention,
			Name: strings.TrimSpace(parts[1]),
		})
	}

	return interventions
}

// PACTR: semicolon-delimited flat names; each name doubles as its own
// single-intervention arm.
func pactrArms(text string) []models.ArmGroup {
	var arms []models.ArmGroup

	for _, name := range pactrNames(text) {
		arms = append(arms, models.ArmGroup{
			Type: models.TypeArmGroup,
			Name: name,
			Intervention: []models.Intervention{{
				Type: models.TypeIntervention,
				Name: name,
			}},
		})
	}

	return arms
}

func pactrInterventions(text string) []models.Intervention {
	var interventions []models.Intervention

	for _, name := range pactrNames(text) {
		interventions = append(interventions, models.Intervention{
			Type: models.TypeIntervention,
			Name: name,
		})
	}

	return interventions
}

func pactrNames(text string) []string {
	var names []string

	for _, name := range strings.Split(text, ";") {
		name = strings.TrimSpace(name)
		if len(name) > 1 {
			names = append(names, name)
		}
	}

	return names
}

// DRKS: numbered intervention markers, names only.
func drksArms(text string) []models.ArmGroup {
	var arms []models.ArmGroup

	for _, name := range splitNumberedInterventions(text) {
		name = strings.TrimSpace(name)
		if len(name) <= 1 {
			continue
		}

		arms = append(arms, models.ArmGroup{
			Type: models.TypeArmGroup,
			Name: name,
			Intervention: []models.Intervention{{
				Type: models.TypeIntervention,
				Name: name,
			}},
		})
	}

	return arms
}

// IRCT: numbered intervention markers with "name: description" bodies;
// a body without a colon becomes description-only.
func irctArms(text string) []models.ArmGroup {
	var arms []models.ArmGroup

	for _, entry := range splitNumberedInterventions(text) {
		entry = strings.TrimSpace(entry)
		if len(entry) <= 1 {
			continue
		}

		arm := models.ArmGroup{Type: models.TypeArmGroup}
		intervention := models.Intervention{Type: models.TypeIntervention}

		parts := strings.SplitN(entry, ":", 2)
		if len(parts) == 2 {
			arm.Name = strings.TrimSpace(parts[0])
			arm.Description = strings.TrimSpace(parts[1])
			intervention.Name = arm.Name
			intervention.Description = arm.Description
		} else {
			arm.Description = entry
			intervention.Description = entry
		}

		arm.Intervention = []models.Intervention{intervention}
		arms = append(arms, arm)
	}

	return arms
}

// EU-CTR: double-line-break delimited blocks of "Key: value" lines.
// Recognized keys populate name/identifier; the whole block becomes
// the description.
func euctrInterventions(text string) []models.Intervention {
	var interventions []models.Intervention

	for _, block := range strings.Split(text, "<br><br>") {
		lines := strings.Split(block, "<br>")
		if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
			continue
		}

		parsed := map[string]string{}

		for _, line := range lines {
			kv := strings.SplitN(line, ": ", 2)
			if len(kv) == 2 {
				parsed[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
			}
		}

		intervention := models.Intervention{
			Type:        models.TypeIntervention,
			Description: strings.Join(lines, "\n"),
		}

		if v, ok := parsed["Product Name"]; ok {
			intervention.Name = v
		}

		if v, ok := parsed["Trade Name"]; ok {
			intervention.Name = v
		}

		if v, ok := parsed["CAS Number"]; ok {
			intervention.Identifier = v
		}

		interventions = append(interventions, intervention)
	}

	return interventions
}
