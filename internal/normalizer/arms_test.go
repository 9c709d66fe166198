package normalizer

import (
	"testing"

	"trialsync/internal/models"
)

func TestExtractArms_ChiCTR(t *testing.T) {
	row := models.Row{
		models.ColSourceRegister: "ChiCTR",
		models.ColIntervention:   "Treatment group:Hydroxychloroquine;Control group:Placebo",
	}

	arms := extractArms(row)
	if len(arms) != 2 {
		t.Fatalf("extractArms returned %d arms, want 2", len(arms))
	}

	if arms[0].Name != "Treatment group" {
		t.Errorf("arms[0].Name = %q, want Treatment group", arms[0].Name)
	}

	if len(arms[0].Intervention) != 1 || arms[0].Intervention[0].Name != "Hydroxychloroquine" {
		t.Errorf("arms[0].Intervention = %v, want Hydroxychloroquine", arms[0].Intervention)
	}

	if arms[1].Name != "Control group" || arms[1].Intervention[0].Name != "Placebo" {
		t.Errorf("arms[1] = %v, want Control group / Placebo", arms[1])
	}

	interventions := extractInterventions(row)
	if len(interventions) != 2 || interventions[0].Name != "Hydroxychloroquine" || interventions[1].Name != "Placebo" {
		t.Errorf("extractInterventions = %v, want two named interventions", interventions)
	}
}

func TestExtractArms_PACTR(t *testing.T) {
	row := models.Row{
		models.ColSourceRegister: "PACTR",
		models.ColIntervention:   "Hydroxychloroquine;Placebo; ;",
	}

	arms := extractArms(row)
	if len(arms) != 2 {
		t.Fatalf("extractArms returned %d arms, want 2", len(arms))
	}

	for i, want := range []string{"Hydroxychloroquine", "Placebo"} {
		if arms[i].Name != want {
			t.Errorf("arms[%d].Name = %q, want %q", i, arms[i].Name, want)
		}

		if len(arms[i].Intervention) != 1 || arms[i].Intervention[0].Name != want {
			t.Errorf("arms[%d].Intervention = %v, want %q", i, arms[i].Intervention, want)
		}
	}
}

func TestExtractArms_DRKS(t *testing.T) {
	row := models.Row{
		models.ColSourceRegister: "German Clinical Trials Register",
		models.ColIntervention:   "Intervention 1: Convalescent plasma Intervention 2: Standard of care",
	}

	arms := extractArms(row)
	if len(arms) != 2 {
		t.Fatalf("extractArms returned %d arms, want 2", len(arms))
	}

	if arms[0].Name != "Convalescent plasma" {
		t.Errorf("arms[0].Name = %q, want Convalescent plasma", arms[0].Name)
	}

	if arms[1].Name != "Standard of care" {
		t.Errorf("arms[1].Name = %q, want Standard of care", arms[1].Name)
	}
}

func TestExtractArms_IRCT(t *testing.T) {
	row := models.Row{
		models.ColSourceRegister: "IRCT",
		models.ColIntervention:   "Intervention 1: Favipiravir: 1600mg twice on day one Intervention 2: Usual care",
	}

	arms := extractArms(row)
	if len(arms) != 2 {
		t.Fatalf("extractArms returned %d arms, want 2", len(arms))
	}

	if arms[0].Name != "Favipiravir" {
		t.Errorf("arms[0].Name = %q, want Favipiravir", arms[0].Name)
	}

	if arms[0].Description != "1600mg twice on day one" {
		t.Errorf("arms[0].Description = %q, want dosing text", arms[0].Description)
	}

	// No colon in the second entry: description only.
	if arms[1].Name != "" {
		t.Errorf("arms[1].Name = %q, want absent", arms[1].Name)
	}

	if arms[1].Description != "Usual care" {
		t.Errorf("arms[1].Description = %q, want Usual care", arms[1].Description)
	}
}

func TestExtractInterventions_EUCTR(t *testing.T) {
	row := models.Row{
		models.ColSourceRegister: "EU Clinical Trials Register",
		models.ColIntervention: "Product Name: Remdesivir<br>CAS Number: 1809249-37-3<br>" +
			"Pharmaceutical Form: Solution for infusion<br><br>" +
			"Trade Name: Kaletra<br>Product Name: Lopinavir/Ritonavir",
	}

	interventions := extractInterventions(row)
	if len(interventions) != 2 {
		t.Fatalf("extractInterventions returned %d entries, want 2", len(interventions))
	}

	if interventions[0].Name != "Remdesivir" {
		t.Errorf("interventions[0].Name = %q, want Remdesivir", interventions[0].Name)
	}

	if interventions[0].Identifier != "1809249-37-3" {
		t.Errorf("interventions[0].Identifier = %q, want CAS number", interventions[0].Identifier)
	}

	if interventions[0].Description == "" {
		t.Error("interventions[0].Description should carry the block text")
	}

	// Trade name takes precedence over product name.
	if interventions[1].Name != "Kaletra" {
		t.Errorf("interventions[1].Name = %q, want Kaletra", interventions[1].Name)
	}
}

func TestExtractArms_UnknownRegistry(t *testing.T) {
	row := models.Row{
		models.ColSourceRegister: "NTR",
		models.ColIntervention:   "Some free text",
	}

	if arms := extractArms(row); arms != nil {
		t.Errorf("extractArms = %v, want nil for unhandled registry", arms)
	}

	if interventions := extractInterventions(row); interventions != nil {
		t.Errorf("extractInterventions = %v, want nil for unhandled registry", interventions)
	}
}
