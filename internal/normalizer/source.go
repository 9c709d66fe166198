package normalizer

import "strings"

// Contributing primary registries, keyed by the uppercased short code
// found in the "Source Register" column.
var registryNames = map[string]string{
	"ANZCTR": "Australian New Zealand Clinical Trials Registry",
	"REBEC":  "Brazilian Clinical Trials Registry",
	"CHICTR": "Chinese Clinical Trial Register",
	"CRIS":   "Clinical Research Information Service, Republic of Korea",
	"CTRI":   "Clinical Trials Registry - India",
	"NCT":    "ClinicalTrials.gov",
	"RPCEC":  "Cuban Public Registry of Clinical Trials",
	"EU-CTR": "EU Clinical Trials Register",
	"DRKS":   "German Clinical Trials Register",
	"IRCT":   "Iranian Registry of Clinical Trials",
	"JPRN":   "Japan Primary Registries Network",
	"PACTR":  "Pan African Clinical Trial Registry",
	"REPEC":  "Peruvian Clinical Trials Registry",
	"SLCTR":  "Sri Lanka Clinical Trials Registry",
	"TCTR":   "Thai Clinical Trials Register",
	"LBCTR":  "Lebanon Clinical Trials Registry",
	"NTR":    "Netherlands Trial Register",
}

// RegistryName expands a short registry code to the registry's full
// name. The code is matched case-insensitively; unknown codes pass
// through unchanged.
func RegistryName(code string) string {
	if name, ok := registryNames[strings.ToUpper(code)]; ok {
		return name
	}

	return code
}
