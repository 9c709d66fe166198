package normalizer

import "strings"

// splitConditions splits a condition string into individual condition
// names. Registries delimit conditions with semicolons and HTML line
// breaks, often both in the same value.
func splitConditions(conditions string) []string {
	var out []string

	for _, block := range strings.Split(conditions, "<br>") {
		for _, item := range strings.Split(block, ";") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}

			out = append(out, item)
		}
	}

	return out
}
