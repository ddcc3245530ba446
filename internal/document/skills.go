package document

import "strings"

// SplitSkills derives the skill list from the raw comma-separated skills
// string: split on ",", trim whitespace, drop empty segments. The derivation
// is pure and idempotent; order follows the input left to right and
// duplicates are kept.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
