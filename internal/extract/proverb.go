package extract

import (
	"strings"

	"textbook-parser/internal/textutil"
)

// Proverb returns the first proverb in the lesson: up to proverbLines
// non-empty lines from the proverbWindow lines following a proverb header,
// joined with a space. Headers whose window holds nothing usable are
// skipped. The empty string means the lesson has no proverb.
func Proverb(lines []string) string {
	for i, raw := range lines {
		if !textutil.ContainsAny(raw, proverbHeaders...) {
			continue
		}

		var found []string
		end := min(i+1+proverbWindow, len(lines))
		for _, next := range lines[i+1 : end] {
			next = strings.TrimSpace(next)
			if next != "" && !isBoilerplate(next) && !isInstruction(next) {
				found = append(found, next)
			}
			if len(found) >= proverbLines {
				break
			}
		}
		if len(found) > 0 {
			return strings.Join(found, " ")
		}
	}
	return ""
}
