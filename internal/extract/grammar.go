package extract

import (
	"strings"

	"textbook-parser/internal/lesson"
	"textbook-parser/internal/textutil"
)

// Grammar finds the lesson's grammar pattern. The template is taken from the
// header line itself when it carries a "+"-joined template, else from the
// first of the next grammarLookahead lines that has one or that names both
// noun and verb categories. A later header overrides an earlier one. The
// example-sentence header supplies ExampleBo. It returns nil when no pattern
// is found.
func Grammar(lines []string) *lesson.Grammar {
	var g lesson.Grammar

	for i, raw := range lines {
		line := strings.TrimSpace(raw)

		if textutil.ContainsAny(line, grammarHeaders...) {
			if rest := textutil.AfterShad(line); strings.Contains(rest, grammarTemplateJoin) {
				g.Pattern = rest
			} else if p, ok := templateAfter(lines, i); ok {
				g.Pattern = p
			}
		}

		if strings.Contains(line, grammarExample) {
			if rest := textutil.AfterShad(line); rest != "" {
				g.ExampleBo = rest
			}
		}
	}

	if g.Pattern == "" {
		return nil
	}
	return &g
}

func templateAfter(lines []string, i int) (string, bool) {
	end := min(i+1+grammarLookahead, len(lines))
	for _, raw := range lines[i+1 : end] {
		next := strings.TrimSpace(raw)
		if strings.Contains(next, grammarTemplateJoin) ||
			(strings.Contains(next, grammarNoun) && strings.Contains(next, grammarVerb)) {
			return next, true
		}
	}
	return "", false
}
