// Package particle fills in answers for case-particle drills.
//
// A drill is recognized by its word bank: when every word of the bank is a
// known spelling of one case particle, the blanks sharing that bank test
// that particle. If the bank has exactly one word per blank it is the answer
// list in order; otherwise each answer is derived from the suffix letter of
// the syllable preceding the blank.
package particle

import (
	"strings"

	"textbook-parser/internal/blank"
	"textbook-parser/internal/lesson"
	"textbook-parser/internal/textutil"
)

// group collects blanks sharing one word bank, in first-seen order.
type group struct {
	words  []string
	blanks []*lesson.FillBlank
}

// groupByBank groups blanks by word bank value. Blanks without a bank are
// skipped. Group order follows the first blank of each group.
func groupByBank(blanks []*lesson.FillBlank) []*group {
	var groups []*group
	index := make(map[string]*group)

	for _, fb := range blanks {
		if fb == nil || fb.WordBank == nil {
			continue
		}
		words := fb.WordBank.Words()
		key := strings.Join(words, "\x00")
		g, ok := index[key]
		if !ok {
			g = &group{words: words}
			index[key] = g
			groups = append(groups, g)
		}
		g.blanks = append(g.blanks, fb)
	}
	return groups
}

// Generate sets Answer and ParticleType on every eligible blank and returns
// the number of blanks answered. It is deterministic for a given input order.
func Generate(blanks []*lesson.FillBlank) int {
	answered := 0

	for _, g := range groupByBank(blanks) {
		ptype, ok := DetectType(g.words)
		if !ok {
			continue
		}

		ordered := len(g.words) == len(g.blanks)

		for pos, fb := range g.blanks {
			before, ok := blank.Before(fb.Sentence)
			if !ok || !textutil.ContainsBaseConsonant(before) {
				continue
			}

			var answer string
			if ordered {
				answer = textutil.TrimPunct(strings.TrimSpace(g.words[pos]))
			} else {
				answer, _ = Lookup(ptype, SuffixLetter(before))
			}

			if answer == "" {
				continue
			}
			fb.Answer = answer
			fb.ParticleType = ptype
			answered++
		}
	}

	return answered
}
