package extract

import (
	"strings"

	"textbook-parser/internal/lesson"
	"textbook-parser/internal/textutil"
)

// vocabTransitions: the header opens the section from anywhere; an end
// marker closes it. Blank lines and instructions stay inside.
var vocabTransitions = Transitions{
	Outside: {EventStart: Inside},
	Inside:  {EventStart: Inside, EventEnd: Outside},
}

// VocabularySection scans the new-words section.
var VocabularySection = Section{
	Name:        "vocabulary",
	Transitions: vocabTransitions,
	Classify:    classifyVocab,
}

func isVocabHeader(line string) bool {
	return strings.Contains(line, vocabHeader) && textutil.ContainsAny(line, vocabHeaderSuffix...)
}

func classifyVocab(s State, line string) Event {
	switch {
	case isVocabHeader(line):
		return EventStart
	case s != Inside:
		return EventIgnore
	case textutil.ContainsAny(line, vocabEnd...):
		return EventEnd
	case line == "":
		return EventBlank
	case textutil.ContainsAny(line, vocabInstructions...):
		return EventSkip
	}
	return EventContent
}

// vocabPair accumulates one headword and its (possibly multi-line) definition.
type vocabPair struct {
	word string
	def  string
}

func (p *vocabPair) complete() bool {
	return p.word != "" && p.def != ""
}

// Vocabulary pairs each short headword line with the following line(s) as its
// native definition. A blank line or an end marker closes the pair; a
// headword still waiting for its definition survives a blank line.
func Vocabulary(lines []string) []lesson.VocabEntry {
	var (
		entries []lesson.VocabEntry
		cur     vocabPair
	)

	flush := func() {
		if cur.complete() {
			entries = append(entries, lesson.VocabEntry{Bo: cur.word, DefBo: cur.def})
			cur = vocabPair{}
		}
	}

	VocabularySection.Walk(lines, func(st Step) {
		switch st.Event {
		case EventEnd:
			flush()
			cur = vocabPair{}
		case EventBlank, EventEOF:
			flush()
		case EventContent:
			if cur.word == "" {
				if word := headword(st.Line); textutil.Len(word) < maxHeadwordLen {
					cur.word = word
				}
				return
			}
			if cur.def == "" {
				cur.def = st.Line
			} else {
				cur.def += " " + st.Line
			}
		}
	})

	return entries
}

// headword cuts "word། example sentence using word" down to "word།". Lines
// that are not of that shape come back unchanged.
func headword(line string) string {
	if !strings.Contains(line, textutil.Shad) || textutil.Len(line) <= exampleSplitMinLen {
		return line
	}
	first, rest, _ := strings.Cut(line, textutil.Shad)
	first = strings.TrimSpace(first)
	rest = strings.TrimSpace(rest)
	candidate := first + textutil.Shad
	root := strings.TrimRight(first, textutil.Tsheg)

	if rest != "" && root != "" && strings.Contains(rest, root) && textutil.Len(candidate) < maxCandidateLen {
		return candidate
	}
	return line
}
