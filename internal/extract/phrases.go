package extract

import (
	"strings"

	"textbook-parser/internal/textutil"
)

// phraseTransitions: the header opens the section; a blank or excluded line
// closes it.
var phraseTransitions = Transitions{
	Outside: {EventStart: Inside},
	Inside:  {EventStart: Inside, EventEnd: Outside},
}

// PhraseSection scans the everyday-speech section.
var PhraseSection = Section{
	Name:        "phrases",
	Transitions: phraseTransitions,
	Classify:    classifyPhrase,
}

func classifyPhrase(s State, line string) Event {
	switch {
	case textutil.ContainsAny(line, phraseHeaders...):
		return EventStart
	case s != Inside:
		return EventIgnore
	case line == "", textutil.ContainsAny(line, phraseEnd...):
		return EventEnd
	}
	return EventContent
}

// Phrases harvests shad-separated phrases from the header's own remainder and
// from the lines that follow it.
func Phrases(lines []string) []string {
	var phrases []string

	PhraseSection.Walk(lines, func(st Step) {
		switch st.Event {
		case EventStart:
			if strings.Contains(st.Line, phraseInline) {
				phrases = append(phrases, harvestShadSegments(textutil.AfterShad(st.Line))...)
			}
		case EventContent:
			phrases = append(phrases, harvestShadSegments(st.Line)...)
		}
	})

	return phrases
}
