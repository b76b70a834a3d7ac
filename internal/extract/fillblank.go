package extract

import (
	"strings"

	"textbook-parser/internal/blank"
	"textbook-parser/internal/lesson"
	"textbook-parser/internal/textutil"
)

// fillTransitions: a header (re)opens the section from anywhere and resets
// the word bank; an end marker closes it.
var fillTransitions = Transitions{
	Outside: {EventStart: Inside},
	Inside:  {EventStart: Inside, EventEnd: Outside},
}

// FillBlankSection scans the fill-in-the-blank exercises.
var FillBlankSection = Section{
	Name:        "fill-blank",
	Transitions: fillTransitions,
	Classify:    classifyFill,
}

func classifyFill(s State, line string) Event {
	switch {
	case textutil.ContainsAny(line, fillHeaders...):
		return EventStart
	case s != Inside:
		return EventIgnore
	case textutil.ContainsAny(line, fillEnd...):
		return EventEnd
	case line == "":
		return EventBlank
	case isInstruction(line),
		strings.HasPrefix(line, examplePrefix),
		hasPrefixAny(line, answerPrefix...):
		return EventSkip
	}
	return EventContent
}

// LineKind is the role of a content line inside the fill-blank section.
type LineKind uint8

const (
	LineOther LineKind = iota
	// LineParticle is a lone short native word, buffered until a bank forms.
	LineParticle
	// LineBank is a banner of several short shad-separated words.
	LineBank
	// LineExercise carries a blank marker.
	LineExercise
)

// ClassifyFillLine decides the role of a content line. Particle candidates
// are checked first, then banners, then exercises.
func ClassifyFillLine(line string) LineKind {
	if _, ok := particleCandidate(line); ok {
		return LineParticle
	}
	if _, ok := bannerWords(line); ok {
		return LineBank
	}
	if blank.Loose(line) {
		return LineExercise
	}
	return LineOther
}

// particleCandidate returns the bare word when line is a single short,
// all-native word without a blank marker or exercise numbering.
func particleCandidate(line string) (string, bool) {
	word := textutil.TrimPunct(line)
	if word == "" || textutil.Len(word) > maxParticleLen || strings.Contains(line, "_") {
		return "", false
	}
	for _, r := range word {
		if !textutil.IsTibetan(r) && r != ' ' {
			return "", false
		}
	}
	if !textutil.ContainsBaseConsonant(word) || textutil.ContainsAny(line, particleDigits...) {
		return "", false
	}
	return word, true
}

// bannerWords splits a word-bank banner into its words.
func bannerWords(line string) ([]string, bool) {
	if strings.Contains(line, "_") {
		return nil, false
	}
	parts := textutil.SplitShad(line)
	if len(parts) < minBankWords {
		return nil, false
	}
	for _, p := range parts {
		if textutil.Len(p) > maxBankWordLen {
			return nil, false
		}
	}
	return parts, true
}

// FillBlanks extracts exercise sentences. Every exercise references the word
// bank active when it was read; a new banner only affects later exercises.
// Standalone particle lines are buffered and become the bank when the next
// exercise arrives, unless a banner replaces them first.
func FillBlanks(lines []string) []*lesson.FillBlank {
	var (
		blanks  []*lesson.FillBlank
		bank    *lesson.WordBank
		pending []string
	)

	FillBlankSection.Walk(lines, func(st Step) {
		switch st.Event {
		case EventStart, EventEnd:
			bank = nil
			pending = nil
		case EventContent:
			switch ClassifyFillLine(st.Line) {
			case LineParticle:
				word, _ := particleCandidate(st.Line)
				pending = append(pending, word)
			case LineBank:
				words, _ := bannerWords(st.Line)
				bank = lesson.NewWordBank(words)
				pending = nil
			case LineExercise:
				if len(pending) > 0 {
					bank = lesson.NewWordBank(pending)
					pending = nil
				}
				blanks = append(blanks, &lesson.FillBlank{Sentence: st.Line, WordBank: bank})
			}
		}
	})

	return blanks
}
