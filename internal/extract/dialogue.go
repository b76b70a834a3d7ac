package extract

import (
	"strings"

	"textbook-parser/internal/lesson"
	"textbook-parser/internal/textutil"
)

// Speakers is the closed set of character names the textbooks use. A turn
// spoken by anyone else is folded into the previous speaker's text (or
// dropped before the first known speaker).
var Speakers = []string{
	"སློབ་ཕྲུག", "རྒན་ལགས", "སོབ་ཕྲུག", "རྒན་ལག", "བཀྲ་ཤིས", "སྒྲོལ་མ",
	"བསྟན་འཛིན", "ནོར་བུ", "བཟང་མོ", "བློ་བཟང", "རྒན་ལགས།", "སོབ་མ།",
	"སོབ་མ", "སྐྱོན་མ", "རྡོ་རྗེ", "ཡོན་ཏན",
	"རྒན་ཕྲུག", "རིན་ཆེན", "པ་སངས", "སྐལ་བཟང",
}

// dialogueTransitions: the qualified header opens the section; an end marker
// terminates the scan for good.
var dialogueTransitions = Transitions{
	Outside: {EventStart: Inside},
	Inside:  {EventStart: Inside, EventEnd: Done},
}

// DialogueSection scans the conversation section.
var DialogueSection = Section{
	Name:        "dialogue",
	Transitions: dialogueTransitions,
	Classify:    classifyDialogue,
}

func isDialogueHeader(line string) bool {
	return textutil.ContainsAny(line, dialogueHeaders...) && textutil.ContainsAny(line, dialogueQualifier...)
}

func classifyDialogue(s State, line string) Event {
	switch {
	case isDialogueHeader(line):
		return EventStart
	case s != Inside:
		return EventIgnore
	case textutil.ContainsAny(line, dialogueEnd...):
		return EventEnd
	case line == "":
		return EventBlank
	}
	return EventContent
}

// SpeakerOf returns the speaker named by line, if line opens a turn.
func SpeakerOf(line string) (string, bool) {
	if textutil.Len(line) >= maxSpeakerLineLen {
		return "", false
	}
	for _, name := range Speakers {
		if strings.HasPrefix(line, name) {
			return strings.TrimSpace(strings.TrimRight(line, textutil.Shad)), true
		}
	}
	return "", false
}

// Dialogue collects speaker turns. A speaker line opens a new turn; other
// lines join the current turn's text with spaces. A blank line closes the
// turn without leaving the section.
func Dialogue(lines []string) []lesson.DialogueTurn {
	var (
		turns   []lesson.DialogueTurn
		speaker string
		text    []string
	)

	emit := func() {
		if speaker != "" && len(text) > 0 {
			turns = append(turns, lesson.DialogueTurn{Speaker: speaker, Text: strings.Join(text, " ")})
		}
	}

	DialogueSection.Walk(lines, func(st Step) {
		switch st.Event {
		case EventEnd, EventEOF:
			emit()
		case EventBlank:
			emit()
			speaker, text = "", nil
		case EventContent:
			if name, ok := SpeakerOf(st.Line); ok {
				emit()
				speaker, text = name, nil
				return
			}
			if speaker != "" {
				text = append(text, st.Line)
			}
		}
	})

	return turns
}
