// Package extract holds the section scanners that pull vocabulary, grammar,
// exercises, phrases, dialogue, proverbs and the topic out of one lesson's
// lines.
//
// Every scanner walks the lines once. Section-shaped scanners (vocabulary,
// fill-blank, phrases, dialogue) are a Section: a line classifier producing
// an Event and a Transitions table deciding the next State. The table is the
// whole "what starts and ends a section" policy for that scanner.
package extract

import "strings"

// State is a scanner's position relative to its section.
type State uint8

const (
	Outside State = iota
	Inside
	// Done is terminal: the walk stops.
	Done
)

func (s State) String() string {
	switch s {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case Done:
		return "done"
	}
	return "unknown"
}

// Event is the classification of one line.
type Event uint8

const (
	// EventIgnore marks a line with no bearing on the section.
	EventIgnore Event = iota
	EventStart
	EventEnd
	EventBlank
	// EventSkip marks instruction and boilerplate lines inside a section.
	EventSkip
	EventContent
	// EventEOF is delivered once after the last line.
	EventEOF
)

func (e Event) String() string {
	switch e {
	case EventIgnore:
		return "ignore"
	case EventStart:
		return "start"
	case EventEnd:
		return "end"
	case EventBlank:
		return "blank"
	case EventSkip:
		return "skip"
	case EventContent:
		return "content"
	case EventEOF:
		return "eof"
	}
	return "unknown"
}

// Transitions maps a state and event to the next state. Pairs missing from
// the table leave the state unchanged.
type Transitions map[State]map[Event]State

// Next returns the state following s on event e.
func (t Transitions) Next(s State, e Event) State {
	if next, ok := t[s][e]; ok {
		return next
	}
	return s
}

// Step is one classified line handed to a scanner's handler.
type Step struct {
	From  State
	To    State
	Event Event
	// Line is the trimmed line; empty for EventEOF.
	Line string
}

// Section is a single-pass line scanner.
type Section struct {
	Name        string
	Transitions Transitions
	Classify    func(s State, line string) Event
}

// Walk classifies each trimmed line, advances the state and passes the step
// to fn. Reaching Done stops the walk; otherwise a final EventEOF step is
// delivered.
func (sec Section) Walk(lines []string, fn func(Step)) {
	state := Outside
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		ev := sec.Classify(state, line)
		next := sec.Transitions.Next(state, ev)
		fn(Step{From: state, To: next, Event: ev, Line: line})
		state = next
		if state == Done {
			return
		}
	}
	fn(Step{From: state, To: state, Event: EventEOF})
}
