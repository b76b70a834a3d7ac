// Package blank detects the blank markers printed in fill-in-the-blank
// exercises: runs of underscores, or a run of four tsheg marks where the
// extraction tool flattened a dotted line.
package blank

import "strings"

// markers are tried longest first. The first marker present in a sentence
// decides where the sentence is split, even if a shorter marker occurs
// earlier in it.
var markers = []string{
	"______",
	"_____",
	"____",
	"___",
	tshegRun,
}

// tshegRun is the native placeholder run accepted by the loose check.
const tshegRun = "་་་་"

// Loose reports whether a line looks like an exercise sentence: any
// underscore at all, or the tsheg placeholder run.
func Loose(s string) bool {
	return strings.Contains(s, "_") || strings.Contains(s, tshegRun)
}

// find returns the first recognized marker (in precedence order) present in s.
func find(s string) (string, bool) {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return m, true
		}
	}
	return "", false
}

// Before returns the text preceding the recognized marker. It returns false
// when s carries no recognized marker.
func Before(s string) (string, bool) {
	m, ok := find(s)
	if !ok {
		return "", false
	}
	before, _, _ := strings.Cut(s, m)
	return before, true
}
