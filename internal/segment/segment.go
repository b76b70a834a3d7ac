// Package segment splits corrected textbook text into per-lesson line groups.
package segment

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Key identifies a lesson within one textbook volume.
type Key struct {
	Lesson int
	Sub    int
}

// String renders the key as "<lesson>.<sub>".
func (k Key) String() string {
	return fmt.Sprintf("%d.%d", k.Lesson, k.Sub)
}

// Less orders keys by lesson, then sub-lesson.
func (k Key) Less(o Key) bool {
	if k.Lesson != o.Lesson {
		return k.Lesson < o.Lesson
	}
	return k.Sub < o.Sub
}

// markerPattern matches lesson boundary lines such as
// "གནས་ཚད་གསུམ་པ། ༠༡།༠༡". Spacing around the separators varies between
// volumes (༠༡།༠༡, ༠༤ ། ༠༡, ...).
var markerPattern = regexp.MustCompile(`གནས་ཚད.*?།[\s\p{Z}]*([0-9༠-༩]+)[\s\p{Z}]*།[\s\p{Z}]*([0-9༠-༩]+)`)

// ParseMarker extracts the lesson key from a boundary line. It returns false
// for ordinary lines and for markers whose numerals do not decode.
func ParseMarker(line string) (Key, bool) {
	m := markerPattern.FindStringSubmatch(line)
	if m == nil {
		return Key{}, false
	}
	lesson, err := decodeNumber(m[1])
	if err != nil {
		return Key{}, false
	}
	sub, err := decodeNumber(m[2])
	if err != nil {
		return Key{}, false
	}
	return Key{Lesson: lesson, Sub: sub}, true
}

// decodeNumber parses a run of ASCII or Tibetan digits.
func decodeNumber(s string) (int, error) {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r >= '༠' && r <= '༩':
			sb.WriteRune('0' + (r - '༠'))
		default:
			return 0, fmt.Errorf("not a digit: %q", r)
		}
	}
	n, err := strconv.Atoi(sb.String())
	if err != nil {
		return 0, fmt.Errorf("decode number %q: %w", s, err)
	}
	return n, nil
}

// Split groups the lines of text by lesson. Lines before the first marker are
// dropped. A marker repeating the current key is absorbed; a key that shows up
// again after another lesson appends to its earlier group.
func Split(text string) map[Key][]string {
	lessons := make(map[Key][]string)

	var (
		current Key
		active  bool
		buf     []string
	)

	flush := func() {
		if active && len(buf) > 0 {
			lessons[current] = append(lessons[current], buf...)
		}
		buf = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if key, ok := ParseMarker(line); ok {
			if !active || key != current {
				flush()
				current = key
				active = true
			}
			continue
		}
		if active {
			buf = append(buf, line)
		}
	}
	flush()

	return lessons
}

// Keys returns the keys of lessons in ascending (lesson, sub) order.
func Keys(lessons map[Key][]string) []Key {
	keys := make([]Key, 0, len(lessons))
	for k := range lessons {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
