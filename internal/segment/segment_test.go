package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarker(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Key
		ok   bool
	}{
		{"tibetan digits tight", "གནས་ཚད་གསུམ་པ། ༠༡།༠༡", Key{1, 1}, true},
		{"tibetan digits spaced", "གནས་ཚད་གཉིས་པ། ༠༤ ། ༠༢", Key{4, 2}, true},
		{"ascii digits", "གནས་ཚད་དང་པོ། 12 ། 3", Key{12, 3}, true},
		{"mixed digits", "གནས་ཚད་དང་པོ།༡༠།2", Key{10, 2}, true},
		{"no-break space", "གནས་ཚད་དང་པོ།\u00a0༠༣\u00a0།\u00a0༠༡", Key{3, 1}, true},
		{"no intro phrase", "༠༡།༠༡", Key{}, false},
		{"single numeral", "གནས་ཚད་དང་པོ། ༠༡", Key{}, false},
		{"ordinary line", "བཀྲ་ཤིས་བདེ་ལེགས།", Key{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMarker(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "4.2", Key{Lesson: 4, Sub: 2}.String())
}

func TestSplit(t *testing.T) {
	text := strings.Join([]string{
		"cover page",
		"གནས་ཚད་དང་པོ། ༠༡།༠༡",
		"line a",
		"གནས་ཚད་དང་པོ། ༠༡ ། ༠༡",
		"line b",
		"གནས་ཚད་དང་པོ། ༠༡།༠༢",
		"line c",
		"",
		"གནས་ཚད་དང་པོ། ༠༡།༠༡",
		"line d",
	}, "\n")

	lessons := Split(text)
	require.Len(t, lessons, 2)
	assert.Equal(t, []string{"line a", "line b", "line d"}, lessons[Key{1, 1}])
	assert.Equal(t, []string{"line c", ""}, lessons[Key{1, 2}])
}

func TestSplit_NoMarkers(t *testing.T) {
	assert.Empty(t, Split("just\nsome\nlines"))
}

func TestSplit_MalformedMarkerIsContent(t *testing.T) {
	text := "གནས་ཚད་དང་པོ། ༠༡།༠༡\nགནས་ཚད་དང་པོ། 99999999999999999999 ། 1\nnext"
	lessons := Split(text)
	require.Len(t, lessons, 1)
	assert.Equal(t, []string{"གནས་ཚད་དང་པོ། 99999999999999999999 ། 1", "next"}, lessons[Key{1, 1}])
}

func TestKeys_NumericOrder(t *testing.T) {
	lessons := map[Key][]string{
		{10, 1}: nil,
		{2, 3}:  nil,
		{2, 1}:  nil,
		{1, 12}: nil,
	}
	assert.Equal(t, []Key{{1, 12}, {2, 1}, {2, 3}, {10, 1}}, Keys(lessons))
}
