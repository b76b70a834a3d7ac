package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textbook-parser/internal/lesson"
)

var sampleBook = strings.Join([]string{
	"Second Beta",
	"གནས་ཚད་དང་པོ། ༠༡།༠༡",
	"བརོད་གཞི།",
	"ཁྱིམ་ཚང་།",
	"ཚིག་གསར་ངོ་སྤྲོད།",
	"བུ།",
	"ཕྲུ་གུ་ཕོ།",
	"",
	"ཚིག་གྲུབ་གོ་རིམ།",
	"བརྡ་སྤྲོད། མིང་ཚིག + གི + མིང་ཚིག",
	"རྒྱུན་སྤྱོད་སྐད་ཆ། བཀྲ་ཤིས་བདེ་ལེགས།",
	"",
	"བར་སྟོང་ཁ་སྐོང་།",
	"གི། གྱི། ཡི།",
	"ཁོང___ ཨ་མ་རེད།",
	"སློབ་དཔོན___ དེབ་རེད།",
	"ཁོ་___ ཁང་པ།",
	"སོང་བརྡར།",
	"༡༤ གླེང་མོལ།",
	"བཀྲ་ཤིས།",
	"ཁྱེད་རང་ག་ནས་ཡིན།",
	"གཏམ་དཔེ།",
	"སྐྱེ་བོ་ཡོན་ཏན་ཅན།",
	"གནས་ཚད་གཉིས་པ། ༡༠།༠༡",
	"ཡ་ཡ།",
	"གནས་ཚད་གཉིས་པ། ༢ ། ༠༡",
	"ཡ་ཡ།",
	"གནས་ཚད་དང་པོ། 1 ། 2",
	"སོབ་ཕྲུག་དགའ་པོ།",
}, "\n")

func TestParseBook(t *testing.T) {
	records := ParseBook(sampleBook, "A1")
	require.Len(t, records, 4)

	var ids []string
	for _, r := range records {
		ids = append(ids, r.ID())
	}
	assert.Equal(t, []string{"A1/1.1", "A1/1.2", "A1/2.1", "A1/10.1"}, ids)

	first := records[0]
	assert.Equal(t, "ཁྱིམ་ཚང་།", first.TopicBo)
	assert.Empty(t, first.TopicEn)
	assert.Equal(t, []lesson.VocabEntry{{Bo: "བུ།", DefBo: "ཕྲུ་གུ་ཕོ།"}}, first.Vocab)
	require.NotNil(t, first.Grammar)
	assert.Equal(t, "མིང་ཚིག + གི + མིང་ཚིག", first.Grammar.Pattern)
	assert.Equal(t, []string{"བཀྲ་ཤིས་བདེ་ལེགས།"}, first.Phrases)
	assert.Equal(t, []lesson.DialogueTurn{{Speaker: "བཀྲ་ཤིས", Text: "ཁྱེད་རང་ག་ནས་ཡིན།"}}, first.Dialogue)
	assert.Equal(t, "སྐྱེ་བོ་ཡོན་ཏན་ཅན།", first.Proverb)

	require.Len(t, first.FillBlanks, 3)
	for i, want := range []string{"གི", "གྱི", "ཡི"} {
		assert.Equal(t, want, first.FillBlanks[i].Answer)
		assert.Equal(t, lesson.Genitive, first.FillBlanks[i].ParticleType)
	}
}

func TestParseBook_EmptyLesson(t *testing.T) {
	records := ParseBook(sampleBook, "A1")
	require.Len(t, records, 4)

	empty := records[1]
	assert.Nil(t, empty.Grammar)
	assert.Empty(t, empty.Proverb)
	assert.NotNil(t, empty.Vocab)
	assert.NotNil(t, empty.Phrases)
	assert.NotNil(t, empty.Dialogue)
	assert.NotNil(t, empty.FillBlanks)

	var buf strings.Builder
	require.NoError(t, lesson.Encode(&buf, []*lesson.Record{empty}))
	out := buf.String()
	assert.Contains(t, out, `"vocab": []`)
	assert.Contains(t, out, `"fillBlanks": []`)
	assert.Contains(t, out, `"grammar": null`)
	assert.NotContains(t, out, `"proverb"`)
}

func TestParseBook_NoMarkers(t *testing.T) {
	assert.Empty(t, ParseBook("བུ།\nཕྲུ་གུ་ཕོ།", "A2"))
}

func TestTextbookParser_Parse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "A1-Book-1.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.ReplaceAll(sampleBook, "\n", "\r\n")), 0o644))

	p := NewTextbookParser()
	assert.True(t, p.CanParse(".txt"))
	assert.False(t, p.CanParse(".pdf"))

	res, err := p.Parse(path, "A1")
	require.NoError(t, err)
	assert.Equal(t, path, res.FilePath)
	assert.Equal(t, "A1", res.Level)
	require.Len(t, res.Records, 4)
	assert.Equal(t, "ཁྱིམ་ཚང་།", res.Records[0].TopicBo)
}

func TestTextbookParser_NoLessons(t *testing.T) {
	path := filepath.Join(t.TempDir(), "A0-IntroWeek.txt")
	require.NoError(t, os.WriteFile(path, []byte("བུ།\n"), 0o644))

	_, err := NewTextbookParser().Parse(path, "A0")
	assert.ErrorIs(t, err, ErrNoLessons)
}

func TestTextbookParser_MissingFile(t *testing.T) {
	_, err := NewTextbookParser().Parse(filepath.Join(t.TempDir(), "missing.txt"), "A1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoLessons))
}
