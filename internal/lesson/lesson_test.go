package lesson

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []*Record {
	bank := NewWordBank([]string{"གི", "གྱི", "ཡི"})
	return []*Record{
		{
			Level:   "A1",
			Lesson:  1,
			Sub:     1,
			TopicBo: "ངོ་སྤྲོད།",
			TopicEn: "Introductions",
			Vocab: []VocabEntry{
				{Bo: "བུ།", DefBo: "ཕྲུ་གུ་ཕོ།", En: "boy"},
				{Bo: "བུ་མོ།", DefBo: "ཕྲུ་གུ་མོ།"},
			},
			Grammar:  &Grammar{Pattern: "མིང་ཚིག + ཡིན།", ExampleBo: "ང་སློབ་ཕྲུག་ཡིན།"},
			Phrases:  []string{"བཀྲ་ཤིས་བདེ་ལེགས།"},
			Dialogue: []DialogueTurn{{Speaker: "བཀྲ་ཤིས", Text: "ཁྱེད་རང་སྐུ་གཟུགས་བདེ་པོ་ཡིན་པས།"}},
			Proverb:  "ཤེས་རབ་ནོར་གྱི་ཕྱུག",
			FillBlanks: []*FillBlank{
				{Sentence: "ང___ དེབ།", WordBank: bank, Answer: "གི", ParticleType: Genitive},
				{Sentence: "ཁོང___ དེབ།", WordBank: bank, Answer: "གྱི", ParticleType: Genitive},
				{Sentence: "_____ ཡིན།"},
			},
		},
		{
			Level:      "A1",
			Lesson:     1,
			Sub:        2,
			Vocab:      []VocabEntry{},
			Phrases:    []string{},
			Dialogue:   []DialogueTurn{},
			FillBlanks: []*FillBlank{},
		},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	records := sampleRecords()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, records))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, decoded)
}

func TestEncode_PreservesNativeScript(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleRecords()))

	out := buf.String()
	assert.Contains(t, out, `"bo": "བུ།"`)
	assert.Contains(t, out, `"word_bank": [`)
	assert.Contains(t, out, `"word_bank": null`)
	assert.Contains(t, out, `"grammar": null`)
	assert.Contains(t, out, `"particle_type": "genitive"`)
	assert.NotContains(t, out, `\u0f`)
}

func TestEncode_NilCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestWriteReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lesson_data.json")
	records := sampleRecords()

	require.NoError(t, WriteFile(path, records))
	loaded, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestWordBank(t *testing.T) {
	src := []string{"a", "b"}
	bank := NewWordBank(src)
	src[0] = "changed"

	assert.Equal(t, []string{"a", "b"}, bank.Words())

	words := bank.Words()
	words[1] = "changed"
	assert.Equal(t, []string{"a", "b"}, bank.Words())

	var nilBank *WordBank
	assert.Nil(t, nilBank.Words())
}

func TestRecord_ID(t *testing.T) {
	r := &Record{Level: "B1", Lesson: 7, Sub: 3}
	assert.Equal(t, "B1/7.3", r.ID())
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords())
	assert.Equal(t, 2, s.Lessons)
	assert.Equal(t, map[string]int{"A1": 2}, s.PerLevel)
	assert.Equal(t, 2, s.Vocab)
	assert.Equal(t, 1, s.VocabGlossed)
	assert.Equal(t, 1, s.TopicsTranslated)
	assert.Equal(t, 1, s.Phrases)
	assert.Equal(t, 1, s.DialogueTurns)
	assert.Equal(t, 1, s.Proverbs)
	assert.Equal(t, 3, s.FillBlanks)
	assert.Equal(t, 2, s.AnsweredBlanks)
}
