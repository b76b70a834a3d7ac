package particle

import (
	"strings"

	"textbook-parser/internal/lesson"
	"textbook-parser/internal/textutil"
)

// NoSuffix is the lookup key used when no base consonant closes the syllable
// before the blank.
const NoSuffix = ""

// Rule tables map the suffix letter of the syllable before a blank to the
// grammatically correct particle form.
var (
	genitiveRules = map[string]string{
		"ག": "གི", "ད": "གི", "བ": "གི", "ས": "གི",
		"ང": "གི",
		"ན": "གྱི", "མ": "གྱི", "ར": "གྱི", "ལ": "གྱི",
		NoSuffix: "ཡི",
	}

	agentiveRules = map[string]string{
		"ག": "གིས", "ད": "གིས", "བ": "གིས", "ས": "གིས",
		"ང": "གིས",
		"ན": "གྱིས", "མ": "གྱིས", "ར": "གྱིས", "ལ": "གྱིས",
		NoSuffix: "ས",
	}

	locativeRules = map[string]string{
		"ག": "ཏུ", "བ": "ཏུ",
		"ད": "དུ", "ས": "སུ",
		"ང": "དུ", "ན": "དུ", "མ": "དུ", "ར": "དུ", "ལ": "དུ",
		NoSuffix: "རུ",
	}

	dativeRules = map[string]string{
		"ག": "ལ", "བ": "ལ", "ད": "ལ", "ས": "ལ",
		"ང": "ལ", "ན": "ལ", "མ": "ལ", "ར": "ལ", "ལ": "ལ",
		NoSuffix: "ལ",
	}

	ruleTables = map[lesson.ParticleType]map[string]string{
		lesson.Genitive: genitiveRules,
		lesson.Agentive: agentiveRules,
		lesson.Locative: locativeRules,
		lesson.Dative:   dativeRules,
	}
)

// knownSet is a closed spelling set used to recognize particle drills.
type knownSet struct {
	ptype     lesson.ParticleType
	particles map[string]struct{}
}

// knownSets are checked in order. Dative has no set: a bank of ལ alone
// cannot be told apart from ordinary vocabulary.
var knownSets = []knownSet{
	{lesson.Genitive, setOf("གི", "གྱི", "ཀྱི", "འི", "ཡི", "ཀི")},
	{lesson.Agentive, setOf("གིས", "གྱིས", "ཀྱིས", "ས", "ཡིས", "ཡྱིས", "པྨོས", "སུས")},
	{lesson.Locative, setOf("དུ", "ཏུ", "སུ", "རུ", "ར", "ན")},
}

func setOf(items ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}

// Lookup returns the particle form for a suffix letter. Pass NoSuffix for a
// vowel-final syllable.
func Lookup(ptype lesson.ParticleType, suffix string) (string, bool) {
	table, ok := ruleTables[ptype]
	if !ok {
		return "", false
	}
	form, ok := table[suffix]
	return form, ok
}

// SuffixLetter finds the letter governing sandhi in the text before a blank.
// Trailing punctuation is dropped, then the text is walked backwards over
// vowel signs until a base consonant is found. Anything else ends the walk
// and yields NoSuffix.
func SuffixLetter(textBefore string) string {
	text := strings.TrimRight(textBefore, " \t"+textutil.Shad+textutil.Tsheg)
	runes := []rune(text)
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		if textutil.IsVowelSign(r) {
			continue
		}
		if textutil.IsBaseConsonant(r) {
			return string(r)
		}
		break
	}
	return NoSuffix
}

// DetectType reports which closed particle set every word of the bank
// belongs to. Banks shorter than two words are never particle drills.
func DetectType(words []string) (lesson.ParticleType, bool) {
	if len(words) < 2 {
		return "", false
	}

	var clean []string
	for _, w := range words {
		if w = textutil.TrimPunct(strings.TrimSpace(w)); w != "" {
			clean = append(clean, w)
		}
	}
	if len(clean) == 0 {
		return "", false
	}

	for _, set := range knownSets {
		if allIn(clean, set.particles) {
			return set.ptype, true
		}
	}
	return "", false
}

func allIn(words []string, set map[string]struct{}) bool {
	for _, w := range words {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}
