package extract

import (
	"strings"

	"textbook-parser/internal/textutil"
)

// Page furniture left behind by the PDF extraction (running footer and the
// page-number label).
var boilerplate = []string{"Second Beta", "ཤོག་གྲངས"}

// Instruction phrases ("objective", "usage") printed above exercises.
var instructions = []string{"དམིགས", "བེད་སོ"}

// Vocabulary section ("new words introduction"). Both spellings occur: the
// first one lost its subjoined letters in extraction.
var (
	vocabHeader        = "ཚིག་གསར"
	vocabHeaderSuffix  = []string{"ངོ་སོད", "ངོ་སྤྲོད"}
	vocabEnd           = append([]string{"སར་ཡང", "སྐར་ཡང", "ཚིག་གྲུབ་གོ་རིམ", "རང་མོས", "བསྐྱར་སྦྱོང"}, boilerplate...)
	vocabInstructions  = []string{"དམིགས་ཡུལ", "བེད་སོ", "སྦྱོར་ཀོག", "ཐེངས་ལྔ"}
	maxHeadwordLen     = 30
	exampleSplitMinLen = 15
	maxCandidateLen    = 20
)

// Grammar section ("grammar") and its example sentence header.
var (
	grammarHeaders      = []string{"བརྡ་སོད།", "བརྡ་སྤྲོད།"}
	grammarExample      = "ཚིག་གྲུབ།"
	grammarNoun         = "མིང་ཚིག"
	grammarVerb         = "བ་ཚིག"
	grammarLookahead    = 4
	grammarTemplateJoin = "+"
)

// Fill-in-the-blank section ("fill the gap"). Lines carrying the exercise
// numbering digits in particleDigits are never particles.
var (
	fillHeaders    = []string{"བར་སྟོང", "ཁ་བསང", "ཁ་སྐོང", "ཁ་བསྐང"}
	fillEnd        = append([]string{"སྦྱོང་བརྡར", "གེང་མོལ", "གླེང་མོལ", "འཁྲབ་སྟོན"}, boilerplate...)
	examplePrefix  = "དཔེར་ན"
	answerPrefix   = []string{"ལན།", "ལན "}
	particleDigits = []string{"༡", "༢"}
	maxParticleLen = 6
	minBankWords   = 3
	maxBankWordLen = 20
)

// Common phrases section ("everyday speech").
var (
	phraseHeaders = []string{"རྒྱུན་སོད་སྐད་ཆ", "རྒྱུན་སྤྱོད་སྐད་ཆ"}
	phraseInline  = "སྐད་ཆ།"
	phraseEnd     = []string{"སར་ཡང", "༣", "༤", "༥", "དམིགས", "བེད་སོ", "Second", "ཤོག"}
	minPhraseLen  = 2
)

// Dialogue section ("conversation"), recognized only next to exercise number
// ༡༤ or the "speaking skill" heading.
var (
	dialogueHeaders   = []string{"གེང་མོལ།", "གླེང་མོལ།"}
	dialogueQualifier = []string{"༡༤", "བཤད་རྩལ"}
	dialogueEnd       = append([]string{"འཁྲབ་སྟོན", "གཏམ་དཔེ"}, boilerplate...)
	maxSpeakerLineLen = 30
)

// Proverb section ("proverb" / "saying").
var (
	proverbHeaders = []string{"གཏམ་དཔེ", "གོ་ས"}
	proverbWindow  = 5
	proverbLines   = 2
)

// Topic heading ("topic").
var (
	topicHeader     = "བརོད་གཞི"
	topicHeaderLine = "བརོད་གཞི།"
	topicLookahead  = 4
)

func isBoilerplate(line string) bool {
	return textutil.ContainsAny(line, boilerplate...)
}

func isInstruction(line string) bool {
	return textutil.ContainsAny(line, instructions...)
}

func hasPrefixAny(line string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// harvestShadSegments splits a line on shad and keeps segments longer than
// minPhraseLen runes, each re-terminated with a shad.
func harvestShadSegments(line string) []string {
	var out []string
	for _, p := range strings.Split(line, textutil.Shad) {
		p = strings.TrimSpace(p)
		if p != "" && textutil.Len(p) > minPhraseLen {
			out = append(out, p+textutil.Shad)
		}
	}
	return out
}
