// Package ocr rewrites systematic PDF text extraction errors.
//
// The extraction tool regularly drops subjoined consonants (ལ, ར, ཡ and
// friends), turning སློབ into སོབ and so on. Each rule is a compound-word
// replacement whose wrong form is unambiguously an extraction error.
package ocr

import "strings"

// Rule is a literal wrong-form to corrected-form replacement.
type Rule struct {
	Wrong string
	Right string
	Note  string
}

// rules are applied in order. No rule's output contains another rule's
// wrong form, which keeps Correct idempotent.
var rules = []Rule{
	// སོབ → སློབ (subjoined ལ lost)
	{"སོབ་ཕྲུག", "སློབ་ཕྲུག", "student"},
	{"སོབ་དཔོན", "སློབ་དཔོན", "teacher"},
	{"སོབ་ཁིད", "སློབ་ཁྲིད", "teaching"},
	{"སོབ་ཚན", "སློབ་ཚན", "lesson"},
	{"སོབ་སོང", "སློབ་སྦྱོང", "study"},
	{"སོབ་གྲྭ", "སློབ་གྲྭ", "school"},
	{"སོབ་མ", "སློབ་མ", "student (f)"},
	// གོག → གློག (subjoined ལ lost)
	{"གོག་ཀླད", "གློག་ཀླད", "computer"},
	{"གོག་བརྙན", "གློག་བརྙན", "movie"},
	// བསབ → བསླབ (subjoined ལ lost)
	{"བསབས", "བསླབས", "taught"},
	{"བསབ་", "བསླབ་", "teach"},
	// སོང → སྦྱོང (subjoined བ+ཡ lost)
	{"སོང་བརྡར", "སྦྱོང་བརྡར", "practice"},
	// བསར → བསྐྱར (subjoined ཀ+ཡ lost)
	{"བསར་ཟོས", "བསྐྱར་ཟོས", "revision"},
	// གོགས → གྲོགས (subjoined ར lost)
	{"གོགས་པོ", "གྲོགས་པོ", "male friend"},
	{"གོགས་མོ", "གྲོགས་མོ", "female friend"},
	// སིད → སྐྱིད (subjoined ཀ+ཡ lost)
	{"སིད་པོ", "སྐྱིད་པོ", "happy"},
	// ཁོམ → ཁྲོམ (subjoined ར lost)
	{"ཁོམ་ལ", "ཁྲོམ་ལ", "to market"},
	{"ཁོམ།", "ཁྲོམ།", "market"},
	// སར → སྐར (subjoined ཀ lost)
	{"སར་མ", "སྐར་མ", "minute"},
}

// Rules returns a copy of the ordered correction list.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Correct applies every rule to text, in order.
func Correct(text string) string {
	for _, r := range rules {
		text = strings.ReplaceAll(text, r.Wrong, r.Right)
	}
	return text
}
