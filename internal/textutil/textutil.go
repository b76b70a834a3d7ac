package textutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// Tibetan punctuation used as syllable and clause delimiters.
const (
	Tsheg = "་" // U+0F0B, syllable delimiter
	Shad  = "།" // U+0F0D, clause delimiter
)

// IsTibetan reports whether r lies in the Tibetan Unicode block.
func IsTibetan(r rune) bool {
	return r >= 0x0F00 && r <= 0x0FFF
}

// IsBaseConsonant reports whether r is a Tibetan base (non-subjoined) consonant.
func IsBaseConsonant(r rune) bool {
	return r >= 0x0F40 && r <= 0x0F6A
}

// IsVowelSign reports whether r is one of the combining vowel signs that sit
// on top of or below a consonant (aa, i, u, e, o).
func IsVowelSign(r rune) bool {
	switch r {
	case 0x0F71, 0x0F72, 0x0F74, 0x0F7A, 0x0F7C:
		return true
	}
	return false
}

// ContainsBaseConsonant checks if a string contains at least one base consonant.
func ContainsBaseConsonant(s string) bool {
	for _, r := range s {
		if IsBaseConsonant(r) {
			return true
		}
	}
	return false
}

// Len returns the number of code points in s. Tibetan stacks are several
// code points wide, so every length heuristic counts runes, not bytes.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// TrimPunct removes trailing shad, tsheg and spaces.
func TrimPunct(s string) string {
	return strings.TrimRight(s, Shad+Tsheg+" ")
}

// SplitShad splits s on shad and returns the trimmed, non-empty segments.
func SplitShad(s string) []string {
	var parts []string
	for _, p := range strings.Split(s, Shad) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// AfterShad returns the trimmed remainder after the first shad, or "" when
// s has no shad.
func AfterShad(s string) string {
	_, rest, ok := strings.Cut(s, Shad)
	if !ok {
		return ""
	}
	return strings.TrimSpace(rest)
}

// ContainsAny reports whether s contains any of the given substrings.
func ContainsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Hash computes a SHA-256 hex hash of a string for change detection.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Truncate shortens a string to maxLen runes, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + "..."
}
