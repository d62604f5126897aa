// Package metrics computes character and word counts for document text.
package metrics

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/wordgoal/internal/model"
)

// PunctSet is the punctuation removed when punctuation is excluded.
const PunctSet = ".,/#!$%^&*;:{}=-_`~()"

// Compute returns the character and word counts of text under cfg.
func Compute(text string, cfg model.Config) model.Metrics {
	return model.Metrics{
		CharCount: CountChars(text, cfg.IncludeSpaces, cfg.IncludePunctuation),
		WordCount: CountWords(text),
	}
}

// CountChars counts the runes of text, skipping whitespace unless
// includeSpaces and punctuation unless includePunct.
func CountChars(text string, includeSpaces, includePunct bool) int {
	if includeSpaces && includePunct {
		return utf8.RuneCountInString(text)
	}
	n := 0
	for _, r := range text {
		if !includeSpaces && IsSpace(r) {
			continue
		}
		if !includePunct && IsPunct(r) {
			continue
		}
		n++
	}
	return n
}

// CountWords counts whitespace-separated words. Blank text has no words.
func CountWords(text string) int {
	n := 0
	inWord := false
	for _, r := range text {
		if IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			n++
			inWord = true
		}
	}
	return n
}

// IsSpace reports whether r separates words.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// IsPunct reports whether r belongs to PunctSet.
func IsPunct(r rune) bool {
	return r < utf8.RuneSelf && strings.IndexByte(PunctSet, byte(r)) >= 0
}
