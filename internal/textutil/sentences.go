// Package textutil has the naive text segmentation shared by the summarizer
// and the action extractor.
package textutil

import (
	"strings"
	"unicode"
)

// SplitSentences splits after '.', '!' or '?' when followed by whitespace.
// There is no abbreviation handling. Returned sentences keep their
// terminating punctuation and are trimmed; empty pieces are dropped.
func SplitSentences(text string) []string {
	var (
		sentences []string
		start     int
	)
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.', '!', '?':
			if i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				sentences = appendTrimmed(sentences, string(runes[start:i+1]))
				start = i + 1
			}
		}
	}
	return appendTrimmed(sentences, string(runes[start:]))
}

func appendTrimmed(dst []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		dst = append(dst, s)
	}
	return dst
}

// FirstSentences returns the first n sentences of text joined by a space.
func FirstSentences(text string, n int) string {
	sentences := SplitSentences(text)
	if len(sentences) > n {
		sentences = sentences[:n]
	}
	return strings.Join(sentences, " ")
}

// Truncate cuts s to at most n characters.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
