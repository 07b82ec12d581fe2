package extractor

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
	"github.com/nguyentantai21042004/minutes-flow/internal/textutil"
)

// Pattern tables for the deterministic strategy.
var (
	actionKeywords = []string{
		"action", "todo", "to do", "will", "should", "please",
		"assign", "deadline", "by", "due", "follow up", "follow-up",
	}

	imperativeStarts = []string{
		"Add", "Assign", "Follow", "Follow up", "Follow-up", "Call", "Email",
		"Schedule", "Create", "Prepare", "Send", "Complete", "Finish",
		"Investigate", "Confirm", "Book", "Plan", "Share", "Provide", "Discuss",
		"Setup", "Set up", "Make", "Organize", "Arrange",
	}

	monthAbbreviations = []string{
		"jan", "feb", "mar", "apr", "may", "jun",
		"jul", "aug", "sep", "oct", "nov", "dec",
	}
)

var (
	reKeyword    = regexp.MustCompile(`(?i)(` + alternation(actionKeywords) + `)`)
	reImperative = regexp.MustCompile(`(?i)^(please\s|(?:` + alternation(imperativeStarts) + `)\b)`)

	// "by <token>": a capitalized phrase, an ordinal date, a year or any word.
	reByClause = regexp.MustCompile(`\bby ([A-Z][\w\s\-']+|\d{1,2}(?:st|nd|rd|th)? [A-Za-z]+|\d{4}|\w+)\b`)
	reMonth    = regexp.MustCompile(`(?i)(` + alternation(monthAbbreviations) + `)`)
	reYear     = regexp.MustCompile(`\d{4}`)
	reWillName = regexp.MustCompile(`([A-Z][a-z]+(?: [A-Z][a-z]+)*) will\b`)
)

// alternation joins literals longest first so multi-word forms win.
func alternation(words []string) string {
	sorted := append([]string(nil), words...)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	for i, w := range sorted {
		sorted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(sorted, "|")
}

type deterministic struct{}

// NewDeterministic creates the keyword/regex strategy. It needs no model.
func NewDeterministic() Strategy {
	return deterministic{}
}

func (deterministic) Name() Source { return SourceDeterministic }

func (deterministic) Extract(_ context.Context, transcript string) ([]any, error) {
	items := ExtractDeterministic(transcript)
	raw := make([]any, len(items))
	for i, it := range items {
		raw[i] = it
	}
	return raw, nil
}

// ExtractDeterministic returns one item per qualifying sentence, in order.
func ExtractDeterministic(transcript string) []models.ActionItem {
	text := strings.ReplaceAll(transcript, "\n", " ")

	items := []models.ActionItem{}
	for _, sentence := range textutil.SplitSentences(text) {
		if _, ok := classify(sentence); !ok {
			continue
		}
		owner, deadline := extractFields(sentence)
		items = append(items, models.ActionItem{
			ID:       len(items) + 1,
			Action:   textutil.Truncate(sentence, models.MaxActionLength),
			Owner:    models.StringPtr(owner),
			Deadline: models.StringPtr(deadline),
			Context:  sentence,
		})
	}
	return items
}

// classify reports whether sentence looks like an action item and the
// keyword or leading verb that qualified it, lower-cased. Keywords match
// anywhere in the sentence, including inside longer words.
func classify(sentence string) (string, bool) {
	if m := reKeyword.FindStringSubmatch(sentence); m != nil {
		return strings.ToLower(m[1]), true
	}
	if m := reImperative.FindStringSubmatch(sentence); m != nil {
		return strings.ToLower(strings.TrimSpace(m[1])), true
	}
	return "", false
}

// extractFields pulls owner and deadline from a sentence. A "<Name> will"
// owner overrides one found in a "by" clause.
func extractFields(sentence string) (owner, deadline string) {
	if m := reByClause.FindStringSubmatch(sentence); m != nil {
		candidate := strings.TrimSpace(m[1])
		if looksLikeDate(candidate) {
			deadline = candidate
		} else {
			owner = candidate
		}
	}
	if m := reWillName.FindStringSubmatch(sentence); m != nil {
		owner = m[1]
	}
	return owner, deadline
}

func looksLikeDate(s string) bool {
	return reMonth.MatchString(s) || reYear.MatchString(s)
}
