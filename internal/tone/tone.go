// Package tone restyles summary text into the selected minutes tone.
package tone

import "strings"

// Tone selects how the minutes text is restructured.
type Tone string

const (
	Concise   Tone = "concise"
	Detailed  Tone = "detailed"
	Action    Tone = "action"
	Executive Tone = "executive"
)

const (
	detailedNote = "\n\n(Details: See full transcript above.)"
	actionHeader = "**Action-focused minutes**\n\n"
)

// ParseTone maps a tone name or UI label ("Executive (short summary)") to a
// Tone. Anything unrecognised is Concise.
func ParseTone(s string) Tone {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "detail"):
		return Detailed
	case strings.HasPrefix(s, "action"):
		return Action
	case strings.HasPrefix(s, "exec"):
		return Executive
	default:
		return Concise
	}
}

// Apply restyles summary for t and prepends prefix followed by a blank line
// when prefix is non-empty.
func Apply(summary string, t Tone, prefix string) string {
	var out string
	switch t {
	case Detailed:
		out = summary + detailedNote
	case Action:
		out = actionHeader + summary
	case Executive:
		out = executive(summary)
	default:
		out = summary
	}

	if prefix != "" {
		out = prefix + "\n\n" + out
	}
	return out
}

// executive keeps the first two ". "-separated sentences and ends with one period.
func executive(summary string) string {
	sentences := strings.Split(summary, ". ")
	if len(sentences) > 2 {
		sentences = sentences[:2]
	}
	out := strings.TrimSpace(strings.Join(sentences, ". "))
	if !strings.HasSuffix(out, ".") {
		out += "."
	}
	return out
}
