// Package models holds the values passed between pipeline stages.
package models

// Segment is a time-aligned slice of the transcript. Start and End are seconds.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// TranscriptionResult is the output of the transcription stage.
type TranscriptionResult struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
}

// Duration returns the end of the last segment in seconds, or 0 when the
// backend produced no segmentation.
func (r TranscriptionResult) Duration() float64 {
	if len(r.Segments) == 0 {
		return 0
	}
	return r.Segments[len(r.Segments)-1].End
}

// MaxActionLength caps ActionItem.Action, in characters.
const MaxActionLength = 1000

// ActionItem is a task mentioned in the meeting.
// Field order matches the exported JSON layout.
type ActionItem struct {
	ID       int     `json:"id"`
	Action   string  `json:"action"`
	Owner    *string `json:"owner"`
	Deadline *string `json:"deadline"`
	Context  string  `json:"context"`
}

// StringPtr returns nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
