package export

import "github.com/nguyentantai21042004/minutes-flow/internal/models"

// Exporter writes run artifacts into an output directory. Every method
// returns the path it wrote.
type Exporter interface {
	WriteTranscript(text string) (string, error)
	WriteMinutes(markdown string) (string, error)
	WriteActions(items []models.ActionItem) (string, error)
	WriteSRT(segments []models.Segment) (string, error)
	WriteMinutesDocx(title, markdown string, items []models.ActionItem) (string, error)
}
