package transcriber

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the audio file does not exist.
var ErrNotFound = errors.New("audio file not found")

// IsNotFound reports whether any error in err's chain is ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// TranscriptionError is returned when the speech backend is missing or fails.
// Hint tells the user how to fix it.
type TranscriptionError struct {
	Backend string
	Model   string
	Hint    string
	Err     error
}

func (e *TranscriptionError) Error() string {
	msg := fmt.Sprintf("transcription failed using %s (model %s)", e.Backend, e.Model)
	if e.Hint != "" {
		msg += ". " + e.Hint
	}
	if e.Err != nil {
		msg += fmt.Sprintf(". Inner error: %v", e.Err)
	}
	return msg
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

// IsTranscriptionError reports whether err wraps a *TranscriptionError.
func IsTranscriptionError(err error) bool {
	var te *TranscriptionError
	return errors.As(err, &te)
}
