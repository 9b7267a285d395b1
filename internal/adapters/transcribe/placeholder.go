// Package transcribe holds the audio transcription adapters
package transcribe

import (
	"context"

	perr "sayitanyway/internal/platform/errors"
	pstrings "sayitanyway/internal/platform/strings"
)

// PlaceholderTranscript is stored until a real transcription backend exists
const PlaceholderTranscript = "(Transcription pending \u2013 coming soon)"

// Placeholder accepts every recording and returns PlaceholderTranscript
type Placeholder struct{}

// Transcribe implements the journal Transcriber port
func (Placeholder) Transcribe(ctx context.Context, audioURI string, seconds int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if pstrings.IsBlank(audioURI) {
		return "", perr.WithField(perr.InvalidArgf("audio uri is required"), "audioUri")
	}
	if seconds <= 0 {
		return "", perr.WithField(perr.InvalidArgf("duration must be positive, got %d", seconds), "durationSeconds")
	}
	return PlaceholderTranscript, nil
}
