package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/blueprint-app/blueprint/pkg/domain/model"
)

// ErrNoTranscriber is returned when no transcription endpoint is configured
var ErrNoTranscriber = goerr.New("no transcriber configured")

// HandleVoice transcribes recorded audio and feeds the text through the
// same conversation pipeline as typed input. A transcription failure is
// surfaced to the caller; an empty transcript is a no-op turn.
func (u *UseCases) HandleVoice(ctx context.Context, audio []byte) (*model.ChatMessage, *model.ActionReport, error) {
	if u.transcriber == nil {
		return nil, nil, ErrNoTranscriber
	}

	text, err := u.transcriber.Transcribe(ctx, audio)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "transcription failed")
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil, nil
	}
	return u.SendMessage(ctx, text)
}
