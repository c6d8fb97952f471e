package usecase

import (
	"github.com/blueprint-app/blueprint/pkg/domain/interfaces"
	"github.com/blueprint-app/blueprint/pkg/service/assistant"
	"github.com/blueprint-app/blueprint/pkg/service/transcribe"
)

// UseCases wires the conversation pipeline: orchestrating chat turns,
// dispatching assistant-emitted actions against the repository, and
// feeding transcribed voice input through the same path as typed text.
type UseCases struct {
	repo        interfaces.Repository
	assistant   assistant.Service
	transcriber transcribe.Service

	historyWindow int
}

// Option configures UseCases
type Option func(*UseCases)

// WithAssistant sets the assistant endpoint. Without it, SendMessage
// returns ErrNoAssistant.
func WithAssistant(svc assistant.Service) Option {
	return func(u *UseCases) {
		u.assistant = svc
	}
}

// WithTranscriber sets the voice transcription endpoint
func WithTranscriber(svc transcribe.Service) Option {
	return func(u *UseCases) {
		u.transcriber = svc
	}
}

// New creates UseCases on top of the given repository
func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:          repo,
		historyWindow: 10,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Repository exposes the underlying repository for read endpoints
func (u *UseCases) Repository() interfaces.Repository {
	return u.repo
}
