package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/blueprint-app/blueprint/pkg/service/transcribe"
)

// Transcribe holds CLI flags for the voice transcription provider
type Transcribe struct {
	provider string
	apiKey   string
	language string
}

// Flags returns CLI flags for transcription configuration
func (t *Transcribe) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "voice-provider",
			Usage:       "Transcription provider (openai or groq)",
			Value:       "openai",
			Sources:     cli.EnvVars("BLUEPRINT_VOICE_PROVIDER"),
			Destination: &t.provider,
		},
		&cli.StringFlag{
			Name:        "voice-api-key",
			Usage:       "API key for the transcription provider",
			Sources:     cli.EnvVars("BLUEPRINT_VOICE_API_KEY"),
			Destination: &t.apiKey,
		},
		&cli.StringFlag{
			Name:        "voice-language",
			Usage:       "Expected language of voice recordings (ISO 639-1)",
			Value:       "ru",
			Sources:     cli.EnvVars("BLUEPRINT_VOICE_LANGUAGE"),
			Destination: &t.language,
		},
	}
}

// LogAttrs returns log attributes for the transcription configuration
func (t *Transcribe) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("provider", t.provider),
		slog.Bool("api_key_set", t.apiKey != ""),
		slog.String("language", t.language),
	}
}

// Configure creates a transcription service from the configured flags.
// Returns nil when no API key is set (voice features disabled).
func (t *Transcribe) Configure() (transcribe.Service, error) {
	if t.apiKey == "" {
		return nil, nil
	}

	svc, err := transcribe.New(transcribe.Provider(t.provider), t.apiKey,
		transcribe.WithLanguage(t.language),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create transcription service")
	}
	return svc, nil
}
