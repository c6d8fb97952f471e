package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/blueprint-app/blueprint/pkg/utils/safe"
)

// Provider selects the Whisper-compatible transcription backend
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGroq   Provider = "groq"
)

// Validate checks if the Provider is a known value
func (p Provider) Validate() error {
	switch p {
	case ProviderOpenAI, ProviderGroq:
		return nil
	}
	return goerr.New("invalid transcription provider", goerr.V("provider", p))
}

// Service converts captured audio into text
type Service interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

type client struct {
	httpClient *http.Client
	endpoint   string
	model      string
	apiKey     string
	language   string
}

// Option customizes the transcription client
type Option func(*client)

// WithHTTPClient replaces the underlying HTTP client (used in tests)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithLanguage sets the spoken language hint sent to the API
func WithLanguage(lang string) Option {
	return func(c *client) {
		c.language = lang
	}
}

// WithEndpoint overrides the API endpoint (used in tests)
func WithEndpoint(endpoint string) Option {
	return func(c *client) {
		c.endpoint = endpoint
	}
}

// New creates a transcription Service for the given provider
func New(provider Provider, apiKey string, opts ...Option) (Service, error) {
	if err := provider.Validate(); err != nil {
		return nil, err
	}
	if apiKey == "" {
		return nil, goerr.New("transcription API key is required", goerr.V("provider", provider))
	}

	c := &client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     apiKey,
		language:   "ru",
	}
	switch provider {
	case ProviderGroq:
		c.endpoint = "https://api.groq.com/openai/v1/audio/transcriptions"
		c.model = "whisper-large-v3-turbo"
	default:
		c.endpoint = "https://api.openai.com/v1/audio/transcriptions"
		c.model = "whisper-1"
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *client) Transcribe(ctx context.Context, audio []byte) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="audio.webm"`)
	header.Set("Content-Type", "audio/webm")
	part, err := form.CreatePart(header)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create multipart file part")
	}
	if _, err := part.Write(audio); err != nil {
		return "", goerr.Wrap(err, "failed to write audio payload")
	}

	if err := form.WriteField("model", c.model); err != nil {
		return "", goerr.Wrap(err, "failed to write model field")
	}
	if err := form.WriteField("language", c.language); err != nil {
		return "", goerr.Wrap(err, "failed to write language field")
	}
	if err := form.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to finalize multipart form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create transcription request")
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "transcription request failed")
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", goerr.New("transcription API error",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(data)),
		)
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", goerr.Wrap(err, "failed to decode transcription response")
	}

	return result.Text, nil
}
