package assistant

import (
	"bytes"
	"context"
	_ "embed"
	"strings"
	"text/template"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/utils/logging"
)

//go:embed prompt/system.md
var systemPromptTmpl string

var systemPrompt = template.Must(template.New("system").Parse(systemPromptTmpl))

// Service is the assistant endpoint: one conversation turn in, one reply
// (text plus action batch) out.
type Service interface {
	Chat(ctx context.Context, messages []*model.ChatMessage) (*model.AssistantReply, error)
}

type service struct {
	llm gollem.LLMClient
}

// New creates an assistant Service backed by the given LLM client
func New(llmClient gollem.LLMClient) Service {
	return &service{llm: llmClient}
}

type promptMessage struct {
	Role    string
	Content string
}

type promptData struct {
	CurrentDate string
	Messages    []promptMessage
}

func (s *service) Chat(ctx context.Context, messages []*model.ChatMessage) (*model.AssistantReply, error) {
	data := promptData{
		CurrentDate: time.Now().UTC().Format("2006-01-02"),
	}
	for _, m := range messages {
		data.Messages = append(data.Messages, promptMessage{
			Role:    m.Role.String(),
			Content: m.Content,
		})
	}

	var buf bytes.Buffer
	if err := systemPrompt.Execute(&buf, data); err != nil {
		return nil, goerr.Wrap(err, "failed to render assistant prompt")
	}

	session, err := s.llm.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create assistant session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buf.String()))
	if err != nil {
		return nil, goerr.Wrap(err, "assistant call failed")
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("assistant returned an empty response")
	}

	reply := ParseReply(strings.Join(resp.Texts, "\n"))
	logging.From(ctx).Debug("assistant reply",
		"content_len", len(reply.Content),
		"actions", len(reply.Actions),
	)
	return reply, nil
}
