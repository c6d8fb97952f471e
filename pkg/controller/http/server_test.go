package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	server "github.com/blueprint-app/blueprint/pkg/controller/http"
	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/domain/types"
	"github.com/blueprint-app/blueprint/pkg/repository/memory"
	"github.com/blueprint-app/blueprint/pkg/usecase"
)

type fixedAssistant struct {
	reply *model.AssistantReply
}

func (f *fixedAssistant) Chat(ctx context.Context, messages []*model.ChatMessage) (*model.AssistantReply, error) {
	return f.reply, nil
}

type fixedTranscriber struct {
	text string
}

func (f *fixedTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return f.text, nil
}

func newTestServer(opts ...usecase.Option) (*server.Server, *usecase.UseCases) {
	uc := usecase.New(memory.New(), opts...)
	return server.New(uc), uc
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.Bool(t, strings.Contains(rec.Body.String(), "ok")).True()
}

func TestChatEndpoint(t *testing.T) {
	t.Run("returns reply and action report", func(t *testing.T) {
		srv, uc := newTestServer(usecase.WithAssistant(&fixedAssistant{
			reply: &model.AssistantReply{
				Content: "Saved.",
				Actions: []model.Action{
					{Kind: types.ActionAddNote, Data: map[string]any{"title": "Call Mary"}},
				},
			},
		}))

		body := bytes.NewBufferString(`{"message":"note: call Mary"}`)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", body))

		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Reply struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"reply"`
			Actions struct {
				Results []struct {
					OK bool `json:"ok"`
				} `json:"results"`
			} `json:"actions"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp.Reply.Role).Equal("assistant")
		gt.Value(t, resp.Reply.Content).Equal("Saved.")
		gt.Array(t, resp.Actions.Results).Length(1)
		gt.Value(t, resp.Actions.Results[0].OK).Equal(true)

		notes, err := uc.Repository().Note().List(context.Background(), "")
		gt.NoError(t, err).Required()
		gt.Array(t, notes).Length(1)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		srv, _ := newTestServer(usecase.WithAssistant(&fixedAssistant{reply: &model.AssistantReply{Content: "x"}}))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString("{")))
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("503 without an assistant", func(t *testing.T) {
		srv, _ := newTestServer()
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{"message":"hi"}`)))
		gt.Value(t, rec.Code).Equal(http.StatusServiceUnavailable)
	})
}

func TestHistoryEndpoints(t *testing.T) {
	srv, _ := newTestServer(usecase.WithAssistant(&fixedAssistant{reply: &model.AssistantReply{Content: "hello back"}}))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{"message":"hello"}`)))
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/chat/history", nil))
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Messages []struct {
			Role string `json:"role"`
		} `json:"messages"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Array(t, resp.Messages).Length(2)
	gt.Value(t, resp.Messages[0].Role).Equal("user")

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/chat/history", nil))
	gt.Value(t, rec.Code).Equal(http.StatusNoContent)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/chat/history", nil))
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Array(t, resp.Messages).Length(0)
}

func TestTranscribeEndpoint(t *testing.T) {
	t.Run("transcript runs the chat pipeline", func(t *testing.T) {
		srv, _ := newTestServer(
			usecase.WithAssistant(&fixedAssistant{reply: &model.AssistantReply{Content: "done"}}),
			usecase.WithTranscriber(&fixedTranscriber{text: "buy milk"}),
		)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/transcribe", bytes.NewBufferString("webm-bytes")))

		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.Bool(t, strings.Contains(rec.Body.String(), "done")).True()
	})

	t.Run("empty transcript yields no content", func(t *testing.T) {
		srv, _ := newTestServer(
			usecase.WithAssistant(&fixedAssistant{reply: &model.AssistantReply{Content: "x"}}),
			usecase.WithTranscriber(&fixedTranscriber{text: " "}),
		)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/transcribe", bytes.NewBufferString("webm-bytes")))
		gt.Value(t, rec.Code).Equal(http.StatusNoContent)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		srv, _ := newTestServer(usecase.WithTranscriber(&fixedTranscriber{text: "x"}))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/transcribe", http.NoBody))
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("503 without a transcriber", func(t *testing.T) {
		srv, _ := newTestServer()
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/transcribe", bytes.NewBufferString("x")))
		gt.Value(t, rec.Code).Equal(http.StatusServiceUnavailable)
	})
}

func TestListEndpoints(t *testing.T) {
	srv, uc := newTestServer()
	ctx := context.Background()

	_, err := uc.Repository().Client().Create(ctx, &model.CreateClientInput{
		Name:        "Ivan",
		PaymentType: types.PaymentMonthly,
		Currency:    "RUB",
	})
	gt.NoError(t, err).Required()

	cat, err := uc.Repository().Category().Create(ctx, &model.CreateCategoryInput{Name: "Errands", Color: "#1a73e8"})
	gt.NoError(t, err).Required()
	_, err = uc.Repository().Note().Create(ctx, &model.CreateNoteInput{Title: "Buy milk", CategoryID: cat.ID})
	gt.NoError(t, err).Required()
	_, err = uc.Repository().Note().Create(ctx, &model.CreateNoteInput{Title: "Unfiled"})
	gt.NoError(t, err).Required()

	t.Run("clients", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/clients", nil))
		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.Bool(t, strings.Contains(rec.Body.String(), "Ivan")).True()
	})

	t.Run("notes filtered by category", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notes?category_id="+cat.ID.String(), nil))
		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.Bool(t, strings.Contains(rec.Body.String(), "Buy milk")).True()
		gt.Bool(t, strings.Contains(rec.Body.String(), "Unfiled")).False()
	})

	t.Run("categories", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.Bool(t, strings.Contains(rec.Body.String(), "Errands")).True()
	})

	t.Run("services empty list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/services", nil))
		gt.Value(t, rec.Code).Equal(http.StatusOK)
		gt.Bool(t, strings.Contains(rec.Body.String(), `"services":[]`)).True()
	})
}
