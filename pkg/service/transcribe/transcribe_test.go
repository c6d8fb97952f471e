package transcribe_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/blueprint-app/blueprint/pkg/service/transcribe"
)

func TestTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.Method).Equal(http.MethodPost)
		gt.Value(t, r.Header.Get("Authorization")).Equal("Bearer test-key")

		gt.NoError(t, r.ParseMultipartForm(1 << 20)).Required()
		gt.Value(t, r.FormValue("model")).Equal("whisper-1")
		gt.Value(t, r.FormValue("language")).Equal("en")

		file, header, err := r.FormFile("file")
		gt.NoError(t, err).Required()
		defer file.Close()
		gt.Value(t, header.Filename).Equal("audio.webm")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text": "buy milk and call Mary"}`))
	}))
	defer srv.Close()

	svc, err := transcribe.New(transcribe.ProviderOpenAI, "test-key",
		transcribe.WithEndpoint(srv.URL),
		transcribe.WithLanguage("en"),
	)
	gt.NoError(t, err).Required()

	text, err := svc.Transcribe(context.Background(), []byte("fake-webm-bytes"))
	gt.NoError(t, err).Required()
	gt.Value(t, text).Equal("buy milk and call Mary")
}

func TestTranscribeAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid file"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	svc, err := transcribe.New(transcribe.ProviderGroq, "test-key",
		transcribe.WithEndpoint(srv.URL))
	gt.NoError(t, err).Required()

	_, err = svc.Transcribe(context.Background(), []byte("junk"))
	gt.Error(t, err)
}

func TestNewValidation(t *testing.T) {
	_, err := transcribe.New(transcribe.Provider("browser"), "key")
	gt.Error(t, err)

	_, err = transcribe.New(transcribe.ProviderOpenAI, "")
	gt.Error(t, err)
}
