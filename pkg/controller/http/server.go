package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/blueprint-app/blueprint/pkg/usecase"
	"github.com/blueprint-app/blueprint/pkg/utils/errutil"
	"github.com/blueprint-app/blueprint/pkg/utils/logging"
	"github.com/blueprint-app/blueprint/pkg/utils/safe"
)

// Server is the HTTP surface for the desktop frontend: chat, voice,
// and read-only entity listings.
type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases

	maxAudioBytes int64
}

type Options func(*Server)

// WithMaxAudioBytes caps the accepted size of an uploaded voice recording
func WithMaxAudioBytes(n int64) Options {
	return func(s *Server) {
		s.maxAudioBytes = n
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:        r,
		uc:            uc,
		maxAudioBytes: 16 << 20,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/chat", func(r chi.Router) {
			r.Post("/", s.chatHandler)
			r.Get("/history", s.historyHandler)
			r.Delete("/history", s.clearHistoryHandler)
		})
		r.Post("/transcribe", s.transcribeHandler)

		r.Get("/clients", s.listClientsHandler)
		r.Get("/services", s.listServicesHandler)
		r.Get("/notes", s.listNotesHandler)
		r.Get("/categories", s.listCategoriesHandler)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	safe.Write(r.Context(), w, []byte(`{"status":"ok"}`))
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(r.Context(), w, data)
}
