package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/domain/types"
	"github.com/blueprint-app/blueprint/pkg/usecase"
	"github.com/blueprint-app/blueprint/pkg/utils/errutil"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply   *model.ChatMessage  `json:"reply"`
	Actions *model.ActionReport `json:"actions,omitempty"`
}

func (s *Server) chatHandler(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid chat request"), http.StatusBadRequest)
		return
	}

	reply, report, err := s.uc.SendMessage(r.Context(), req.Message)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, usecase.ErrNoAssistant) {
			status = http.StatusServiceUnavailable
		}
		errutil.HandleHTTP(r.Context(), w, err, status)
		return
	}

	respondJSON(w, r, http.StatusOK, chatResponse{Reply: reply, Actions: report})
}

func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	messages, err := s.uc.History(r.Context(), limit)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	if messages == nil {
		messages = []*model.ChatMessage{}
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"messages": messages})
}

func (s *Server) clearHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.ClearHistory(r.Context()); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// transcribeHandler accepts raw audio and runs it through the same
// conversation pipeline as typed chat input.
func (s *Server) transcribeHandler(w http.ResponseWriter, r *http.Request) {
	audio, err := io.ReadAll(io.LimitReader(r.Body, s.maxAudioBytes))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to read audio body"), http.StatusBadRequest)
		return
	}
	if len(audio) == 0 {
		errutil.HandleHTTP(r.Context(), w, goerr.New("empty audio body"), http.StatusBadRequest)
		return
	}

	reply, report, err := s.uc.HandleVoice(r.Context(), audio)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, usecase.ErrNoTranscriber) {
			status = http.StatusServiceUnavailable
		}
		errutil.HandleHTTP(r.Context(), w, err, status)
		return
	}
	if reply == nil {
		// nothing was said
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, r, http.StatusOK, chatResponse{Reply: reply, Actions: report})
}

func (s *Server) listClientsHandler(w http.ResponseWriter, r *http.Request) {
	clients, err := s.uc.Repository().Client().List(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	if clients == nil {
		clients = []*model.Client{}
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"clients": clients})
}

func (s *Server) listServicesHandler(w http.ResponseWriter, r *http.Request) {
	services, err := s.uc.Repository().Service().List(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	if services == nil {
		services = []*model.Service{}
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"services": services})
}

func (s *Server) listNotesHandler(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("category_id")

	notes, err := s.uc.Repository().Note().List(r.Context(), types.CategoryID(categoryID))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	if notes == nil {
		notes = []*model.Note{}
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"notes": notes})
}

func (s *Server) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := s.uc.Repository().Category().List(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}
	if categories == nil {
		categories = []*model.Category{}
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"categories": categories})
}
