package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/coopvote/api/internal/core/ports"
	"github.com/go-chi/chi/v5"
)

type AgendaHandler struct {
	service ports.AgendaService
}

func NewAgendaHandler(service ports.AgendaService) *AgendaHandler {
	return &AgendaHandler{
		service: service,
	}
}

type createAgendaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *AgendaHandler) CreateAgenda(w http.ResponseWriter, r *http.Request) {
	var req createAgendaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	agenda, err := h.service.Create(r.Context(), ports.CreateAgendaInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, agenda)
}

func (h *AgendaHandler) GetAgenda(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing agenda id", http.StatusBadRequest)
		return
	}

	agenda, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, agenda)
}

func (h *AgendaHandler) ListAgendas(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	agendas, err := h.service.List(r.Context(), page)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, agendas)
}
