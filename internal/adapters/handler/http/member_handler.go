package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/coopvote/api/internal/core/ports"
	"github.com/go-chi/chi/v5"
)

type MemberHandler struct {
	service ports.MemberService
}

func NewMemberHandler(service ports.MemberService) *MemberHandler {
	return &MemberHandler{
		service: service,
	}
}

type registerMemberRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
}

func (h *MemberHandler) RegisterMember(w http.ResponseWriter, r *http.Request) {
	var req registerMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Document == "" {
		http.Error(w, "name and document are required", http.StatusBadRequest)
		return
	}

	member, err := h.service.Register(r.Context(), ports.RegisterMemberInput{
		Name:     req.Name,
		Document: req.Document,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, member)
}

func (h *MemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) SearchByDocument(w http.ResponseWriter, r *http.Request) {
	document := r.URL.Query().Get("document")
	if document == "" {
		http.Error(w, "document query parameter is required", http.StatusBadRequest)
		return
	}

	member, err := h.service.GetByDocument(r.Context(), document)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	members, err := h.service.List(r.Context(), page)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, members)
}
