package http

import (
	"encoding/json"
	"net/http"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/coopvote/api/internal/core/ports"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

type registerVoteRequest struct {
	MemberID uuid.UUID         `json:"member_id"`
	Document string            `json:"document"`
	Choice   domain.VoteChoice `json:"choice"`
}

func (h *VoteHandler) RegisterVote(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	var req registerVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.MemberID == uuid.Nil {
		http.Error(w, "member_id is required", http.StatusBadRequest)
		return
	}
	if !req.Choice.Valid() {
		http.Error(w, "choice must be YES or NO", http.StatusBadRequest)
		return
	}

	vote, err := h.service.Register(r.Context(), ports.RegisterVoteInput{
		SessionID: sessionID,
		MemberID:  req.MemberID,
		Document:  req.Document,
		Choice:    req.Choice,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, vote)
}
