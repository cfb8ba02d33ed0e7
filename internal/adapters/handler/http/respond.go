package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coopvote/api/internal/core/domain"
)

// statusForError maps domain errors onto the REST contract. Anything
// unrecognized is an internal failure and must not leak details.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAgendaNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrResultNotFound),
		errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrInvalidDocument):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSessionAlreadyOpen),
		errors.Is(err, domain.ErrAlreadyVoted),
		errors.Is(err, domain.ErrDocumentTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSessionClosed),
		errors.Is(err, domain.ErrMemberNotEligible):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidDuration):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = domain.ErrInternal.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
