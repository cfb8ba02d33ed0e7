package eligibility

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected error
	}{
		{"able to vote", http.StatusOK, `{"status":"ABLE_TO_VOTE"}`, nil},
		{"unable to vote", http.StatusOK, `{"status":"UNABLE_TO_VOTE"}`, domain.ErrMemberNotEligible},
		{"unknown document", http.StatusNotFound, `{}`, domain.ErrInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			err := NewClient(server.URL).Check(context.Background(), "12345678901")
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestCheckUpstreamFailureIsNotSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := NewClient(server.URL).Check(context.Background(), "12345678901")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidDocument)
	assert.NotErrorIs(t, err, domain.ErrMemberNotEligible)
}
