// Package eligibility talks to the external document-validation service
// that decides whether a member may vote.
package eligibility

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/coopvote/api/internal/core/ports"
)

const (
	statusAbleToVote   = "ABLE_TO_VOTE"
	statusUnableToVote = "UNABLE_TO_VOTE"
)

type checkResponse struct {
	Status string `json:"status"`
}

type client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) ports.EligibilityValidator {
	return &client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Check calls GET {base}/{document}. A 404 means the document does not
// exist upstream; UNABLE_TO_VOTE means the holder may not vote. Any
// other failure is surfaced as-is so callers treat it as an outage
// rather than a rejection.
func (c *client) Check(ctx context.Context, document string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", c.baseURL, document), nil)
	if err != nil {
		return fmt.Errorf("failed to build eligibility request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("eligibility service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrInvalidDocument
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("eligibility service returned status %d", resp.StatusCode)
	}

	var body checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode eligibility response: %w", err)
	}

	switch body.Status {
	case statusAbleToVote:
		return nil
	case statusUnableToVote:
		return domain.ErrMemberNotEligible
	default:
		return fmt.Errorf("eligibility service returned unknown status %q", body.Status)
	}
}
