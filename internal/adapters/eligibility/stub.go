package eligibility

import (
	"context"

	"github.com/coopvote/api/internal/core/ports"
)

// Stub is a deterministic validator for tests and local development. The
// zero value accepts every document; Err forces a fixed outcome.
type Stub struct {
	Err error
}

func NewStub() *Stub {
	return &Stub{}
}

func (s *Stub) Check(ctx context.Context, document string) error {
	return s.Err
}

var _ ports.EligibilityValidator = (*Stub)(nil)
