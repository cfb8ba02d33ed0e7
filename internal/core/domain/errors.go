package domain

import "errors"

var (
	ErrAgendaNotFound     = errors.New("agenda not found")
	ErrSessionNotFound    = errors.New("voting session not found")
	ErrResultNotFound     = errors.New("voting result not found")
	ErrMemberNotFound     = errors.New("member not found")
	ErrSessionAlreadyOpen = errors.New("an open voting session already exists for this agenda")
	ErrSessionClosed      = errors.New("voting session is not open")
	ErrAlreadyVoted       = errors.New("member has already voted in this session")
	ErrDocumentTaken      = errors.New("document is already registered")
	ErrInvalidDocument    = errors.New("invalid document")
	ErrMemberNotEligible  = errors.New("member is not eligible to vote")
	ErrInvalidDuration    = errors.New("session duration must be positive")
	ErrInternal           = errors.New("internal server error")
)
