package hiring

import "errors"

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrInvalidName       = errors.New("candidate name is required")
)
