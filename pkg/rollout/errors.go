package rollout

import "errors"

// Predefined errors for the rollout package.
var (
	// ErrInvalidInput indicates that an identifier or fraction does not
	// satisfy the input contract (non-empty identifier, fraction in [0, 1]).
	ErrInvalidInput = errors.New("invalid rollout input")
)
