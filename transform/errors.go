package transform

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors. Composites pass inner errors through unchanged, so callers
// can always match with errors.Is.
var (
	// ErrInvalidEpoch is returned when a factory has no valid transform at the
	// requested epoch.
	ErrInvalidEpoch = errors.New("transform: invalid epoch")

	// ErrFrameMismatch is returned when chaining transforms whose frames do not line up.
	ErrFrameMismatch = errors.New("transform: frame mismatch")

	// ErrEpochMismatch is returned when chaining transforms bound to different epochs.
	ErrEpochMismatch = errors.New("transform: epoch mismatch")

	// ErrEmptyChain is returned by Chain and ChainFactory with no factories.
	ErrEmptyChain = errors.New("transform: empty chain")

	// ErrNegativeCost is returned by ValidateCost for negative or NaN costs.
	ErrNegativeCost = errors.New("transform: negative cost")

	// ErrNilFactory is returned when a nil Factory is supplied.
	ErrNilFactory = errors.New("transform: nil factory")
)

// ValidateCost reports ErrNegativeCost for c < 0 or NaN. +Inf is a valid
// cost meaning "impassable".
func ValidateCost(c float64) error {
	if c < 0 || math.IsNaN(c) {
		return fmt.Errorf("%w: %v", ErrNegativeCost, c)
	}

	return nil
}
