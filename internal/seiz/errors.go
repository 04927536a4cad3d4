package seiz

import "errors"

// Sentinel errors for the validation taxonomy. All are raised eagerly,
// before any state mutation, and match via errors.Is.
var (
	// ErrInvalidParameter reports a rate or probability outside its domain
	// at model construction.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidFraction reports bad initialization fractions (negative or
	// summing above 1). The state store is left unmodified.
	ErrInvalidFraction = errors.New("invalid initialization fraction")

	// ErrUninitializedState reports a Run or Step call before
	// InitializeStates.
	ErrUninitializedState = errors.New("states not initialized")
)
