package machine

import "errors"

var (
	// ErrDuplicateTransition is returned when a condition already maps
	// to a different command. Determinism is never silently resolved.
	ErrDuplicateTransition = errors.New("duplicate transition for condition")
	// ErrMultipleEpsilonTransitions is returned when a second epsilon
	// transition is registered for a state that already has one.
	ErrMultipleEpsilonTransitions = errors.New("state already has an epsilon transition")
	// ErrInvalidStackSymbol is returned when a pushed symbol is not
	// permitted by the stack alphabet.
	ErrInvalidStackSymbol = errors.New("symbol not in stack alphabet")
	// ErrInvalidInitialStackSymbol is returned when the configured
	// initial stack symbol is outside the stack alphabet.
	ErrInvalidInitialStackSymbol = errors.New("initial stack symbol not in stack alphabet")
	// ErrIncompatibleInput is returned by SetInputString when the text
	// contains symbols outside the input alphabet.
	ErrIncompatibleInput = errors.New("input not compatible with alphabet")
	// ErrUnknownState is returned by label-based lookups.
	ErrUnknownState = errors.New("unknown state label")

	ErrMissingAlphabet      = errors.New("missing alphabet")
	ErrMissingStates        = errors.New("missing state table")
	ErrMissingInitialState  = errors.New("state table has no initial state")
	ErrMissingStackAlphabet = errors.New("missing stack alphabet")
)
