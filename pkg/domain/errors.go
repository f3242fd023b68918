package domain

import (
	"errors"
	"fmt"
)

// Input validation errors. They are recoverable: the caller re-prompts and
// the partially built description is left untouched.
var (
	ErrInvalidName     = errors.New("invalid state name")
	ErrInvalidSymbol   = errors.New("invalid symbol")
	ErrDuplicateState  = errors.New("duplicate state")
	ErrDuplicateSymbol = errors.New("duplicate symbol")
	ErrRegistryFrozen  = errors.New("registry is frozen")
	ErrRegistryOpen    = errors.New("registry is not finalized")
	ErrUnknownState    = errors.New("state does not exist")
	ErrUnknownSymbol   = errors.New("symbol does not exist")
	ErrInvalidAction   = errors.New("invalid action")
	ErrIncompleteTable = errors.New("transition table is incomplete")
	ErrNoStates        = errors.New("machine has no states")
)

// Execution faults. They end the current run without a verdict.
var (
	ErrSymbolNotInAlphabet    = errors.New("symbol doesn't exist in the supported alphabet")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrHeadOutOfRange         = errors.New("tape head has moved out of the valid range of the tape")
	ErrStateOutOfRange        = errors.New("invalid state index")
	ErrUnrecognizedAction     = errors.New("invalid action encountered")
	ErrStepLimit              = errors.New("step limit reached")
)

// FaultError is a terminal run-time error. It wraps one of the fault
// sentinels so callers can use errors.Is.
type FaultError struct {
	Step   int    // Step at which the fault happened (0-based)
	State  string // Active state when the fault happened
	Detail string // Human-readable detail (offending symbol, state, index...)
	Err    error
}

func (e *FaultError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("step %d: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("step %d: %v: %s", e.Step, e.Err, e.Detail)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}

// IsFault reports whether err is an execution fault.
func IsFault(err error) bool {
	var fe *FaultError
	return errors.As(err, &fe)
}
