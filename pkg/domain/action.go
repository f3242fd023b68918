package domain

import (
	"fmt"
	"unicode"
)

// Action is the move a transition performs after writing its symbol.
// The zero value is not a valid action.
type Action uint8

const (
	Right  Action = iota + 1 // Move the head one cell right
	Left                     // Move the head one cell left
	Accept                   // Halt, sequence accepted
	Reject                   // Halt, sequence rejected
)

// Actions returns the four actions in canonical encoding order.
func Actions() []Action {
	return []Action{Right, Left, Accept, Reject}
}

// ParseAction canonicalizes an action letter.
// Y/y accepts, N/n rejects, L/l moves left and R/r moves right.
func ParseAction(r rune) (Action, error) {
	switch unicode.ToUpper(r) {
	case 'R':
		return Right, nil
	case 'L':
		return Left, nil
	case 'Y':
		return Accept, nil
	case 'N':
		return Reject, nil
	}
	return 0, fmt.Errorf("%w: %q (expected one of Y, N, L, R)", ErrInvalidAction, r)
}

// Valid reports whether a is one of the four known actions.
func (a Action) Valid() bool {
	return a >= Right && a <= Reject
}

// Halts reports whether the action ends the run with a verdict.
func (a Action) Halts() bool {
	return a == Accept || a == Reject
}

// Rank is the zero-based position of a in the canonical encoding order,
// or -1 for an invalid action.
func (a Action) Rank() int {
	if !a.Valid() {
		return -1
	}
	return int(a) - 1
}

// Letter returns the canonical upper-case letter of the action.
func (a Action) Letter() rune {
	switch a {
	case Right:
		return 'R'
	case Left:
		return 'L'
	case Accept:
		return 'Y'
	case Reject:
		return 'N'
	}
	return '?'
}

func (a Action) String() string {
	switch a {
	case Right:
		return "right"
	case Left:
		return "left"
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// ActionFromRank is the inverse of Rank.
func ActionFromRank(rank int) (Action, error) {
	a := Action(rank + 1)
	if !a.Valid() {
		return 0, fmt.Errorf("%w: rank %d", ErrInvalidAction, rank)
	}
	return a, nil
}
