package lib

import (
	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrUnableToParse is returned when the token stream ends (or breaks)
	// somewhere a token was required.
	ErrUnableToParse = errors.NewKind("unable to parse: %s")
	// ErrParenthesisNotBalanced is returned when an opened '(' has no
	// matching ')' at the expected position.
	ErrParenthesisNotBalanced = errors.NewKind("parenthesis not balanced")
	// ErrInvalidOperator is returned when an operator position holds a token
	// that is not an operator.
	ErrInvalidOperator = errors.NewKind("invalid operator: %s")
	// ErrInvalidNumber is returned when an operand position holds a token
	// that cannot start an operand.
	ErrInvalidNumber = errors.NewKind("invalid number: %s")
)
