package nxcube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the nxcube package.
var (
	// Construction errors
	ErrInvalidSize = errors.New("nxcube: cube size must be at least 2")

	// Parsing errors
	ErrInvalidNotation = errors.New("nxcube: invalid move notation")

	// Application errors
	ErrUnknownMove = errors.New("nxcube: unknown move")
)

// ConstructionError reports a cube that cannot be built.
type ConstructionError struct {
	Size int
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("nxcube: invalid cube size %d (must be at least 2)", e.Size)
}

func (e *ConstructionError) Unwrap() error { return ErrInvalidSize }

// ParseError reports a move token that does not follow the notation.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("nxcube: invalid move notation: %s", e.Reason)
	}
	return fmt.Sprintf("nxcube: invalid move notation %q: %s", e.Token, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrInvalidNotation }

// UnknownMoveError reports a well-formed move the cube cannot perform,
// either because its base code is not implemented or because the layer
// does not exist on a cube of this size.
type UnknownMoveError struct {
	Token  string
	Reason string
}

func (e *UnknownMoveError) Error() string {
	return fmt.Sprintf("nxcube: unknown move %q: %s", e.Token, e.Reason)
}

func (e *UnknownMoveError) Unwrap() error { return ErrUnknownMove }
