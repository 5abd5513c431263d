package toggle

import "errors"

var (
	// ErrInvalidBoard is returned when board rules or an initial layout are inconsistent.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrIllegalMove is returned by Replay when a move cannot be applied.
	ErrIllegalMove = errors.New("illegal move")
)
