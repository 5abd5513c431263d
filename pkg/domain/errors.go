package domain

import "errors"

// ErrInvalidMove is returned when a move name or move order cannot be parsed.
var ErrInvalidMove = errors.New("invalid move")
