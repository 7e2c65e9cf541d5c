package blokus

import "errors"

var (
	// ErrConfiguration is returned for an unsupported rotation angle.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrOutOfBounds is returned when a write or placement targets a
	// cell outside the grid.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrInputFormat is returned when grid text is empty or ragged.
	ErrInputFormat = errors.New("invalid input format")
	// ErrCollision is returned by ValidatePlacement when a piece would
	// overlap or share an edge with an occupied cell.
	ErrCollision = errors.New("placement collides")
)
