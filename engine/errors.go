package engine

import "errors"

var (
	// ErrOutOfBounds is returned for a coordinate outside a non-wrapping axis
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrNotPlaced is returned when moving an entity the grid has never seen
	ErrNotPlaced = errors.New("entity not placed")

	// ErrAlreadyPlaced is returned when placing an entity twice
	ErrAlreadyPlaced = errors.New("entity already placed")

	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrInvalidFaultRate  = errors.New("fault rate must be within [0, 1]")
	ErrLayoutFull        = errors.New("layout does not fit the lane corridor")
	ErrUnknownLayout     = errors.New("unknown layout")
)
