package model

import "fmt"

// InvalidLayoutError is returned when a maze cannot be built from the
// supplied dimensions or layout.
type InvalidLayoutError struct {
	Reason string
}

func (e *InvalidLayoutError) Error() string {
	return "invalid maze layout: " + e.Reason
}

// OutOfBoundsError is returned on an attempt to mutate a cell outside the
// maze extent. Reads never produce it, out-of-bounds cells just read as
// walls.
type OutOfBoundsError struct {
	Pos           Position
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s is out of bounds (0-%d, 0-%d)", e.Pos, e.Width-1, e.Height-1)
}
