package model

import "fmt"

// Position is a 2-dimensional x, y position. Value type, copied and
// compared freely.
type Position struct {
	X, Y int
}

var (
	ZERO = Position{0, 0}
	DX   = Position{1, 0}
	DY   = Position{0, 1}
)

func (p Position) Add(o Position) Position {
	return Position{p.X + o.X, p.Y + o.Y}
}

func (p Position) Sub(o Position) Position {
	return Position{p.X - o.X, p.Y - o.Y}
}

func (p Position) Neg() Position {
	return Position{-p.X, -p.Y}
}

// L1Norm returns the sum of the abs of the components.
func (p Position) L1Norm() int {
	x, y := p.X, p.Y
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return x + y
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
