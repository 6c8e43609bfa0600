package model

import "fmt"

// Move is an instruction returned by goodies and baddies.
type Move int

const (
	STAY Move = iota
	UP
	LEFT
	DOWN
	RIGHT
	PING
)

// DIRECTIONS are the four moves that carry a spatial delta.
var DIRECTIONS = [4]Move{UP, LEFT, DOWN, RIGHT}

func (m Move) Name() string {
	switch m {
	case STAY:
		return "stay"
	case UP:
		return "up"
	case LEFT:
		return "left"
	case DOWN:
		return "down"
	case RIGHT:
		return "right"
	case PING:
		return "ping"
	default:
		return fmt.Sprintf("n/a:%d", int(m))
	}
}

func (m Move) String() string {
	return m.Name()
}

// Step returns the unit delta for a directional move. STAY and PING have
// no spatial delta.
func (m Move) Step() Position {
	switch m {
	case UP:
		return DY
	case LEFT:
		return DX.Neg()
	case DOWN:
		return DY.Neg()
	case RIGHT:
		return DX
	}
	return ZERO
}

func (m Move) IsDirection() bool {
	return m == UP || m == LEFT || m == DOWN || m == RIGHT
}

// Legal reports whether m is one of the six moves an agent may return.
func (m Move) Legal() bool {
	return m >= STAY && m <= PING
}

// Obstruction tells an agent about nearby walls. Computed fresh from the
// maze for every turn, never stored.
type Obstruction struct {
	Up, Left, Down, Right bool
}

// Blocked reports whether the given directional move runs into a wall.
func (o Obstruction) Blocked(m Move) bool {
	switch m {
	case UP:
		return o.Up
	case LEFT:
		return o.Left
	case DOWN:
		return o.Down
	case RIGHT:
		return o.Right
	}
	return false
}

// Free returns the directions that are not blocked, in DIRECTIONS order.
func (o Obstruction) Free() []Move {
	free := make([]Move, 0, 4)
	for _, d := range DIRECTIONS {
		if !o.Blocked(d) {
			free = append(free, d)
		}
	}
	return free
}

func (o Obstruction) String() string {
	c := func(b bool) string {
		if b {
			return "X"
		}
		return " "
	}
	return "." + c(o.Up) + ".\n" + c(o.Left) + "o" + c(o.Right) + "\n." + c(o.Down) + "."
}
