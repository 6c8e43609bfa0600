package game

import (
	"fmt"

	"github.com/zucenko/mazehunt/model"
)

// ConfigurationError is returned when a game cannot be built from the
// supplied maze and agents.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "bad game configuration: " + e.Reason
}

// PlacementError is returned when random placement cannot seat all three
// agents within the attempt budget.
type PlacementError struct {
	Attempts int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("failed to randomly place an agent in %d attempts - the maze is too dense", e.Attempts)
}

// InvalidMoveError is returned by DoRound when an agent hands back a value
// outside the six legal moves. It is a contract violation, never coerced
// to STAY.
type InvalidMoveError struct {
	AgentIndex int
	Move       model.Move
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("agent %d returned an illegal move %s", e.AgentIndex, e.Move.Name())
}
