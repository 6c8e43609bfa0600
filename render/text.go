// Package render draws game state as text. It observes the engine through
// its exported state and never feeds anything back.
package render

import (
	"fmt"
	"strings"

	"github.com/zucenko/mazehunt/game"
	"github.com/zucenko/mazehunt/model"
)

const (
	MARKER_GOODY = 'G'
	MARKER_BADDY = 'B'
)

// Game renders the bordered maze with the agents overlaid on their cells,
// followed by status, round and position lines.
func Game(g *game.Game) string {
	lines := strings.Split(g.Maze.String(), "\n")

	overlay := func(pos model.Position, marker byte) {
		// line 0 is the top border; row y sits at line Height-y
		row := []byte(lines[g.Maze.Height-pos.Y])
		row[pos.X+1] = marker
		lines[g.Maze.Height-pos.Y] = string(row)
	}
	overlay(g.Position[g.Goody0], MARKER_GOODY)
	overlay(g.Position[g.Goody1], MARKER_GOODY)
	overlay(g.Position[g.Baddy], MARKER_BADDY)

	parts := []string{
		strings.Join(lines, "\n"),
		"Status: " + g.Status.Name(),
		fmt.Sprintf("Round: %d", g.Round),
		"Goody0: " + g.Position[g.Goody0].String(),
		"Goody1: " + g.Position[g.Goody1].String(),
		"Baddy: " + g.Position[g.Baddy].String(),
	}
	return strings.Join(parts, "\n")
}
