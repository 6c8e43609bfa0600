package model

import (
	"fmt"
	"strings"
)

// Cell is the state of a single maze square.
type Cell uint8

const (
	SPACE Cell = 0
	WALL  Cell = 1
)

// Layout symbols accepted by NewMazeWithLayout.
const (
	LAYOUT_SPACE = '0'
	LAYOUT_WALL  = '1'
)

// Maze is a width x height grid of SPACE and WALL cells. Everything outside
// the grid reads as WALL. Width and height never change after construction.
//
// Cells are stored row-major with row 0 at the visual bottom. A layout
// string is written the way the maze is drawn, top row first.
type Maze struct {
	Width, Height int
	cells         []Cell
}

// NewMaze builds an all-SPACE maze.
func NewMaze(width, height int) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, &InvalidLayoutError{Reason: "width and height must be positive"}
	}
	return &Maze{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// NewMazeWithLayout builds a maze from a layout string of exactly
// width*height LAYOUT_SPACE/LAYOUT_WALL symbols, top row first.
func NewMazeWithLayout(width, height int, layout string) (*Maze, error) {
	m, err := NewMaze(width, height)
	if err != nil {
		return nil, err
	}
	if len(layout) != width*height {
		return nil, &InvalidLayoutError{Reason: fmt.Sprintf("layout must have length %d, got %d", width*height, len(layout))}
	}
	for i := 0; i < len(layout); i++ {
		// the first row of the string is the top row of the maze
		y := height - 1 - i/width
		x := i % width
		switch layout[i] {
		case LAYOUT_SPACE:
			m.cells[y*width+x] = SPACE
		case LAYOUT_WALL:
			m.cells[y*width+x] = WALL
		default:
			return nil, &InvalidLayoutError{Reason: fmt.Sprintf("layout symbol must be '0' or '1', got %q", layout[i])}
		}
	}
	return m, nil
}

func (m *Maze) inBounds(p Position) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// Cell returns the state of the given position. Out-of-bounds positions
// report WALL.
func (m *Maze) Cell(p Position) Cell {
	if !m.inBounds(p) {
		return WALL
	}
	return m.cells[p.Y*m.Width+p.X]
}

// SetCell mutates a single cell.
func (m *Maze) SetCell(p Position, c Cell) error {
	if c != SPACE && c != WALL {
		return &InvalidLayoutError{Reason: "cell value must be SPACE or WALL"}
	}
	if !m.inBounds(p) {
		return &OutOfBoundsError{Pos: p, Width: m.Width, Height: m.Height}
	}
	m.cells[p.Y*m.Width+p.X] = c
	return nil
}

// Obstruction returns the four-direction wall readout for the given
// position.
func (m *Maze) Obstruction(p Position) Obstruction {
	return Obstruction{
		Up:    m.Cell(p.Add(UP.Step())) == WALL,
		Left:  m.Cell(p.Add(LEFT.Step())) == WALL,
		Down:  m.Cell(p.Add(DOWN.Step())) == WALL,
		Right: m.Cell(p.Add(RIGHT.Step())) == WALL,
	}
}

// EmptyCells returns the number of SPACE cells.
func (m *Maze) EmptyCells() int {
	n := 0
	for _, c := range m.cells {
		if c == SPACE {
			n++
		}
	}
	return n
}

// Tile returns a new maze with this one's pattern repeated xRepeats times
// horizontally and yRepeats times vertically. The new maze shares no state
// with the source.
func (m *Maze) Tile(xRepeats, yRepeats int) (*Maze, error) {
	if xRepeats < 1 || yRepeats < 1 {
		return nil, &InvalidLayoutError{Reason: "tile repeats must be positive"}
	}
	tiled, err := NewMaze(m.Width*xRepeats, m.Height*yRepeats)
	if err != nil {
		return nil, err
	}
	for y := 0; y < tiled.Height; y++ {
		for x := 0; x < tiled.Width; x++ {
			tiled.cells[y*tiled.Width+x] = m.cells[(y%m.Height)*m.Width+x%m.Width]
		}
	}
	return tiled, nil
}

// String renders the maze surrounded by a border of walls, top row first.
func (m *Maze) String() string {
	border := strings.Repeat("X", m.Width+2)
	parts := make([]string, 0, m.Height+2)
	parts = append(parts, border)
	for y := m.Height - 1; y >= 0; y-- {
		var row strings.Builder
		row.WriteByte('X')
		for x := 0; x < m.Width; x++ {
			if m.cells[y*m.Width+x] == WALL {
				row.WriteByte('X')
			} else {
				row.WriteByte(' ')
			}
		}
		row.WriteByte('X')
		parts = append(parts, row.String())
	}
	parts = append(parts, border)
	return strings.Join(parts, "\n")
}
