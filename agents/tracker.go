package agents

import (
	"math/rand"

	"github.com/zucenko/mazehunt/game"
	"github.com/zucenko/mazehunt/model"
)

func opposite(m model.Move) model.Move {
	switch m {
	case model.UP:
		return model.DOWN
	case model.DOWN:
		return model.UP
	case model.LEFT:
		return model.RIGHT
	case model.RIGHT:
		return model.LEFT
	}
	return model.STAY
}

// TrackerGoody prefers moving left/down unless it is stuck. When both left
// and down are blocked it switches into a stuck mode that walks away from
// its previous position until the corner is cleared. It remembers walls it
// has seen and treats dead ends as walls, all in coordinates relative to
// its (unknown) starting cell.
type TrackerGoody struct {
	game.GoodyBase
	rng         *rand.Rand
	position    model.Position // relative to the starting cell
	knownWalls  map[model.Position]bool
	knownSpaces map[model.Position]bool
	stuck       bool
	lastMove    model.Move
}

func NewTrackerGoody(rng *rand.Rand) *TrackerGoody {
	return &TrackerGoody{
		rng:         newRng(rng),
		knownWalls:  make(map[model.Position]bool),
		knownSpaces: make(map[model.Position]bool),
		lastMove:    model.LEFT,
	}
}

func (a *TrackerGoody) TakeTurn(obstruction model.Obstruction, _ game.PingInfo) model.Move {
	// record adjacent walls and spaces, collect the allowed directions
	walls := 0
	allowed := make([]model.Move, 0, 4)
	for _, d := range model.DIRECTIONS {
		pos := a.position.Add(d.Step())
		if a.knownWalls[pos] {
			walls++
			continue
		}
		if obstruction.Blocked(d) {
			a.knownWalls[pos] = true
			walls++
			continue
		}
		a.knownSpaces[pos] = true
		allowed = append(allowed, d)
	}

	if walls <= 1 {
		a.stuck = false
	} else if walls == 3 {
		// dead end, never come back
		a.knownWalls[a.position] = true
	}
	if !allowedHas(allowed, model.DOWN) && !allowedHas(allowed, model.LEFT) {
		a.stuck = true
	}

	var move model.Move
	if a.stuck {
		move = a.stuckChoice(allowed)
	} else {
		move = a.normalChoice(allowed)
	}

	a.lastMove = move
	a.position = a.position.Add(move.Step())
	return move
}

func allowedHas(allowed []model.Move, m model.Move) bool {
	for _, d := range allowed {
		if d == m {
			return true
		}
	}
	return false
}

// normalChoice is biased towards taking DOWN or LEFT.
func (a *TrackerGoody) normalChoice(allowed []model.Move) model.Move {
	biased := []model.Move{
		model.UP,
		model.DOWN, model.DOWN, model.DOWN, model.DOWN,
		model.LEFT, model.LEFT, model.LEFT, model.LEFT,
		model.RIGHT,
	}
	pool := make([]model.Move, 0, len(biased))
	for _, d := range biased {
		if allowedHas(allowed, d) {
			pool = append(pool, d)
		}
	}
	if len(pool) == 0 {
		return model.STAY
	}
	return pool[a.rng.Intn(len(pool))]
}

// stuckChoice walks away from the previous position unless that is the
// only way out.
func (a *TrackerGoody) stuckChoice(allowed []model.Move) model.Move {
	if len(allowed) == 0 {
		return model.STAY
	}
	if len(allowed) == 1 {
		return allowed[0]
	}
	for _, d := range allowed {
		if d != opposite(a.lastMove) {
			return d
		}
	}
	return allowed[0]
}
