package game

import (
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazehunt/model"
)

// Status is the lifecycle of a single game. It only ever moves forward:
// NOT_STARTED -> IN_PLAY -> one of the three terminal states.
type Status int

const (
	NOT_STARTED Status = iota
	IN_PLAY
	GOODIES_WIN
	BADDY_WINS
	DRAW
)

func (s Status) Name() string {
	switch s {
	case NOT_STARTED:
		return "not started"
	case IN_PLAY:
		return "in play"
	case GOODIES_WIN:
		return "goodies win"
	case BADDY_WINS:
		return "baddy wins"
	case DRAW:
		return "draw"
	default:
		return "n/a"
	}
}

func (s Status) String() string {
	return s.Name()
}

// Terminal reports whether the game is over.
func (s Status) Terminal() bool {
	return s == GOODIES_WIN || s == BADDY_WINS || s == DRAW
}

const (
	MAX_PLACEMENT_ATTEMPTS = 1000
	DEFAULT_MAX_ROUNDS     = 10000
)

// Game places two goodies and one baddy at random open cells of a maze,
// then resolves rounds of turns until the goodies meet (they win), the
// baddy catches a goody (it wins), or the round cap is hit (draw).
//
// The engine treats the maze as read-only and mutates only its own
// position table. A Game drives exactly one play-through and must not be
// advanced from more than one goroutine.
type Game struct {
	Maze   *model.Maze
	Goody0 Agent
	Goody1 Agent
	Baddy  Agent

	// Agents in processing order: goody0, goody1, baddy. The order is a
	// tie-break rule - a later agent sees the earlier agents' same-round
	// moves.
	Agents [3]Agent

	Position  map[Agent]model.Position
	Round     int
	MaxRounds int
	Ping      bool
	Status    Status
}

// NewGame builds and randomly places a game. maxRounds <= 0 selects
// DEFAULT_MAX_ROUNDS. rng may be nil for a time-seeded source; tests pass
// a seeded one to pin placement down.
func NewGame(maze *model.Maze, goody0, goody1, baddy Agent, maxRounds int, rng *rand.Rand) (*Game, error) {
	if maze == nil {
		return nil, &ConfigurationError{Reason: "maze must not be nil"}
	}
	if goody0 == nil || goody1 == nil || baddy == nil {
		return nil, &ConfigurationError{Reason: "a game needs two goodies and a baddy"}
	}
	if !goody0.CanPing() || !goody1.CanPing() {
		return nil, &ConfigurationError{Reason: "goody0 and goody1 must be goodies"}
	}
	if baddy.CanPing() {
		return nil, &ConfigurationError{Reason: "baddy must be a baddy"}
	}
	if maxRounds <= 0 {
		maxRounds = DEFAULT_MAX_ROUNDS
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		Maze:      maze,
		Goody0:    goody0,
		Goody1:    goody1,
		Baddy:     baddy,
		Agents:    [3]Agent{goody0, goody1, baddy},
		Position:  make(map[Agent]model.Position, 3),
		MaxRounds: maxRounds,
		Status:    NOT_STARTED,
	}
	if err := g.place(rng); err != nil {
		return nil, err
	}
	return g, nil
}

// place seats each agent at a random open cell not already taken, giving
// up after MAX_PLACEMENT_ATTEMPTS draws per agent.
func (g *Game) place(rng *rand.Rand) error {
	taken := make([]model.Position, 0, len(g.Agents))
	for i, agent := range g.Agents {
		placed := false
		for attempt := 0; attempt < MAX_PLACEMENT_ATTEMPTS; attempt++ {
			pos := model.Position{X: rng.Intn(g.Maze.Width), Y: rng.Intn(g.Maze.Height)}
			if g.Maze.Cell(pos) != model.SPACE || contains(taken, pos) {
				continue
			}
			taken = append(taken, pos)
			g.Position[agent] = pos
			log.Debugf("placed agent %d at %s", i, pos)
			placed = true
			break
		}
		if !placed {
			return &PlacementError{Attempts: MAX_PLACEMENT_ATTEMPTS}
		}
	}
	return nil
}

func contains(positions []model.Position, p model.Position) bool {
	for _, q := range positions {
		if q == p {
			return true
		}
	}
	return false
}

// pingInfoFor builds the relative-position map one agent receives after a
// ping, from the positions as they stand right now.
func (g *Game) pingInfoFor(agent Agent) PingInfo {
	info := make(PingInfo, len(g.Agents)-1)
	for _, other := range g.Agents {
		if other == agent {
			continue
		}
		info[other] = g.Position[other].Sub(g.Position[agent])
	}
	return info
}

// DoRound resolves one round of turns - goody0, goody1, then the baddy -
// and returns the new status. Calling it on a finished game is a no-op
// returning the frozen status.
//
// A requested ping is served at the start of the next round, computed
// before anyone moves that round. Within a round each agent gets a fresh
// obstruction readout, so it sees moves already applied by earlier agents.
func (g *Game) DoRound() (Status, error) {
	if g.Status == NOT_STARTED {
		g.Status = IN_PLAY
	} else if g.Status != IN_PLAY {
		return g.Status, nil
	}

	g.Round++
	if g.Round == g.MaxRounds {
		g.Status = DRAW
		log.Debugf("game over: %s after %d rounds", g.Status, g.Round)
		return g.Status, nil
	}

	var ping [3]PingInfo
	if g.Ping {
		for i, agent := range g.Agents {
			ping[i] = g.pingInfoFor(agent)
		}
		g.Ping = false
	}

	for i, agent := range g.Agents {
		obstruction := g.Maze.Obstruction(g.Position[agent])
		action := agent.TakeTurn(obstruction, ping[i])
		if !action.Legal() {
			return g.Status, &InvalidMoveError{AgentIndex: i, Move: action}
		}

		// The no-move cases: staying put, walking into a wall, or a baddy
		// trying to ping.
		if action == model.STAY ||
			action.IsDirection() && obstruction.Blocked(action) ||
			action == model.PING && !agent.CanPing() {
			continue
		}

		if action == model.PING {
			g.Ping = true
		} else {
			g.Position[agent] = g.Position[agent].Add(action.Step())
		}

		if agent.CanPing() {
			if g.Position[g.Goody0] == g.Position[g.Goody1] {
				// the goodies have met
				g.Status = GOODIES_WIN
				break
			}
			if g.Position[agent] == g.Position[g.Baddy] {
				// the goody walked into the baddy
				g.Status = BADDY_WINS
				break
			}
		} else {
			if g.Position[g.Baddy] == g.Position[g.Goody0] || g.Position[g.Baddy] == g.Position[g.Goody1] {
				// the baddy caught a goody
				g.Status = BADDY_WINS
				break
			}
		}
	}

	if g.Status.Terminal() {
		log.Debugf("game over: %s after %d rounds", g.Status, g.Round)
	}
	return g.Status, nil
}

// Play keeps resolving rounds until there is a result and returns it with
// the number of rounds played. hook, if not nil, is called after every
// round - rendering and statistics live there, not in the engine.
func (g *Game) Play(hook func(*Game)) (Status, int, error) {
	for {
		status, err := g.DoRound()
		if err != nil {
			return status, g.Round, err
		}
		if hook != nil {
			hook(g)
		}
		if status != IN_PLAY {
			return status, g.Round, nil
		}
	}
}
