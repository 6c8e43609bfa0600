package game_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazehunt/game"
	"github.com/zucenko/mazehunt/model"
)

// scripted plays a fixed list of moves, then STAY forever, recording the
// ping info it was handed each turn.
type scripted struct {
	canPing bool
	moves   []model.Move
	i       int
	pings   []game.PingInfo
}

func (s *scripted) CanPing() bool { return s.canPing }

func (s *scripted) TakeTurn(_ model.Obstruction, ping game.PingInfo) model.Move {
	s.pings = append(s.pings, ping)
	if s.i >= len(s.moves) {
		return model.STAY
	}
	m := s.moves[s.i]
	s.i++
	return m
}

func goody(moves ...model.Move) *scripted { return &scripted{canPing: true, moves: moves} }
func baddy(moves ...model.Move) *scripted { return &scripted{canPing: false, moves: moves} }

func openMaze(t *testing.T, w, h int) *model.Maze {
	t.Helper()
	m, err := model.NewMaze(w, h)
	require.NoError(t, err)
	return m
}

// newTestGame builds a game and pins the agents to known cells.
func newTestGame(t *testing.T, maze *model.Maze, g0, g1, b game.Agent, maxRounds int, p0, p1, pb model.Position) *game.Game {
	t.Helper()
	g, err := game.NewGame(maze, g0, g1, b, maxRounds, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	g.Position[g.Goody0] = p0
	g.Position[g.Goody1] = p1
	g.Position[g.Baddy] = pb
	return g
}

func TestNewGameValidation(t *testing.T) {
	maze := openMaze(t, 3, 3)
	var confErr *game.ConfigurationError

	_, err := game.NewGame(nil, goody(), goody(), baddy(), 0, nil)
	require.True(t, errors.As(err, &confErr))

	_, err = game.NewGame(maze, goody(), nil, baddy(), 0, nil)
	require.True(t, errors.As(err, &confErr))

	// sides swapped
	_, err = game.NewGame(maze, baddy(), goody(), baddy(), 0, nil)
	require.True(t, errors.As(err, &confErr))
	_, err = game.NewGame(maze, goody(), goody(), goody(), 0, nil)
	require.True(t, errors.As(err, &confErr))
}

func TestPlacementFailsOnFullMaze(t *testing.T) {
	maze, err := model.NewMazeWithLayout(2, 2, "1111")
	require.NoError(t, err)
	_, err = game.NewGame(maze, goody(), goody(), baddy(), 0, rand.New(rand.NewSource(1)))
	var placeErr *game.PlacementError
	require.True(t, errors.As(err, &placeErr))
}

func TestPlacementFailsWithTooFewOpenCells(t *testing.T) {
	// two open cells cannot seat three agents
	maze, err := model.NewMazeWithLayout(2, 2, "1001")
	require.NoError(t, err)
	_, err = game.NewGame(maze, goody(), goody(), baddy(), 0, rand.New(rand.NewSource(1)))
	var placeErr *game.PlacementError
	require.True(t, errors.As(err, &placeErr))
}

func TestPlacementIsSeedDeterministic(t *testing.T) {
	maze := openMaze(t, 5, 5)
	build := func() *game.Game {
		g, err := game.NewGame(maze, goody(), goody(), baddy(), 0, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	for i := range a.Agents {
		require.Equal(t, a.Position[a.Agents[i]], b.Position[b.Agents[i]])
	}
}

func TestPlacementSeatsAgentsOnDistinctOpenCells(t *testing.T) {
	maze, err := model.NewMazeWithLayout(3, 3, "101"+"010"+"101")
	require.NoError(t, err)
	g, err := game.NewGame(maze, goody(), goody(), baddy(), 0, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	seen := map[model.Position]bool{}
	for _, agent := range g.Agents {
		pos := g.Position[agent]
		require.Equal(t, model.SPACE, maze.Cell(pos))
		require.False(t, seen[pos])
		seen[pos] = true
	}
}

func TestDrawAtMaxRoundsAndTerminalFreeze(t *testing.T) {
	g := newTestGame(t, openMaze(t, 5, 5), goody(), goody(), baddy(), 3,
		model.Position{X: 0, Y: 0}, model.Position{X: 4, Y: 4}, model.Position{X: 2, Y: 2})

	status, err := g.DoRound()
	require.NoError(t, err)
	require.Equal(t, game.IN_PLAY, status)
	require.Equal(t, 1, g.Round)

	status, err = g.DoRound()
	require.NoError(t, err)
	require.Equal(t, game.IN_PLAY, status)

	status, err = g.DoRound()
	require.NoError(t, err)
	require.Equal(t, game.DRAW, status)
	require.Equal(t, 3, g.Round)

	// a finished game is frozen
	status, err = g.DoRound()
	require.NoError(t, err)
	require.Equal(t, game.DRAW, status)
	require.Equal(t, 3, g.Round)
}

func TestGoodiesMeetWithinTwoRounds(t *testing.T) {
	g0 := goody(model.UP, model.UP)
	g1 := goody(model.LEFT, model.LEFT)
	g := newTestGame(t, openMaze(t, 3, 3), g0, g1, baddy(), 0,
		model.Position{X: 0, Y: 0}, model.Position{X: 2, Y: 2}, model.Position{X: 1, Y: 1})

	status, err := g.DoRound()
	require.NoError(t, err)
	require.Equal(t, game.IN_PLAY, status)

	status, err = g.DoRound()
	require.NoError(t, err)
	require.Equal(t, game.GOODIES_WIN, status)
	require.Equal(t, 2, g.Round)
	require.Equal(t, g.Position[g.Goody0], g.Position[g.Goody1])
}

func TestGoodyWalksIntoBaddy(t *testing.T) {
	g := newTestGame(t, openMaze(t, 3, 3), goody(model.RIGHT), goody(), baddy(), 0,
		model.Position{X: 0, Y: 0}, model.Position{X: 2, Y: 2}, model.Position{X: 1, Y: 0})

	status, err := g.DoRound()
	require.NoError(t, err)
	require.Equal(t, game.BADDY_WINS, status)
}

func TestBaddyCatchesGoody(t *testing.T) {
	g := newTestGame(t, openMaze(t, 3, 3), goody(), goody(), baddy(model.LEFT), 0,
		model.Position{X: 0, Y: 0}, model.Position{X: 2, Y: 2}, model.Position{X: 1, Y: 0})

	status, err := g.DoRound()
	require.NoError(t, err)
	require.Equal(t, game.BADDY_WINS, status)
	require.Equal(t, model.Position{X: 0, Y: 0}, g.Position[g.Baddy])
}

func TestLaterAgentSeesEarlierMoveSameRound(t *testing.T) {
	// goody1 walks into the cell goody0 moved to earlier this same round
	g0 := goody(model.RIGHT)
	g1 := goody(model.LEFT)
	g := newTestGame(t, openMaze(t, 3, 2), g0, g1, baddy(), 0,
		model.Position{X: 0, Y: 0}, model.Position{X: 2, Y: 0}, model.Position{X: 2, Y: 1})

	status, err := g.DoRound()
	require.NoError(t, err)
	require.Equal(t, game.GOODIES_WIN, status)
	require.Equal(t, model.Position{X: 1, Y: 0}, g.Position[g.Goody0])
}

func TestObstructedMoveIsNoOp(t *testing.T) {
	g := newTestGame(t, openMaze(t, 3, 3), goody(model.LEFT), goody(), baddy(), 0,
		model.Position{X: 0, Y: 0}, model.Position{X: 2, Y: 2}, model.Position{X: 1, Y: 1})

	status, err := g.DoRound()
	require.NoError(t, err)
	require.Equal(t, game.IN_PLAY, status)
	require.Equal(t, model.Position{X: 0, Y: 0}, g.Position[g.Goody0])
	require.False(t, g.Ping)
}

func TestBaddyPingIsHarmlessNoOp(t *testing.T) {
	g := newTestGame(t, openMaze(t, 3, 3), goody(), goody(), baddy(model.PING), 0,
		model.Position{X: 0, Y: 0}, model.Position{X: 2, Y: 2}, model.Position{X: 1, Y: 1})

	status, err := g.DoRound()
	require.NoError(t, err)
	require.Equal(t, game.IN_PLAY, status)
	require.False(t, g.Ping)
	require.Equal(t, model.Position{X: 1, Y: 1}, g.Position[g.Baddy])
}

func TestInvalidMoveIsFatal(t *testing.T) {
	g := newTestGame(t, openMaze(t, 3, 3), goody(model.Move(42)), goody(), baddy(), 0,
		model.Position{X: 0, Y: 0}, model.Position{X: 2, Y: 2}, model.Position{X: 1, Y: 1})

	_, err := g.DoRound()
	var moveErr *game.InvalidMoveError
	require.True(t, errors.As(err, &moveErr))
	require.Equal(t, 0, moveErr.AgentIndex)
	require.Equal(t, model.Move(42), moveErr.Move)
}

func TestPingInfoDeliveredNextRound(t *testing.T) {
	g0 := goody(model.PING)
	g1 := goody()
	b := baddy()
	p0 := model.Position{X: 0, Y: 0}
	p1 := model.Position{X: 2, Y: 2}
	pb := model.Position{X: 1, Y: 1}
	g := newTestGame(t, openMaze(t, 3, 3), g0, g1, b, 0, p0, p1, pb)

	_, err := g.DoRound()
	require.NoError(t, err)
	require.True(t, g.Ping)

	_, err = g.DoRound()
	require.NoError(t, err)
	require.False(t, g.Ping)

	// nobody heard anything in round 1
	require.Nil(t, g0.pings[0])
	require.Nil(t, g1.pings[0])
	require.Nil(t, b.pings[0])

	// in round 2 everyone learns everyone else's relative position, and
	// adding the offset back to the receiver's position reproduces the
	// other agent's position at the start of the round
	positions := map[game.Agent]model.Position{g0: p0, g1: p1, b: pb}
	for agent, info := range map[game.Agent]game.PingInfo{g0: g0.pings[1], g1: g1.pings[1], b: b.pings[1]} {
		require.NotNil(t, info)
		require.Len(t, info, 2)
		for other, rel := range info {
			require.Equal(t, positions[other], positions[agent].Add(rel))
		}
	}
}

func TestPlayRunsToDraw(t *testing.T) {
	g := newTestGame(t, openMaze(t, 5, 5), goody(), goody(), baddy(), 5,
		model.Position{X: 0, Y: 0}, model.Position{X: 4, Y: 4}, model.Position{X: 2, Y: 2})

	hooks := 0
	status, rounds, err := g.Play(func(hg *game.Game) {
		hooks++
		require.True(t, g == hg)
	})
	require.NoError(t, err)
	require.Equal(t, game.DRAW, status)
	require.Equal(t, 5, rounds)
	require.Equal(t, 5, hooks)
}

func TestStatusNames(t *testing.T) {
	require.Equal(t, "not started", game.NOT_STARTED.Name())
	require.Equal(t, "in play", game.IN_PLAY.Name())
	require.Equal(t, "goodies win", game.GOODIES_WIN.Name())
	require.Equal(t, "baddy wins", game.BADDY_WINS.Name())
	require.Equal(t, "draw", game.DRAW.Name())
	require.False(t, game.IN_PLAY.Terminal())
	require.True(t, game.DRAW.Terminal())
}
