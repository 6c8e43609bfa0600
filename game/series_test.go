package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazehunt/game"
	"github.com/zucenko/mazehunt/model"
)

func countingFactory(side func() game.Agent, counter *int) game.Factory {
	return func() game.Agent {
		*counter++
		return side()
	}
}

func TestRepeatBuildsFreshGames(t *testing.T) {
	maze := openMaze(t, 5, 5)
	built := 0
	f0 := countingFactory(func() game.Agent { return goody() }, &built)
	f1 := countingFactory(func() game.Agent { return goody() }, &built)
	fb := countingFactory(func() game.Agent { return baddy() }, &built)

	next := game.Repeat(maze, f0, f1, fb, 100, rand.New(rand.NewSource(1)))

	a, err := next()
	require.NoError(t, err)
	b, err := next()
	require.NoError(t, err)

	require.True(t, a != b)
	require.True(t, a.Goody0 != b.Goody0)
	require.True(t, a.Baddy != b.Baddy)
	require.Equal(t, 6, built)
	require.Equal(t, game.NOT_STARTED, b.Status)
}

func TestZipSeriesStopsAtShortestInput(t *testing.T) {
	m1 := openMaze(t, 4, 4)
	m2 := openMaze(t, 5, 5)
	g := func() game.Agent { return goody() }
	b := func() game.Agent { return baddy() }

	next := game.ZipSeries(
		[]*model.Maze{m1, m2},
		[]game.Factory{g, g, g},
		[]game.Factory{g, g},
		[]game.Factory{b, b, b},
		100, rand.New(rand.NewSource(1)))

	first, err := next()
	require.NoError(t, err)
	require.NotNil(t, first)
	require.Equal(t, m1, first.Maze)

	second, err := next()
	require.NoError(t, err)
	require.NotNil(t, second)
	require.Equal(t, m2, second.Maze)

	done, err := next()
	require.NoError(t, err)
	require.Nil(t, done)
}
