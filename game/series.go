package game

import (
	"math/rand"

	"github.com/zucenko/mazehunt/model"
)

// Repeat returns an endless generator of fresh games: same maze, newly
// built agents, new random placement each call.
func Repeat(maze *model.Maze, goody0, goody1, baddy Factory, maxRounds int, rng *rand.Rand) func() (*Game, error) {
	return func() (*Game, error) {
		return NewGame(maze, goody0(), goody1(), baddy(), maxRounds, rng)
	}
}

// ZipSeries returns a finite generator pairing up mazes and factories, one
// game per tuple, as many games as the shortest input. It yields nil once
// exhausted.
func ZipSeries(mazes []*model.Maze, goody0s, goody1s, baddies []Factory, maxRounds int, rng *rand.Rand) func() (*Game, error) {
	n := min(len(mazes), len(goody0s), len(goody1s), len(baddies))
	i := 0
	return func() (*Game, error) {
		if i >= n {
			return nil, nil
		}
		g, err := NewGame(mazes[i], goody0s[i](), goody1s[i](), baddies[i](), maxRounds, rng)
		i++
		return g, err
	}
}
