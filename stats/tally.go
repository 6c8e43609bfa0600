// Package stats counts game outcomes for the batch harnesses.
package stats

import (
	"fmt"

	"github.com/zucenko/mazehunt/game"
)

// Tally is an in-memory outcome counter.
type Tally struct {
	Games       int
	TotalRounds int
	byStatus    map[game.Status]int
}

func NewTally() *Tally {
	return &Tally{byStatus: make(map[game.Status]int)}
}

func (t *Tally) Record(status game.Status, rounds int) {
	t.Games++
	t.TotalRounds += rounds
	t.byStatus[status]++
}

func (t *Tally) Count(status game.Status) int {
	return t.byStatus[status]
}

func (t *Tally) String() string {
	avg := 0.0
	if t.Games > 0 {
		avg = float64(t.TotalRounds) / float64(t.Games)
	}
	return fmt.Sprintf("goodies: %d  baddy: %d  draw: %d  (%d games, avg %.1f rounds)",
		t.Count(game.GOODIES_WIN), t.Count(game.BADDY_WINS), t.Count(game.DRAW), t.Games, avg)
}
