package agents

import (
	"math/rand"
	"time"

	"github.com/zucenko/mazehunt/game"
	"github.com/zucenko/mazehunt/model"
)

func newRng(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// RandomGoody ignores ping information and walks in a random open
// direction, or pings.
type RandomGoody struct {
	game.GoodyBase
	rng *rand.Rand
}

func NewRandomGoody(rng *rand.Rand) *RandomGoody {
	return &RandomGoody{rng: newRng(rng)}
}

func (a *RandomGoody) TakeTurn(obstruction model.Obstruction, _ game.PingInfo) model.Move {
	possibilities := append(obstruction.Free(), model.PING)
	return possibilities[a.rng.Intn(len(possibilities))]
}

// RandomBaddy walks in a random open direction. It cannot ping.
type RandomBaddy struct {
	game.BaddyBase
	rng *rand.Rand
}

func NewRandomBaddy(rng *rand.Rand) *RandomBaddy {
	return &RandomBaddy{rng: newRng(rng)}
}

func (a *RandomBaddy) TakeTurn(obstruction model.Obstruction, _ game.PingInfo) model.Move {
	possibilities := obstruction.Free()
	if len(possibilities) == 0 {
		// boxed in on all four sides
		return model.STAY
	}
	return possibilities[a.rng.Intn(len(possibilities))]
}
