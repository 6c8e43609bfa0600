package agents

import (
	"math/rand"

	"github.com/zucenko/mazehunt/game"
	"github.com/zucenko/mazehunt/model"
)

// how many moves a seeker trusts old ping intel before asking again
const SEEKER_REFRESH = 8

// SeekerGoody pings to learn where the other goody is, then walks greedily
// towards it, refreshing its intel when it goes stale. It keeps the
// believed offset up to date as it moves; the other goody moving is what
// makes the intel rot.
type SeekerGoody struct {
	game.GoodyBase
	rng       *rand.Rand
	intel     *model.Position // believed offset to the other goody
	sincePing int
}

func NewSeekerGoody(rng *rand.Rand) *SeekerGoody {
	return &SeekerGoody{rng: newRng(rng)}
}

func (a *SeekerGoody) TakeTurn(obstruction model.Obstruction, ping game.PingInfo) model.Move {
	if ping != nil {
		for other, rel := range ping {
			if other.CanPing() {
				r := rel
				a.intel = &r
				a.sincePing = 0
			}
		}
	}

	if a.intel == nil {
		return model.PING
	}
	a.sincePing++
	if a.intel.L1Norm() == 0 || a.sincePing > SEEKER_REFRESH {
		a.intel = nil
		return model.PING
	}

	if move, ok := chase(obstruction, *a.intel); ok {
		next := a.intel.Sub(move.Step())
		a.intel = &next
		return move
	}

	// walled off in every useful direction, wander and try again
	free := obstruction.Free()
	if len(free) == 0 {
		return model.STAY
	}
	move := free[a.rng.Intn(len(free))]
	next := a.intel.Sub(move.Step())
	a.intel = &next
	return move
}
