package agents

import (
	"math/rand"

	"github.com/zucenko/mazehunt/game"
	"github.com/zucenko/mazehunt/model"
)

// HunterBaddy wanders randomly until somebody pings, then closes in on the
// nearest goody using the revealed offsets. Baddies cannot ping themselves,
// so the intel is a gift from the goodies.
type HunterBaddy struct {
	game.BaddyBase
	rng  *rand.Rand
	prey *model.Position // believed offset to the nearest goody
}

func NewHunterBaddy(rng *rand.Rand) *HunterBaddy {
	return &HunterBaddy{rng: newRng(rng)}
}

func (a *HunterBaddy) TakeTurn(obstruction model.Obstruction, ping game.PingInfo) model.Move {
	if ping != nil {
		for other, rel := range ping {
			if !other.CanPing() {
				continue
			}
			if a.prey == nil || rel.L1Norm() < a.prey.L1Norm() {
				r := rel
				a.prey = &r
			}
		}
	}

	if a.prey != nil {
		if move, ok := chase(obstruction, *a.prey); ok {
			next := a.prey.Sub(move.Step())
			a.prey = &next
			if next.L1Norm() == 0 {
				// either we caught it or it slipped away; start over
				a.prey = nil
			}
			return move
		}
		a.prey = nil
	}

	free := obstruction.Free()
	if len(free) == 0 {
		return model.STAY
	}
	return free[a.rng.Intn(len(free))]
}
