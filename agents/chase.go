package agents

import "github.com/zucenko/mazehunt/model"

// chase picks an open direction that strictly shrinks the L1 distance to a
// relative target. Reports false when no open direction gets closer.
func chase(obstruction model.Obstruction, target model.Position) (model.Move, bool) {
	best := model.STAY
	bestNorm := target.L1Norm()
	for _, d := range model.DIRECTIONS {
		if obstruction.Blocked(d) {
			continue
		}
		if n := target.Sub(d.Step()).L1Norm(); n < bestNorm {
			best, bestNorm = d, n
		}
	}
	return best, best != model.STAY
}
