// Package agents holds example strategies for the mazehunt engine. None of
// them are clever - they exist to exercise the agent contract and to give
// the harnesses something to run.
package agents

import (
	"github.com/zucenko/mazehunt/game"
	"github.com/zucenko/mazehunt/model"
)

// StaticGoody never moves from its initial position.
type StaticGoody struct {
	game.GoodyBase
}

func NewStaticGoody() *StaticGoody { return &StaticGoody{} }

func (*StaticGoody) TakeTurn(model.Obstruction, game.PingInfo) model.Move {
	return model.STAY
}

// StaticBaddy never moves from its initial position.
type StaticBaddy struct {
	game.BaddyBase
}

func NewStaticBaddy() *StaticBaddy { return &StaticBaddy{} }

func (*StaticBaddy) TakeTurn(model.Obstruction, game.PingInfo) model.Move {
	return model.STAY
}
