package game

import "github.com/zucenko/mazehunt/model"

// PingInfo maps every other agent in the game to that agent's position
// relative to the receiver (other minus own), frozen at the start of the
// round. It is nil unless somebody pinged the previous round.
type PingInfo map[Agent]model.Position

// Agent is implemented by goodies and baddies.
//
// TakeTurn receives the wall readout for the agent's current position and,
// after a ping, the relative positions of the other agents. It must return
// one of the six moves. Agents may keep private state between turns, the
// engine never looks at it.
//
// CanPing splits the two sides: goodies may PING, baddies may not. A baddy
// returning PING anyway loses its turn, same as STAY.
//
// Agents must be comparable values (in practice: pointers), they key the
// engine's position table.
type Agent interface {
	TakeTurn(obstruction model.Obstruction, ping PingInfo) model.Move
	CanPing() bool
}

// Factory builds a fresh stateful agent for one game.
type Factory func() Agent

// GoodyBase and BaddyBase are embedded by concrete strategies to pick
// their side.
type GoodyBase struct{}

func (GoodyBase) CanPing() bool { return true }

type BaddyBase struct{}

func (BaddyBase) CanPing() bool { return false }
