package agents

import (
	"fmt"
	"math/rand"

	"github.com/zucenko/mazehunt/game"
)

// GoodyFactory maps a config name to a goody factory.
func GoodyFactory(name string, rng *rand.Rand) (game.Factory, error) {
	switch name {
	case "static":
		return func() game.Agent { return NewStaticGoody() }, nil
	case "random":
		return func() game.Agent { return NewRandomGoody(rng) }, nil
	case "tracker":
		return func() game.Agent { return NewTrackerGoody(rng) }, nil
	case "seeker":
		return func() game.Agent { return NewSeekerGoody(rng) }, nil
	default:
		return nil, fmt.Errorf("unknown goody %q (static, random, tracker, seeker)", name)
	}
}

// BaddyFactory maps a config name to a baddy factory.
func BaddyFactory(name string, rng *rand.Rand) (game.Factory, error) {
	switch name {
	case "static":
		return func() game.Agent { return NewStaticBaddy() }, nil
	case "random":
		return func() game.Agent { return NewRandomBaddy(rng) }, nil
	case "hunter":
		return func() game.Agent { return NewHunterBaddy(rng) }, nil
	default:
		return nil, fmt.Errorf("unknown baddy %q (static, random, hunter)", name)
	}
}
