package service

import (
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

// Agent - picks the next action for the active player from its masked view.
type Agent interface {
	SelectAction(view *entity.GameState, actions []entity.Action) (entity.Action, bool)
}

// RandomAgent - safe for concurrent use, simulations served over HTTP share one agent per seat.
type RandomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent - rng is injected so simulations can be replayed from a seed.
func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	return &RandomAgent{rng: rng}
}

// SelectAction - uniform pick, false when there is nothing to choose from.
func (that *RandomAgent) SelectAction(_ *entity.GameState, actions []entity.Action) (entity.Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}

	that.mu.Lock()
	idx := that.rng.Intn(len(actions)) //nolint: gosec // it's ok
	that.mu.Unlock()

	return actions[idx], true
}
