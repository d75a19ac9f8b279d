package battleship

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

// Engine - rules of a single game: owns the roster and the current state.
// It is not safe for concurrent use.
type Engine struct {
	roster []entity.ShipClass
	state  *entity.GameState
}

func NewEngine() *Engine {
	return &Engine{
		roster: entity.DefaultRoster(),
		state:  entity.NewGameState(),
	}
}

// Roster - the ships each player places, in placement order.
func (that *Engine) Roster() []entity.ShipClass {
	return slices.Clone(that.roster)
}

// State - the complete, unmasked game state.
func (that *Engine) State() *entity.GameState {
	return that.state.Clone()
}

// SetState - replaces the game state after checking it is consistent.
func (that *Engine) SetState(state *entity.GameState) error {
	if err := that.validateState(state); err != nil {
		return err
	}

	that.state = state.Clone()

	return nil
}

func (that *Engine) ActivePlayer() int {
	return that.state.ActivePlayer
}

func (that *Engine) Phase() entity.Phase {
	return that.state.Phase
}

// PlayerView - copy of the state where the opponent's ship locations are hidden.
func (that *Engine) PlayerView(idx int) (*entity.GameState, error) {
	if idx < 0 || idx >= entity.PlayersCount {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, idx)
	}

	view := that.state.Clone()

	opponent := &view.Players[entity.Opponent(idx)]
	for i := range opponent.Ships {
		opponent.Ships[i].Location = []string{}
	}

	return view, nil
}

func (that *Engine) shipClass(name string) (entity.ShipClass, bool) {
	for _, class := range that.roster {
		if class.Name == name {
			return class, true
		}
	}

	return entity.ShipClass{}, false
}

func (that *Engine) rosterComplete(player *entity.PlayerState) bool {
	return len(player.Ships) == len(that.roster)
}
