package battleship

import (
	"fmt"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

// validateState - structural consistency of a state handed to SetState.
func (that *Engine) validateState(state *entity.GameState) error {
	if state == nil {
		return fmt.Errorf("%w: nil state", apperror.ErrInvalidState)
	}

	if state.ActivePlayer < 0 || state.ActivePlayer >= entity.PlayersCount {
		return fmt.Errorf("%w: active player %d", apperror.ErrInvalidState, state.ActivePlayer)
	}

	if err := state.Phase.Validate(); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidState, err)
	}

	if err := validateWinner(state); err != nil {
		return err
	}

	for i := range state.Players {
		if err := that.validatePlayer(&state.Players[i]); err != nil {
			return fmt.Errorf("%w: player %d: %w", apperror.ErrInvalidState, i, err)
		}

		if !state.IsSetup() && !that.rosterComplete(&state.Players[i]) {
			return fmt.Errorf("%w: player %d has not placed all ships in phase %s", apperror.ErrInvalidState, i, state.Phase)
		}
	}

	if err := validateHits(state); err != nil {
		return err
	}

	return that.validateProgress(state)
}

// validateHits - every successful shot took exactly one cell off one of the opponent's ships.
func validateHits(state *entity.GameState) error {
	for i, player := range state.Players {
		lost := 0
		for _, ship := range player.Ships {
			lost += ship.Length - len(ship.Location)
		}

		if hits := len(state.Players[entity.Opponent(i)].SuccessfulShots); lost != hits {
			return fmt.Errorf("%w: player %d lost %d ship cells, opponent hit %d", apperror.ErrInvalidState, i, lost, hits)
		}
	}

	return nil
}

// validateProgress - the phase matches the fleets, so the game can always move on.
func (that *Engine) validateProgress(state *entity.GameState) error {
	switch state.Phase {
	case entity.PhaseSetup:
		if that.rosterComplete(&state.Players[0]) && that.rosterComplete(&state.Players[1]) {
			return fmt.Errorf("%w: both fleets placed in phase %s", apperror.ErrInvalidState, state.Phase)
		}

		for i, player := range state.Players {
			if len(player.Shots) > 0 {
				return fmt.Errorf("%w: player %d fired during setup", apperror.ErrInvalidState, i)
			}
		}
	case entity.PhaseRunning:
		for i := range state.Players {
			if state.Players[i].AllSunk() {
				return fmt.Errorf("%w: fleet of player %d is sunk in phase %s", apperror.ErrInvalidState, i, state.Phase)
			}
		}
	case entity.PhaseFinished:
		if loser := entity.Opponent(*state.Winner); !state.Players[loser].AllSunk() {
			return fmt.Errorf("%w: winner %d while player %d still has ships afloat", apperror.ErrInvalidState, *state.Winner, loser)
		}
	}

	return nil
}

func validateWinner(state *entity.GameState) error {
	switch {
	case state.Winner == nil && state.IsFinished():
		return fmt.Errorf("%w: finished game without a winner", apperror.ErrInvalidState)
	case state.Winner != nil && !state.IsFinished():
		return fmt.Errorf("%w: winner set in phase %s", apperror.ErrInvalidState, state.Phase)
	case state.Winner != nil && (*state.Winner < 0 || *state.Winner >= entity.PlayersCount):
		return fmt.Errorf("%w: winner %d", apperror.ErrInvalidState, *state.Winner)
	}

	return nil
}

func (that *Engine) validatePlayer(player *entity.PlayerState) error {
	if len(player.Ships) > len(that.roster) {
		return fmt.Errorf("%d ships, roster has %d", len(player.Ships), len(that.roster))
	}

	for i, ship := range player.Ships {
		class := that.roster[i]
		if ship.Name != class.Name || ship.Length != class.Length {
			return fmt.Errorf("ship %d is %s(%d), expected %s(%d)", i, ship.Name, ship.Length, class.Name, class.Length)
		}

		if len(ship.Location) > ship.Length {
			return fmt.Errorf("%s occupies %d cells", ship.Name, len(ship.Location))
		}

		if err := validateCells(ship.Location); err != nil {
			return fmt.Errorf("%s: %w", ship.Name, err)
		}
	}

	if err := validateCells(player.Shots); err != nil {
		return fmt.Errorf("shots: %w", err)
	}

	for _, hit := range player.SuccessfulShots {
		if !player.HasShot(hit) {
			return fmt.Errorf("successful shot %s was never fired", hit)
		}
	}

	return nil
}

// validateCells - well formed and free of duplicates.
func validateCells(cells []string) error {
	seen := make(map[string]struct{}, len(cells))
	for _, cell := range cells {
		if _, err := entity.ParseCoordinate(cell); err != nil {
			return err
		}

		if _, ok := seen[cell]; ok {
			return fmt.Errorf("duplicate cell %s", cell)
		}

		seen[cell] = struct{}{}
	}

	return nil
}
