package battleship

import (
	"fmt"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

// ApplyAction - validates the action against the current state and applies it.
// The state is left untouched when an error is returned.
func (that *Engine) ApplyAction(action entity.Action) error {
	if action == nil {
		return fmt.Errorf("%w: nil action", apperror.ErrIllegalAction)
	}

	if that.state.IsFinished() {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalAction, apperror.ErrGameFinished)
	}

	switch act := action.(type) {
	case entity.SetShip:
		class, err := that.validateSetShip(act)
		if err != nil {
			return err
		}

		that.setShip(class, act.Location)
	case entity.Shoot:
		if err := that.validateShoot(act); err != nil {
			return err
		}

		that.shoot(act.Target)
	default:
		return fmt.Errorf("%w: %w: %T", apperror.ErrIllegalAction, entity.ErrUnknownActionType, action)
	}

	if that.state.IsRunning() && action.Type() == entity.ActionShoot {
		that.state.ActivePlayer = entity.Opponent(that.state.ActivePlayer)
	}

	return nil
}

func (that *Engine) validateSetShip(act entity.SetShip) (entity.ShipClass, error) {
	if !that.state.IsSetup() {
		return entity.ShipClass{}, fmt.Errorf("%w: cannot place ships in phase %s", apperror.ErrIllegalAction, that.state.Phase)
	}

	class, ok := that.shipClass(act.Ship)
	if !ok {
		return entity.ShipClass{}, fmt.Errorf("%w: %q", apperror.ErrUnknownShip, act.Ship)
	}

	active := that.state.Active()
	if that.rosterComplete(active) {
		return entity.ShipClass{}, fmt.Errorf("%w: %s has placed all ships", apperror.ErrIllegalAction, active.Name)
	}

	if next := that.roster[len(active.Ships)]; next.Name != class.Name {
		return entity.ShipClass{}, fmt.Errorf("%w: expected %s, got %s", apperror.ErrIllegalAction, next.Name, class.Name)
	}

	if err := validateRun(act.Location, class.Length); err != nil {
		return entity.ShipClass{}, fmt.Errorf("%w: %w", apperror.ErrIllegalAction, err)
	}

	return class, nil
}

// validateRun - location must be length cells of one row, left to right, inside the grid.
func validateRun(location []string, length int) error {
	if len(location) != length {
		return fmt.Errorf("location has %d cells, ship needs %d", len(location), length)
	}

	var first entity.Coordinate
	for i, cell := range location {
		coord, err := entity.ParseCoordinate(cell)
		if err != nil {
			return err
		}

		if i == 0 {
			first = coord
			continue
		}

		if coord.Row != first.Row || coord.Col != first.Col+i {
			return fmt.Errorf("location %v is not a horizontal run", location)
		}
	}

	return nil
}

func (that *Engine) validateShoot(act entity.Shoot) error {
	if !that.state.IsRunning() {
		return fmt.Errorf("%w: cannot shoot in phase %s", apperror.ErrIllegalAction, that.state.Phase)
	}

	if _, err := entity.ParseCoordinate(act.Target); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalAction, err)
	}

	if active := that.state.Active(); active.HasShot(act.Target) {
		return fmt.Errorf("%w: %s already shot at %s", apperror.ErrIllegalAction, active.Name, act.Target)
	}

	return nil
}

func (that *Engine) setShip(class entity.ShipClass, location []string) {
	active := that.state.Active()
	active.Ships = append(active.Ships, entity.NewShip(class, location))

	opponentIdx := entity.Opponent(that.state.ActivePlayer)
	opponent := &that.state.Players[opponentIdx]

	switch {
	case that.rosterComplete(active) && that.rosterComplete(opponent):
		// first turn of the running phase always goes to the first player
		that.state.Phase = entity.PhaseRunning
		that.state.ActivePlayer = 0
	case that.rosterComplete(active):
		that.state.ActivePlayer = opponentIdx
	}
}

func (that *Engine) shoot(target string) {
	active := that.state.Active()
	active.Shots = append(active.Shots, target)

	shooter := that.state.ActivePlayer
	opponent := &that.state.Players[entity.Opponent(shooter)]

	// overlapping ships: the first one placed takes the hit
	for i := range opponent.Ships {
		if opponent.Ships[i].Hit(target) {
			active.SuccessfulShots = append(active.SuccessfulShots, target)
			break
		}
	}

	if opponent.AllSunk() {
		that.state.Phase = entity.PhaseFinished
		that.state.Winner = &shooter
	}
}
