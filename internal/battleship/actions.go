package battleship

import (
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

// ListActions - legal actions of the active player in the current phase.
func (that *Engine) ListActions() []entity.Action {
	active := that.state.Active()

	switch that.state.Phase {
	case entity.PhaseSetup:
		if that.rosterComplete(active) {
			return []entity.Action{}
		}

		return placements(that.roster[len(active.Ships)])
	case entity.PhaseRunning:
		return shots(active)
	case entity.PhaseFinished:
		return []entity.Action{}
	default:
		return []entity.Action{}
	}
}

// placements - every horizontal run of the ship that fits the grid.
func placements(class entity.ShipClass) []entity.Action {
	actions := make([]entity.Action, 0, entity.GridSize*(entity.GridSize-class.Length+1))

	for row := 0; row < entity.GridSize; row++ {
		for col := 0; col+class.Length <= entity.GridSize; col++ {
			actions = append(actions, entity.SetShip{
				Ship:     class.Name,
				Location: entity.HorizontalRun(row, col, class.Length),
			})
		}
	}

	return actions
}

// shots - every cell the player has not fired at yet.
func shots(player *entity.PlayerState) []entity.Action {
	actions := make([]entity.Action, 0, max(0, entity.GridSize*entity.GridSize-len(player.Shots)))

	for _, cell := range entity.AllCells() {
		if !player.HasShot(cell) {
			actions = append(actions, entity.Shoot{Target: cell})
		}
	}

	return actions
}
