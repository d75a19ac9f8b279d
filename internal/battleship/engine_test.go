package battleship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

// firstFleet - rows A..E, left aligned.
func firstFleet() []entity.SetShip {
	return []entity.SetShip{
		{Ship: "Carrier", Location: []string{"A1", "A2", "A3", "A4", "A5"}},
		{Ship: "Battleship", Location: []string{"B1", "B2", "B3", "B4"}},
		{Ship: "Cruiser", Location: []string{"C1", "C2", "C3"}},
		{Ship: "Submarine", Location: []string{"D1", "D2", "D3"}},
		{Ship: "Destroyer", Location: []string{"E1", "E2"}},
	}
}

// secondFleet - shares the carrier cells with firstFleet, keeps B1 free.
func secondFleet() []entity.SetShip {
	return []entity.SetShip{
		{Ship: "Carrier", Location: []string{"A1", "A2", "A3", "A4", "A5"}},
		{Ship: "Battleship", Location: []string{"F1", "F2", "F3", "F4"}},
		{Ship: "Cruiser", Location: []string{"G1", "G2", "G3"}},
		{Ship: "Submarine", Location: []string{"H1", "H2", "H3"}},
		{Ship: "Destroyer", Location: []string{"J9", "J10"}},
	}
}

func fleetCells(fleet []entity.SetShip) []string {
	var cells []string
	for _, ship := range fleet {
		cells = append(cells, ship.Location...)
	}

	return cells
}

func placeFleets(t *testing.T, engine *Engine) {
	t.Helper()

	for _, action := range firstFleet() {
		require.NoError(t, engine.ApplyAction(action))
	}

	for _, action := range secondFleet() {
		require.NoError(t, engine.ApplyAction(action))
	}

	require.Equal(t, entity.PhaseRunning, engine.Phase())
}

func switchPlacement(t *testing.T, engine *Engine, idx int) {
	t.Helper()

	state := engine.State()
	state.ActivePlayer = idx
	require.NoError(t, engine.SetState(state))
}

func TestNewEngine(t *testing.T) {
	// Given: a new engine
	engine := NewEngine()

	// When: reading its state
	state := engine.State()

	// Then: the game is in setup with empty players
	assert.Equal(t, entity.PhaseSetup, state.Phase)
	assert.Nil(t, state.Winner)
	assert.Equal(t, 0, state.ActivePlayer)

	for _, player := range state.Players {
		assert.Empty(t, player.Ships)
		assert.Empty(t, player.Shots)
		assert.Empty(t, player.SuccessfulShots)
	}

	assert.Equal(t, "Player 1", state.Players[0].Name)
	assert.Equal(t, "Player 2", state.Players[1].Name)
	assert.Equal(t, entity.DefaultRoster(), engine.Roster())
}

func TestEngine_ListActions(t *testing.T) {
	t.Run("Setup lists horizontal carrier runs that fit the grid", func(t *testing.T) {
		// Given: a new engine
		engine := NewEngine()

		// When: listing actions
		actions := engine.ListActions()

		// Then: 10 rows times 6 start columns, none leaving the grid
		require.Len(t, actions, 60)
		assert.Equal(t, entity.SetShip{Ship: "Carrier", Location: []string{"A1", "A2", "A3", "A4", "A5"}}, actions[0])
		assert.Equal(t, entity.SetShip{Ship: "Carrier", Location: []string{"J6", "J7", "J8", "J9", "J10"}}, actions[59])

		for _, action := range actions {
			setShip, ok := action.(entity.SetShip)
			require.True(t, ok)
			require.Equal(t, "Carrier", setShip.Ship)
			require.NoError(t, validateRun(setShip.Location, 5))
		}
	})

	t.Run("Setup moves on to the next roster ship", func(t *testing.T) {
		// Given: the first player placed the carrier
		engine := NewEngine()
		require.NoError(t, engine.ApplyAction(firstFleet()[0]))

		// When: listing actions
		actions := engine.ListActions()

		// Then: battleship runs are offered
		require.Len(t, actions, 70)
		for _, action := range actions {
			assert.Equal(t, "Battleship", action.(entity.SetShip).Ship)
		}
	})

	t.Run("Running lists every cell not shot yet", func(t *testing.T) {
		// Given: a running game where the first player already shot B1
		engine := NewEngine()
		placeFleets(t, engine)
		require.Len(t, engine.ListActions(), 100)
		require.NoError(t, engine.ApplyAction(entity.Shoot{Target: "B1"}))
		require.NoError(t, engine.ApplyAction(entity.Shoot{Target: "F10"}))

		// When: listing actions for the first player again
		actions := engine.ListActions()

		// Then: B1 is not offered any more
		require.Len(t, actions, 99)
		for _, action := range actions {
			assert.NotEqual(t, entity.Shoot{Target: "B1"}, action)
		}
		assert.Equal(t, entity.Shoot{Target: "A1"}, actions[0])
	})

	t.Run("Finished lists nothing", func(t *testing.T) {
		// Given: a finished game
		engine := NewEngine()
		playToWin(t, engine)

		// When: listing actions
		actions := engine.ListActions()

		// Then: there is nothing left to do
		assert.Empty(t, actions)
	})
}

func TestEngine_ApplyAction_Setup(t *testing.T) {
	t.Run("Both rosters complete starts the game with the first player", func(t *testing.T) {
		// Given: a new engine
		engine := NewEngine()

		// When: the first player places the whole roster
		for _, action := range firstFleet() {
			require.NoError(t, engine.ApplyAction(action))
			require.Equal(t, entity.PhaseSetup, engine.Phase())
		}

		// Then: placement moves to the second player
		require.Equal(t, 1, engine.ActivePlayer())

		// When: the second player places the whole roster
		for _, action := range secondFleet() {
			require.Equal(t, entity.PhaseSetup, engine.Phase())
			require.Equal(t, 1, engine.ActivePlayer())
			require.NoError(t, engine.ApplyAction(action))
		}

		// Then: the game is running and the first player moves
		assert.Equal(t, entity.PhaseRunning, engine.Phase())
		assert.Equal(t, 0, engine.ActivePlayer())
	})

	t.Run("Placement does not alternate turns", func(t *testing.T) {
		// Given: a new engine
		engine := NewEngine()

		// When: the first player places two ships
		require.NoError(t, engine.ApplyAction(firstFleet()[0]))
		require.NoError(t, engine.ApplyAction(firstFleet()[1]))

		// Then: the first player is still placing
		state := engine.State()
		assert.Equal(t, 0, state.ActivePlayer)
		assert.Len(t, state.Players[0].Ships, 2)
		assert.Empty(t, state.Players[1].Ships)
	})

	t.Run("Each placement owns its ship", func(t *testing.T) {
		// Given: both players put the carrier on A1..A5
		engine := NewEngine()
		placeFleets(t, engine)

		// When: the first player hits the second player's carrier
		require.NoError(t, engine.ApplyAction(entity.Shoot{Target: "A1"}))

		// Then: only the second player's carrier lost A1
		state := engine.State()
		assert.Equal(t, []string{"A1", "A2", "A3", "A4", "A5"}, state.Players[0].Ships[0].Location)
		assert.Equal(t, []string{"A2", "A3", "A4", "A5"}, state.Players[1].Ships[0].Location)
	})

	t.Run("Rejects invalid placements without changing state", func(t *testing.T) {
		tests := []struct {
			name   string
			action entity.Action
			err    error
		}{
			{
				name:   "nil action",
				action: nil,
				err:    apperror.ErrIllegalAction,
			},
			{
				name:   "unknown ship",
				action: entity.SetShip{Ship: "Rowboat", Location: []string{"A1"}},
				err:    apperror.ErrUnknownShip,
			},
			{
				name:   "out of roster order",
				action: entity.SetShip{Ship: "Destroyer", Location: []string{"A1", "A2"}},
				err:    apperror.ErrIllegalAction,
			},
			{
				name:   "runs off the grid",
				action: entity.SetShip{Ship: "Carrier", Location: []string{"A7", "A8", "A9", "A10", "A11"}},
				err:    apperror.ErrIllegalAction,
			},
			{
				name:   "vertical",
				action: entity.SetShip{Ship: "Carrier", Location: []string{"A1", "B1", "C1", "D1", "E1"}},
				err:    apperror.ErrIllegalAction,
			},
			{
				name:   "too short",
				action: entity.SetShip{Ship: "Carrier", Location: []string{"A1", "A2", "A3", "A4"}},
				err:    apperror.ErrIllegalAction,
			},
			{
				name:   "gap in the run",
				action: entity.SetShip{Ship: "Carrier", Location: []string{"A1", "A2", "A3", "A4", "A6"}},
				err:    apperror.ErrIllegalAction,
			},
			{
				name:   "malformed cell",
				action: entity.SetShip{Ship: "Carrier", Location: []string{"Z1", "Z2", "Z3", "Z4", "Z5"}},
				err:    apperror.ErrIllegalAction,
			},
			{
				name:   "shooting during setup",
				action: entity.Shoot{Target: "A1"},
				err:    apperror.ErrIllegalAction,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// Given: a new engine
				engine := NewEngine()
				before := engine.State()

				// When: applying the action
				err := engine.ApplyAction(tt.action)

				// Then: it is rejected and nothing changed
				require.ErrorIs(t, err, tt.err)
				assert.Equal(t, before, engine.State())
			})
		}
	})

	t.Run("Rejects placement once the roster is complete", func(t *testing.T) {
		// Given: the first player placed everything, placement was handed back manually
		engine := NewEngine()
		for _, action := range firstFleet() {
			require.NoError(t, engine.ApplyAction(action))
		}
		switchPlacement(t, engine, 0)

		// When: the first player tries to place another carrier
		err := engine.ApplyAction(firstFleet()[0])

		// Then: the action is illegal and no action is offered
		require.ErrorIs(t, err, apperror.ErrIllegalAction)
		assert.Empty(t, engine.ListActions())
	})
}

func TestEngine_ApplyAction_Running(t *testing.T) {
	t.Run("Turns alternate strictly", func(t *testing.T) {
		// Given: a running game
		engine := NewEngine()
		placeFleets(t, engine)

		// When: misses are fired one after another
		misses := []string{"J1", "J1", "J2", "J2", "J3", "J3"}
		for i, cell := range misses {
			require.Equal(t, i%2, engine.ActivePlayer())
			require.NoError(t, engine.ApplyAction(entity.Shoot{Target: cell}))
		}

		// Then: the first player is to move again
		assert.Equal(t, 0, engine.ActivePlayer())
	})

	t.Run("Hit is recorded and removed from the ship", func(t *testing.T) {
		// Given: a running game
		engine := NewEngine()
		placeFleets(t, engine)

		// When: the first player hits F2 of the second player's battleship
		require.NoError(t, engine.ApplyAction(entity.Shoot{Target: "F2"}))

		// Then: the hit is bookkept on both sides
		state := engine.State()
		assert.Equal(t, []string{"F2"}, state.Players[0].Shots)
		assert.Equal(t, []string{"F2"}, state.Players[0].SuccessfulShots)
		assert.Equal(t, []string{"F1", "F3", "F4"}, state.Players[1].Ships[1].Location)
		assert.Equal(t, 1, state.ActivePlayer)
	})

	t.Run("Miss is recorded as a shot only", func(t *testing.T) {
		// Given: a running game
		engine := NewEngine()
		placeFleets(t, engine)

		// When: the first player misses
		require.NoError(t, engine.ApplyAction(entity.Shoot{Target: "B1"}))

		// Then: only the shot list grows
		state := engine.State()
		assert.Equal(t, []string{"B1"}, state.Players[0].Shots)
		assert.Empty(t, state.Players[0].SuccessfulShots)
		assert.Equal(t, fleetCells(secondFleet()), fleetCells(toSetShips(state.Players[1].Ships)))
	})

	t.Run("Rejects invalid shots without changing state", func(t *testing.T) {
		tests := []struct {
			name   string
			action entity.Action
		}{
			{name: "already shot", action: entity.Shoot{Target: "J1"}},
			{name: "off the grid", action: entity.Shoot{Target: "K1"}},
			{name: "column eleven", action: entity.Shoot{Target: "A11"}},
			{name: "empty target", action: entity.Shoot{Target: ""}},
			{name: "placement while running", action: firstFleet()[0]},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// Given: a running game where the first player already shot J1
				engine := NewEngine()
				placeFleets(t, engine)
				require.NoError(t, engine.ApplyAction(entity.Shoot{Target: "J1"}))
				require.NoError(t, engine.ApplyAction(entity.Shoot{Target: "J1"}))
				before := engine.State()

				// When: applying the action
				err := engine.ApplyAction(tt.action)

				// Then: it is rejected and nothing changed
				require.ErrorIs(t, err, apperror.ErrIllegalAction)
				assert.Equal(t, before, engine.State())
			})
		}
	})

	t.Run("Sinking the whole fleet finishes the game", func(t *testing.T) {
		// Given: a running game
		engine := NewEngine()

		// When: the first player sinks every ship of the second player
		playToWin(t, engine)

		// Then: the first player won and keeps the turn
		state := engine.State()
		assert.Equal(t, entity.PhaseFinished, state.Phase)
		require.NotNil(t, state.Winner)
		assert.Equal(t, 0, *state.Winner)
		assert.Equal(t, 0, state.ActivePlayer)
		assert.True(t, state.Players[1].AllSunk())
		assert.ElementsMatch(t, fleetCells(secondFleet()), state.Players[0].SuccessfulShots)
	})

	t.Run("Rejects every action once finished", func(t *testing.T) {
		// Given: a finished game
		engine := NewEngine()
		playToWin(t, engine)

		// When: shooting again
		err := engine.ApplyAction(entity.Shoot{Target: "J5"})

		// Then: the game is over
		require.ErrorIs(t, err, apperror.ErrIllegalAction)
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestEngine_OverlappingFleetsStall(t *testing.T) {
	// Given: both players stack the battleship on top of the carrier
	overlapping := firstFleet()
	overlapping[1].Location = []string{"A1", "A2", "A3", "A4"}

	engine := NewEngine()
	for _, action := range append(overlapping, overlapping...) {
		require.NoError(t, engine.ApplyAction(action))
	}
	require.Equal(t, entity.PhaseRunning, engine.Phase())

	// When: both players fire at every cell
	for _, cell := range entity.AllCells() {
		require.NoError(t, engine.ApplyAction(entity.Shoot{Target: cell}))
		require.NoError(t, engine.ApplyAction(entity.Shoot{Target: cell}))
	}

	// Then: the hidden battleship cells survive and nothing is left to do
	state := engine.State()
	assert.Equal(t, entity.PhaseRunning, state.Phase)
	assert.Nil(t, state.Winner)
	assert.Equal(t, []string{"A1", "A2", "A3", "A4"}, state.Players[1].Ships[1].Location)
	assert.Empty(t, engine.ListActions())
}

func TestEngine_EndToEnd(t *testing.T) {
	// Given: both players place the carrier on A1..A5 first
	engine := NewEngine()
	require.NoError(t, engine.ApplyAction(firstFleet()[0]))
	switchPlacement(t, engine, 1)
	require.NoError(t, engine.ApplyAction(secondFleet()[0]))
	switchPlacement(t, engine, 0)

	// When: each places the remaining four ships
	for _, action := range firstFleet()[1:] {
		require.NoError(t, engine.ApplyAction(action))
	}
	require.Equal(t, 1, engine.ActivePlayer())
	for _, action := range secondFleet()[1:] {
		require.NoError(t, engine.ApplyAction(action))
	}

	// Then: the game runs with the first player to move
	require.Equal(t, entity.PhaseRunning, engine.Phase())
	require.Equal(t, 0, engine.ActivePlayer())

	// When: the first player misses on B1
	require.NoError(t, engine.ApplyAction(entity.Shoot{Target: "B1"}))

	// Then: the second player is to move
	require.Equal(t, 1, engine.ActivePlayer())

	// When: the first player sinks everything while the second only misses
	misses := missCells()
	for i, target := range fleetCells(secondFleet()) {
		require.NoError(t, engine.ApplyAction(entity.Shoot{Target: misses[i]}))
		require.NoError(t, engine.ApplyAction(entity.Shoot{Target: target}))
	}

	// Then: the first player wins
	state := engine.State()
	require.Equal(t, entity.PhaseFinished, state.Phase)
	require.NotNil(t, state.Winner)
	assert.Equal(t, 0, *state.Winner)
	assert.Len(t, state.Players[0].Shots, 18)
	assert.Len(t, state.Players[0].SuccessfulShots, 17)
	assert.Empty(t, state.Players[1].SuccessfulShots)
}

func TestEngine_PlayerView(t *testing.T) {
	t.Run("Hides the opponent's ships only", func(t *testing.T) {
		// Given: a running game with one hit on the second player
		engine := NewEngine()
		placeFleets(t, engine)
		require.NoError(t, engine.ApplyAction(entity.Shoot{Target: "F1"}))

		// When: the first player looks at the game
		view, err := engine.PlayerView(0)
		require.NoError(t, err)

		// Then: the second player's ships have no cells, the first player's are intact
		for i, ship := range view.Players[1].Ships {
			assert.Equal(t, entity.DefaultRoster()[i].Name, ship.Name)
			assert.Empty(t, ship.Location)
		}
		assert.Equal(t, fleetCells(firstFleet()), fleetCells(toSetShips(view.Players[0].Ships)))
		assert.Equal(t, []string{"F1"}, view.Players[0].SuccessfulShots)
	})

	t.Run("Does not touch the engine state", func(t *testing.T) {
		// Given: a running game
		engine := NewEngine()
		placeFleets(t, engine)

		// When: both players look at the game
		_, err := engine.PlayerView(0)
		require.NoError(t, err)
		_, err = engine.PlayerView(1)
		require.NoError(t, err)

		// Then: the full state still carries every ship cell
		state := engine.State()
		assert.Equal(t, fleetCells(firstFleet()), fleetCells(toSetShips(state.Players[0].Ships)))
		assert.Equal(t, fleetCells(secondFleet()), fleetCells(toSetShips(state.Players[1].Ships)))
	})

	t.Run("Rejects unknown players", func(t *testing.T) {
		engine := NewEngine()

		_, err := engine.PlayerView(2)
		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)

		_, err = engine.PlayerView(-1)
		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
	})
}

func TestEngine_State(t *testing.T) {
	t.Run("Returned state is a copy", func(t *testing.T) {
		// Given: a running game
		engine := NewEngine()
		placeFleets(t, engine)

		// When: the caller mutates the returned state
		state := engine.State()
		state.Players[1].Ships[0].Location[0] = "J10"
		state.Players[0].Shots = append(state.Players[0].Shots, "A1")
		state.Phase = entity.PhaseFinished

		// Then: the engine is unaffected
		fresh := engine.State()
		assert.Equal(t, "A1", fresh.Players[1].Ships[0].Location[0])
		assert.Empty(t, fresh.Players[0].Shots)
		assert.Equal(t, entity.PhaseRunning, fresh.Phase)
	})

	t.Run("SetState accepts a finished game", func(t *testing.T) {
		// Given: a game the first player won
		engine := NewEngine()
		playToWin(t, engine)
		finished := engine.State()

		// When: restoring it on a fresh engine
		restored := NewEngine()
		require.NoError(t, restored.SetState(finished))

		// Then: nothing is left to do
		assert.Equal(t, finished, restored.State())
		assert.Empty(t, restored.ListActions())
	})

	t.Run("SetState restores a checkpoint", func(t *testing.T) {
		// Given: a checkpoint of a running game
		engine := NewEngine()
		placeFleets(t, engine)
		checkpoint := engine.State()
		require.NoError(t, engine.ApplyAction(entity.Shoot{Target: "A1"}))

		// When: restoring the checkpoint
		require.NoError(t, engine.SetState(checkpoint))

		// Then: the shot is gone and the first player moves again
		assert.Equal(t, checkpoint, engine.State())
		assert.Len(t, engine.ListActions(), 100)

		// And: later changes to the checkpoint do not leak into the engine
		checkpoint.Players[0].Shots = append(checkpoint.Players[0].Shots, "B7")
		assert.Empty(t, engine.State().Players[0].Shots)
	})
}

func TestEngine_SetState_Invalid(t *testing.T) {
	winner := 0
	outOfRange := 2

	running := func() *entity.GameState {
		engine := NewEngine()
		placeFleets(t, engine)
		return engine.State()
	}

	tests := []struct {
		name   string
		mutate func() *entity.GameState
	}{
		{
			name:   "nil state",
			mutate: func() *entity.GameState { return nil },
		},
		{
			name: "active player out of range",
			mutate: func() *entity.GameState {
				state := running()
				state.ActivePlayer = 2
				return state
			},
		},
		{
			name: "unknown phase",
			mutate: func() *entity.GameState {
				state := running()
				state.Phase = "paused"
				return state
			},
		},
		{
			name: "winner without finished phase",
			mutate: func() *entity.GameState {
				state := running()
				state.Winner = &winner
				return state
			},
		},
		{
			name: "finished without winner",
			mutate: func() *entity.GameState {
				state := running()
				state.Phase = entity.PhaseFinished
				return state
			},
		},
		{
			name: "winner out of range",
			mutate: func() *entity.GameState {
				state := running()
				state.Phase = entity.PhaseFinished
				state.Winner = &outOfRange
				return state
			},
		},
		{
			name: "running with incomplete roster",
			mutate: func() *entity.GameState {
				state := running()
				state.Players[1].Ships = state.Players[1].Ships[:4]
				return state
			},
		},
		{
			name: "ships out of roster order",
			mutate: func() *entity.GameState {
				state := running()
				ships := state.Players[0].Ships
				ships[0], ships[1] = ships[1], ships[0]
				return state
			},
		},
		{
			name: "ship longer than its class",
			mutate: func() *entity.GameState {
				state := running()
				state.Players[0].Ships[4].Location = []string{"E1", "E2", "E3"}
				return state
			},
		},
		{
			name: "malformed shot",
			mutate: func() *entity.GameState {
				state := running()
				state.Players[0].Shots = []string{"Q42"}
				return state
			},
		},
		{
			name: "duplicate shot",
			mutate: func() *entity.GameState {
				state := running()
				state.Players[0].Shots = []string{"A1", "A1"}
				return state
			},
		},
		{
			name: "setup with both fleets placed",
			mutate: func() *entity.GameState {
				state := running()
				state.Phase = entity.PhaseSetup
				return state
			},
		},
		{
			name: "shots fired during setup",
			mutate: func() *entity.GameState {
				state := entity.NewGameState()
				state.Players[0].Shots = []string{"A1"}
				return state
			},
		},
		{
			name: "ship cells lost without a hit",
			mutate: func() *entity.GameState {
				state := running()
				state.Players[1].Ships[0].Location = []string{"A2", "A3", "A4", "A5"}
				return state
			},
		},
		{
			name: "running with a sunk fleet",
			mutate: func() *entity.GameState {
				state := running()
				state.Players[0].Shots = fleetCells(secondFleet())
				state.Players[0].SuccessfulShots = fleetCells(secondFleet())
				for i := range state.Players[1].Ships {
					state.Players[1].Ships[i].Location = []string{}
				}
				return state
			},
		},
		{
			name: "finished while the loser is afloat",
			mutate: func() *entity.GameState {
				state := running()
				state.Phase = entity.PhaseFinished
				state.Winner = &winner
				return state
			},
		},
		{
			name: "successful shot never fired",
			mutate: func() *entity.GameState {
				state := running()
				state.Players[0].SuccessfulShots = []string{"A1"}
				return state
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a fresh engine and an inconsistent state
			engine := NewEngine()
			before := engine.State()

			// When: setting the state
			err := engine.SetState(tt.mutate())

			// Then: it is rejected and the engine keeps its state
			require.ErrorIs(t, err, apperror.ErrInvalidState)
			assert.Equal(t, before, engine.State())
		})
	}
}

// playToWin - places both fleets, then the first player sinks the second fleet
// while the second player keeps missing.
func playToWin(t *testing.T, engine *Engine) {
	t.Helper()

	placeFleets(t, engine)

	misses := missCells()
	targets := fleetCells(secondFleet())
	for i, target := range targets {
		require.NoError(t, engine.ApplyAction(entity.Shoot{Target: target}))
		if i < len(targets)-1 {
			require.NoError(t, engine.ApplyAction(entity.Shoot{Target: misses[i]}))
		}
	}

	require.Equal(t, entity.PhaseFinished, engine.Phase())
}

// missCells - cells of rows F..J, never occupied by firstFleet.
func missCells() []string {
	var cells []string
	for row := 5; row < entity.GridSize; row++ {
		for col := 0; col < entity.GridSize; col++ {
			cells = append(cells, entity.FormatCoordinate(row, col))
		}
	}

	return cells
}

func toSetShips(ships []entity.Ship) []entity.SetShip {
	out := make([]entity.SetShip, 0, len(ships))
	for _, ship := range ships {
		out = append(out, entity.SetShip{Ship: ship.Name, Location: ship.Location})
	}

	return out
}
