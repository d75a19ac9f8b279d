package entity

import (
	"errors"
	"fmt"
)

type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhaseRunning  Phase = "running"
	PhaseFinished Phase = "finished"
)

const PlayersCount = 2

var ErrUnknownPhase = errors.New("unknown game phase")

// Validate - rejects anything outside the closed set of phases.
func (that Phase) Validate() error {
	switch that {
	case PhaseSetup, PhaseRunning, PhaseFinished:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPhase, string(that))
	}
}

type GameState struct {
	ActivePlayer int                       `json:"active_player"`
	Phase        Phase                     `json:"phase"`
	Winner       *int                      `json:"winner,omitempty"`
	Players      [PlayersCount]PlayerState `json:"players"`
}

func NewGameState() *GameState {
	return &GameState{
		ActivePlayer: 0,
		Phase:        PhaseSetup,
		Players: [PlayersCount]PlayerState{
			NewPlayerState("Player 1"),
			NewPlayerState("Player 2"),
		},
	}
}

// Opponent - index of the other player.
func Opponent(idx int) int {
	return 1 - idx
}

func (that *GameState) Active() *PlayerState {
	return &that.Players[that.ActivePlayer]
}

func (that *GameState) IsSetup() bool {
	return that.Phase == PhaseSetup
}

func (that *GameState) IsRunning() bool {
	return that.Phase == PhaseRunning
}

func (that *GameState) IsFinished() bool {
	return that.Phase == PhaseFinished
}

// Clone - deep copy, nothing is shared with the receiver.
func (that *GameState) Clone() *GameState {
	clone := &GameState{
		ActivePlayer: that.ActivePlayer,
		Phase:        that.Phase,
	}

	if that.Winner != nil {
		winner := *that.Winner
		clone.Winner = &winner
	}

	for i := range that.Players {
		clone.Players[i] = that.Players[i].Clone()
	}

	return clone
}

// Game - a stored game: identifier plus the engine state at the last checkpoint.
type Game struct {
	ID    string     `json:"id"`
	Turns int        `json:"turns"`
	State *GameState `json:"state"`
}
