package entity

import "slices"

type PlayerState struct {
	Name            string   `json:"name"`
	Ships           []Ship   `json:"ships"`
	Shots           []string `json:"shots"`
	SuccessfulShots []string `json:"successful_shots"`
}

func NewPlayerState(name string) PlayerState {
	return PlayerState{
		Name:            name,
		Ships:           []Ship{},
		Shots:           []string{},
		SuccessfulShots: []string{},
	}
}

func (that *PlayerState) HasShot(cell string) bool {
	return slices.Contains(that.Shots, cell)
}

// AllSunk - true when every placed ship has lost all of its cells.
func (that *PlayerState) AllSunk() bool {
	for i := range that.Ships {
		if !that.Ships[i].IsSunk() {
			return false
		}
	}

	return true
}

func (that PlayerState) Clone() PlayerState {
	ships := make([]Ship, len(that.Ships))
	for i, ship := range that.Ships {
		ships[i] = ship.Clone()
	}

	return PlayerState{
		Name:            that.Name,
		Ships:           ships,
		Shots:           append([]string{}, that.Shots...),
		SuccessfulShots: append([]string{}, that.SuccessfulShots...),
	}
}
