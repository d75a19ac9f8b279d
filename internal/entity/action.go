package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

type ActionType string

const (
	ActionSetShip ActionType = "set_ship"
	ActionShoot   ActionType = "shoot"
)

var (
	ErrUnknownActionType = errors.New("unknown action type")
	ErrMalformedAction   = errors.New("malformed action")
)

// Action - a move of the active player. Implemented by SetShip and Shoot only.
type Action interface {
	Type() ActionType
	// Cells - the grid cells the action refers to.
	Cells() []string

	isAction()
}

// SetShip - places the named ship on a horizontal run of cells.
type SetShip struct {
	Ship     string
	Location []string
}

func (SetShip) Type() ActionType { return ActionSetShip }

func (that SetShip) Cells() []string { return slices.Clone(that.Location) }

func (SetShip) isAction() {}

func (that SetShip) String() string {
	return fmt.Sprintf("Placing ship %s at %v", that.Ship, that.Location)
}

// Shoot - fires at a single cell of the opponent's grid.
type Shoot struct {
	Target string
}

func (Shoot) Type() ActionType { return ActionShoot }

func (that Shoot) Cells() []string { return []string{that.Target} }

func (Shoot) isAction() {}

func (that Shoot) String() string {
	return fmt.Sprintf("Shooting at [%s]", that.Target)
}

// SameAction - structural equality of two actions.
func SameAction(a, b Action) bool {
	switch x := a.(type) {
	case SetShip:
		y, ok := b.(SetShip)
		return ok && x.Ship == y.Ship && slices.Equal(x.Location, y.Location)
	case Shoot:
		y, ok := b.(Shoot)
		return ok && x.Target == y.Target
	default:
		return false
	}
}

// actionJSON is the wire shape shared by both variants.
type actionJSON struct {
	ActionType ActionType `json:"action_type"`
	ShipName   string     `json:"ship_name,omitempty"`
	Location   []string   `json:"location"`
}

func (that SetShip) MarshalJSON() ([]byte, error) {
	return json.Marshal(actionJSON{
		ActionType: ActionSetShip,
		ShipName:   that.Ship,
		Location:   that.Location,
	})
}

func (that Shoot) MarshalJSON() ([]byte, error) {
	return json.Marshal(actionJSON{
		ActionType: ActionShoot,
		Location:   []string{that.Target},
	})
}

// DecodeAction - turns the wire shape back into the matching variant.
func DecodeAction(data []byte) (Action, error) {
	var raw actionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal action: %w", err)
	}

	switch raw.ActionType {
	case ActionSetShip:
		if raw.ShipName == "" {
			return nil, fmt.Errorf("%w: set_ship without ship_name", ErrMalformedAction)
		}

		return SetShip{Ship: raw.ShipName, Location: raw.Location}, nil
	case ActionShoot:
		if len(raw.Location) != 1 {
			return nil, fmt.Errorf("%w: shoot needs exactly one cell, got %d", ErrMalformedAction, len(raw.Location))
		}

		return Shoot{Target: raw.Location[0]}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownActionType, string(raw.ActionType))
	}
}
