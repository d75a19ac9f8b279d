package apperror

import "errors"

var (
	ErrIllegalAction      = errors.New("illegal action")
	ErrUnknownShip        = errors.New("unknown ship")
	ErrInvalidState       = errors.New("invalid game state")
	ErrInvalidPlayer      = errors.New("invalid player index")
	ErrGameFinished       = errors.New("game is already finished")
	ErrGameNotFound       = errors.New("game not found")
	ErrResultNotFound     = errors.New("result not found")
	ErrNoAvailableActions = errors.New("no available actions")
)
