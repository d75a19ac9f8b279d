package pkg

import "github.com/google/uuid"

// GenerateGameID - random identifier of a simulated game.
func GenerateGameID() string {
	return uuid.NewString()
}
