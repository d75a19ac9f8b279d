package entity

import "time"

type Outcome string

const (
	OutcomeWon Outcome = "won"
	// OutcomeStalled - the game ran out of legal actions without a winner,
	// which happens when placements overlap and a shared cell can only be hit once.
	OutcomeStalled Outcome = "stalled"
)

// MatchResult - summary of a played game, stored in the results ledger.
type MatchResult struct {
	GameID     string    `json:"game_id"`
	Outcome    Outcome   `json:"outcome"`
	Winner     *int      `json:"winner,omitempty"`
	Turns      int       `json:"turns"`
	Shots      [2]int    `json:"shots"`
	Hits       [2]int    `json:"hits"`
	FinishedAt time.Time `json:"finished_at"`
}

// NewMatchResult - summarises the last state of a game.
func NewMatchResult(gameID string, state *GameState, turns int, finishedAt time.Time) *MatchResult {
	result := &MatchResult{
		GameID:     gameID,
		Outcome:    OutcomeStalled,
		Turns:      turns,
		FinishedAt: finishedAt,
	}

	if state.IsFinished() && state.Winner != nil {
		winner := *state.Winner
		result.Outcome = OutcomeWon
		result.Winner = &winner
	}

	for i, player := range state.Players {
		result.Shots[i] = len(player.Shots)
		result.Hits[i] = len(player.SuccessfulShots)
	}

	return result
}

// BatchSummary - tally of a batch of simulated games.
type BatchSummary struct {
	Games   int    `json:"games"`
	Wins    [2]int `json:"wins"`
	Stalled int    `json:"stalled"`
}

func (that *BatchSummary) Add(result *MatchResult) {
	that.Games++

	if result.Winner == nil {
		that.Stalled++
		return
	}

	that.Wins[*result.Winner]++
}
