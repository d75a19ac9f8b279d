package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/battleship-backend/internal/battleship"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

// GetGame - the last stored checkpoint, unmasked.
func (that *Simulator) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	if that.gameRepo == nil {
		return nil, ErrCheckpointsDisabled
	}

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *Simulator) DeleteGame(ctx context.Context, id string) error {
	if that.gameRepo == nil {
		return ErrCheckpointsDisabled
	}

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// GetPlayerView - the checkpoint as seen by player idx.
func (that *Simulator) GetPlayerView(ctx context.Context, id string, idx int) (*entity.GameState, error) {
	engine, err := that.restore(ctx, id)
	if err != nil {
		return nil, err
	}

	view, err := engine.PlayerView(idx)
	if err != nil {
		return nil, fmt.Errorf("failed to build player view: %w", err)
	}

	return view, nil
}

// GetActions - legal actions of the mover of a stored game.
func (that *Simulator) GetActions(ctx context.Context, id string) ([]entity.Action, error) {
	engine, err := that.restore(ctx, id)
	if err != nil {
		return nil, err
	}

	return engine.ListActions(), nil
}

func (that *Simulator) GetResult(ctx context.Context, gameID string) (*entity.MatchResult, error) {
	if that.resultRepo == nil {
		return nil, ErrResultsDisabled
	}

	result, err := that.resultRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	return result, nil
}

func (that *Simulator) ListResults(ctx context.Context, limit int) ([]*entity.MatchResult, error) {
	if that.resultRepo == nil {
		return nil, ErrResultsDisabled
	}

	results, err := that.resultRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return results, nil
}

// restore - engine rebuilt from a checkpoint, the state is validated on the way in.
func (that *Simulator) restore(ctx context.Context, id string) (*battleship.Engine, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	engine := battleship.NewEngine()
	if err = engine.SetState(game.State); err != nil {
		return nil, fmt.Errorf("failed to restore game %s: %w", id, err)
	}

	return engine, nil
}
