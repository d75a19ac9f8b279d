package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

var ErrGameNotFound = apperror.ErrGameNotFound

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository - checkpoints expire after ttl, zero keeps them forever.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	err = that.client.Set(ctx, gameKey(game.ID), gameJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Game{}, ErrGameNotFound
	}

	if err != nil {
		return &entity.Game{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return &entity.Game{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}
