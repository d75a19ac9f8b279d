package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

var ErrResultNotFound = apperror.ErrResultNotFound

const DefaultListLimit = 50

// finishedAtLayout - fixed width so finished_at sorts as text.
const finishedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

type ResultRepository interface {
	Save(ctx context.Context, result *entity.MatchResult) error
	GetByID(ctx context.Context, gameID string) (*entity.MatchResult, error)
	List(ctx context.Context, limit int) ([]*entity.MatchResult, error)
}

type dbResult struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) ResultRepository {
	return &dbResult{
		db: db,
	}
}

const resultColumns = `game_id, outcome, winner, turns, shots_first, shots_second, hits_first, hits_second, finished_at`

func (that *dbResult) Save(ctx context.Context, result *entity.MatchResult) error {
	query := `INSERT OR REPLACE INTO results (` + resultColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var winner sql.NullInt64
	if result.Winner != nil {
		winner = sql.NullInt64{Int64: int64(*result.Winner), Valid: true}
	}

	_, err := that.db.ExecContext(ctx, query,
		result.GameID,
		string(result.Outcome),
		winner,
		result.Turns,
		result.Shots[0],
		result.Shots[1],
		result.Hits[0],
		result.Hits[1],
		result.FinishedAt.UTC().Format(finishedAtLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, gameID string) (*entity.MatchResult, error) {
	query := `SELECT ` + resultColumns + ` FROM results WHERE game_id = ?`

	result, err := scanResult(that.db.QueryRowContext(ctx, query, gameID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by id: %w", err)
	}

	return result, nil
}

// List - most recent results first, DefaultListLimit when limit is not positive.
func (that *dbResult) List(ctx context.Context, limit int) ([]*entity.MatchResult, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := `SELECT ` + resultColumns + ` FROM results ORDER BY finished_at DESC, game_id LIMIT ?`

	rows, err := that.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	results := make([]*entity.MatchResult, 0, limit)
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}

		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate results: %w", err)
	}

	return results, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (*entity.MatchResult, error) {
	var (
		result     entity.MatchResult
		outcome    string
		winner     sql.NullInt64
		finishedAt string
	)

	err := row.Scan(
		&result.GameID,
		&outcome,
		&winner,
		&result.Turns,
		&result.Shots[0],
		&result.Shots[1],
		&result.Hits[0],
		&result.Hits[1],
		&finishedAt,
	)
	if err != nil {
		return nil, err
	}

	result.Outcome = entity.Outcome(outcome)

	if winner.Valid {
		w := int(winner.Int64)
		result.Winner = &w
	}

	result.FinishedAt, err = time.Parse(finishedAtLayout, finishedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse finished_at: %w", err)
	}

	return &result, nil
}
