package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/battleship"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
	"github.com/rocketscienceinc/battleship-backend/internal/pkg"
)

var (
	ErrCheckpointsDisabled = errors.New("checkpoint storage is not configured")
	ErrResultsDisabled     = errors.New("results storage is not configured")
)

type agent interface {
	SelectAction(view *entity.GameState, actions []entity.Action) (entity.Action, bool)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.MatchResult) error
	GetByID(ctx context.Context, gameID string) (*entity.MatchResult, error)
	List(ctx context.Context, limit int) ([]*entity.MatchResult, error)
}

type observer interface {
	ObserveAction(action entity.Action)
	ObserveResult(result *entity.MatchResult)
}

// Simulator - plays games between two agents and keeps their checkpoints and results.
type Simulator struct {
	logger *slog.Logger
	agents [entity.PlayersCount]agent

	gameRepo   gameRepo
	resultRepo resultRepo
	observer   observer

	out   io.Writer
	now   func() time.Time
	newID func() string
}

type Option func(*Simulator)

// WithCheckpoints - store the game state on every phase change and at the end.
func WithCheckpoints(repo gameRepo) Option {
	return func(s *Simulator) {
		s.gameRepo = repo
	}
}

// WithResults - record every played game in the results ledger.
func WithResults(repo resultRepo) Option {
	return func(s *Simulator) {
		s.resultRepo = repo
	}
}

func WithObserver(o observer) Option {
	return func(s *Simulator) {
		s.observer = o
	}
}

// WithOutput - print every action and the resulting state to w.
func WithOutput(w io.Writer) Option {
	return func(s *Simulator) {
		s.out = w
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Simulator) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Simulator) {
		s.newID = newID
	}
}

func NewSimulator(logger *slog.Logger, first, second agent, opts ...Option) *Simulator {
	simulator := &Simulator{
		logger: logger.With("component", "simulator"),
		agents: [entity.PlayersCount]agent{first, second},
		now:    time.Now,
		newID:  pkg.GenerateGameID,
	}

	for _, opt := range opts {
		opt(simulator)
	}

	return simulator
}

// Run - plays one game until it is finished or the mover has no legal action left.
func (that *Simulator) Run(ctx context.Context) (*entity.MatchResult, error) {
	engine := battleship.NewEngine()
	game := &entity.Game{ID: that.newID()}

	log := that.logger.With("method", "Run", "gameID", game.ID)

	that.printState(engine.State())

	phase := engine.Phase()
	saved := false
	for phase != entity.PhaseFinished {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("simulation interrupted: %w", err)
		}

		action, err := that.nextAction(engine)
		if err != nil {
			return nil, err
		}

		if action == nil {
			log.Warn("no legal action left, game stalled", "player", engine.ActivePlayer(), "turns", game.Turns)
			break
		}

		if that.out != nil {
			fmt.Fprintf(that.out, "\n%s's Turn:\n%s\n", engine.State().Active().Name, battleship.DescribeAction(action))
		}

		if err = engine.ApplyAction(action); err != nil {
			return nil, fmt.Errorf("failed to apply action: %w", err)
		}

		game.Turns++
		saved = false
		if that.observer != nil {
			that.observer.ObserveAction(action)
		}

		that.printState(engine.State())

		if engine.Phase() != phase {
			phase = engine.Phase()
			log.Debug("phase changed", "phase", phase, "turns", game.Turns)

			game.State = engine.State()
			if err = that.checkpoint(ctx, game); err != nil {
				return nil, err
			}
			saved = true
		}
	}

	// a stalled game ends without a phase change and still needs its last checkpoint
	game.State = engine.State()
	if !saved {
		if err := that.checkpoint(ctx, game); err != nil {
			return nil, err
		}
	}

	result := entity.NewMatchResult(game.ID, game.State, game.Turns, that.now())
	if err := that.record(ctx, result); err != nil {
		return nil, err
	}

	that.printOutcome(game.State, result)
	log.Info("game played", "outcome", result.Outcome, "turns", result.Turns)

	return result, nil
}

// RunBatch - plays n games in a row and tallies the outcomes.
func (that *Simulator) RunBatch(ctx context.Context, n int) (*entity.BatchSummary, error) {
	summary := &entity.BatchSummary{}

	for i := 0; i < n; i++ {
		result, err := that.Run(ctx)
		if err != nil {
			return summary, fmt.Errorf("game %d of %d: %w", i+1, n, err)
		}

		summary.Add(result)
	}

	that.logger.Info("batch played", "games", summary.Games, "wins", summary.Wins, "stalled", summary.Stalled)

	return summary, nil
}

// nextAction - nil without error when the mover has nothing left to do.
func (that *Simulator) nextAction(engine *battleship.Engine) (entity.Action, error) {
	active := engine.ActivePlayer()

	actions := engine.ListActions()
	if len(actions) == 0 {
		return nil, nil
	}

	view, err := engine.PlayerView(active)
	if err != nil {
		return nil, fmt.Errorf("failed to build player view: %w", err)
	}

	action, ok := that.agents[active].SelectAction(view, actions)
	if !ok {
		return nil, fmt.Errorf("%w: agent of player %d selected nothing out of %d", apperror.ErrNoAvailableActions, active+1, len(actions))
	}

	return action, nil
}

func (that *Simulator) checkpoint(ctx context.Context, game *entity.Game) error {
	if that.gameRepo == nil {
		return nil
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to checkpoint game: %w", err)
	}

	return nil
}

func (that *Simulator) record(ctx context.Context, result *entity.MatchResult) error {
	if that.observer != nil {
		that.observer.ObserveResult(result)
	}

	if that.resultRepo == nil {
		return nil
	}

	if err := that.resultRepo.Save(ctx, result); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *Simulator) printState(state *entity.GameState) {
	if that.out != nil {
		battleship.PrintState(that.out, state)
	}
}

func (that *Simulator) printOutcome(state *entity.GameState, result *entity.MatchResult) {
	if that.out == nil {
		return
	}

	for i := range state.Players {
		fmt.Fprintf(that.out, "\n%s's Shots:\n", state.Players[i].Name)
		battleship.PrintBoard(that.out, &state.Players[i])
	}

	if result.Winner == nil {
		fmt.Fprintln(that.out, "\nGame Over! No legal action left, nobody wins")
		return
	}

	fmt.Fprintf(that.out, "\nGame Over! Winner: Player %d\n", *result.Winner+1)
}
