package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/battleship-backend/internal/apperror"
	"github.com/rocketscienceinc/battleship-backend/internal/entity"
	"github.com/rocketscienceinc/battleship-backend/internal/usecase"
)

type simulationUseCase interface {
	Run(ctx context.Context) (*entity.MatchResult, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
	GetPlayerView(ctx context.Context, id string, idx int) (*entity.GameState, error)
	GetActions(ctx context.Context, id string) ([]entity.Action, error)
	GetResult(ctx context.Context, gameID string) (*entity.MatchResult, error)
	ListResults(ctx context.Context, limit int) ([]*entity.MatchResult, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handlers struct {
	logger     *slog.Logger
	simulation simulationUseCase
}

func NewHandlers(logger *slog.Logger, simulation simulationUseCase) *Handlers {
	return &Handlers{
		logger:     logger.With("component", "handlers"),
		simulation: simulation,
	}
}

func (that *Handlers) Register(e *echo.Echo) {
	e.GET("/ping", that.Ping)

	e.POST("/simulations", that.CreateSimulation)

	e.GET("/games/:id", that.GetGame)
	e.DELETE("/games/:id", that.DeleteGame)
	e.GET("/games/:id/view/:player", that.GetPlayerView)
	e.GET("/games/:id/actions", that.GetActions)

	e.GET("/results", that.ListResults)
	e.GET("/results/:id", that.GetResult)
}

func (that *Handlers) Ping(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}

// CreateSimulation - plays one game between the configured agents.
func (that *Handlers) CreateSimulation(ctx echo.Context) error {
	result, err := that.simulation.Run(ctx.Request().Context())
	if err != nil {
		return that.fail(ctx, "CreateSimulation", err)
	}

	return ctx.JSON(http.StatusCreated, result)
}

func (that *Handlers) GetGame(ctx echo.Context) error {
	game, err := that.simulation.GetGame(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.fail(ctx, "GetGame", err)
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *Handlers) DeleteGame(ctx echo.Context) error {
	if err := that.simulation.DeleteGame(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return that.fail(ctx, "DeleteGame", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPlayerView - player is the zero-based seat index.
func (that *Handlers) GetPlayerView(ctx echo.Context) error {
	idx, err := strconv.Atoi(ctx.Param("player"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "player must be a number"})
	}

	view, err := that.simulation.GetPlayerView(ctx.Request().Context(), ctx.Param("id"), idx)
	if err != nil {
		return that.fail(ctx, "GetPlayerView", err)
	}

	return ctx.JSON(http.StatusOK, view)
}

func (that *Handlers) GetActions(ctx echo.Context) error {
	actions, err := that.simulation.GetActions(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.fail(ctx, "GetActions", err)
	}

	return ctx.JSON(http.StatusOK, actions)
}

func (that *Handlers) GetResult(ctx echo.Context) error {
	result, err := that.simulation.GetResult(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.fail(ctx, "GetResult", err)
	}

	return ctx.JSON(http.StatusOK, result)
}

func (that *Handlers) ListResults(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative number"})
		}
		limit = parsed
	}

	results, err := that.simulation.ListResults(ctx.Request().Context(), limit)
	if err != nil {
		return that.fail(ctx, "ListResults", err)
	}

	return ctx.JSON(http.StatusOK, results)
}

func (that *Handlers) fail(ctx echo.Context, method string, err error) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		return ctx.JSON(status, errorResponse{Error: http.StatusText(status)})
	}

	return ctx.JSON(status, errorResponse{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound), errors.Is(err, apperror.ErrResultNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidPlayer):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrCheckpointsDisabled), errors.Is(err, usecase.ErrResultsDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
