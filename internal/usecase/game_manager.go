package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type botService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

// GameManager sequences human and machine turns for a session.
type GameManager struct {
	logger *slog.Logger
	bot    botService
}

func NewGameManager(logger *slog.Logger, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		bot:    bot,
	}
}

// NewGame starts a session with the player to move.
func (that *GameManager) NewGame() *entity.Game {
	game := entity.NewGame(uuid.NewString())

	that.logger.Info("game created", "gameID", game.ID)

	return game
}

// MakeTurn applies the player's move and, if the game goes on, the
// machine's reply. The reply is nil when the player's move ended the game.
// Rejected moves leave the game unchanged.
func (that *GameManager) MakeTurn(ctx context.Context, game *entity.Game, move entity.Move) (*entity.Move, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("turn aborted: %w", err)
	}

	if err := tictactoe.MakeTurn(game, entity.PlayerMark, move); err != nil {
		log.Debug("player move rejected", "move", move.String(), "error", err)
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("player moved", "move", move.String())

	if game.IsFinished() {
		that.logFinished(log, game)
		return nil, nil
	}

	reply, err := that.bot.MakeTurn(game)
	if err != nil {
		return nil, fmt.Errorf("failed bot turn: %w", err)
	}

	if game.IsFinished() {
		that.logFinished(log, game)
	}

	return &reply, nil
}

// Result reports the final outcome from the player's point of view.
func (that *GameManager) Result(game *entity.Game) entity.Outcome {
	return tictactoe.Evaluate(game.Board, entity.PlayerMark)
}

func (that *GameManager) logFinished(log *slog.Logger, game *entity.Game) {
	log.Info("game finished", "result", that.Result(game).String(), "moves", len(game.History))
}
