package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn plays the search engine's move for the machine.
func (that *botService) MakeTurn(game *entity.Game) (entity.Move, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if game.IsFinished() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	if game.Turn != entity.MachineMark {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	result, err := tictactoe.Decide(game.Board, entity.MachineMark)
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to choose a move: %w", err)
	}

	move := *result.Move
	if err = tictactoe.MakeTurn(game, entity.MachineMark, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot moved", "move", move.String(), "score", result.Score)

	return move, nil
}
