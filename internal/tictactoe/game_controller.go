package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// MakeTurn places mark on move and advances the game. A rejected move
// leaves the game unchanged.
func MakeTurn(gameInstance *entity.Game, mark entity.Cell, move entity.Move) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(gameInstance, mark, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board.Set(move, mark)
	gameInstance.History = append(gameInstance.History, move)
	updateGameStatus(gameInstance, mark)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, mark entity.Cell, move entity.Move) error {
	occupied, err := IsOccupied(gameInstance.Board, move)
	if err != nil {
		return err
	}

	if gameInstance.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if occupied {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, mark entity.Cell) {
	switch {
	case Evaluate(gameInstance.Board, mark) == entity.Win:
		gameInstance.Finish(mark)
	case IsBoardFull(gameInstance.Board):
		gameInstance.Finish(entity.Empty)
	default:
		gameInstance.Turn = mark.Opponent()
	}
}
