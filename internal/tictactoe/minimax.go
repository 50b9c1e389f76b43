package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	StartDepth = 0

	// depthPenalty shifts scores per ply so that faster wins and slower
	// losses rank higher among equal outcomes.
	depthPenalty = 10
)

// SearchResult is the score of a position and the move that achieves it.
// Move is nil for positions that are already decided.
type SearchResult struct {
	Score int
	Move  *entity.Move
}

// BestMove runs minimax with alpha-beta pruning for mark. The machine
// maximizes and the player minimizes; scores are always from the machine's
// point of view. The board is mutated while searching and restored before
// returning.
func BestMove(board *entity.Board, mark entity.Cell, depth, alpha, beta int) SearchResult {
	if mark != entity.MachineMark && mark != entity.PlayerMark {
		panic(fmt.Errorf("%w: search asked to move for %s", apperror.ErrInvariantViolation, mark))
	}

	if state := Evaluate(*board, entity.MachineMark); IsBoardFull(*board) || state != entity.Draw {
		return SearchResult{Score: state.Score()}
	}

	maximizing := mark == entity.MachineMark

	bestScore := entity.Win.Score()
	if maximizing {
		bestScore = entity.Loss.Score()
	}

	var bestMove *entity.Move

	for _, move := range LegalMoves(*board) {
		board.Set(move, mark)
		child := BestMove(board, mark.Opponent(), depth+1, alpha, beta)
		board.Set(move, entity.Empty)

		if maximizing {
			if child.Score > bestScore {
				bestScore = child.Score - depth*depthPenalty
				bestMove = &move
				alpha = max(alpha, bestScore)

				if beta <= alpha {
					break
				}
			}

			continue
		}

		if child.Score < bestScore {
			bestScore = child.Score + depth*depthPenalty
			bestMove = &move
			beta = min(beta, bestScore)

			if beta <= alpha {
				break
			}
		}
	}

	return SearchResult{Score: bestScore, Move: bestMove}
}

// Decide picks the move for mark on a copy of board, leaving the caller's
// board untouched.
func Decide(board entity.Board, mark entity.Cell) (SearchResult, error) {
	if IsGameOver(board) {
		return SearchResult{}, apperror.ErrGameFinished
	}

	result := BestMove(&board, mark, StartDepth, entity.Loss.Score(), entity.Win.Score())
	if result.Move == nil {
		return result, fmt.Errorf("%w: search returned no move", apperror.ErrInvariantViolation)
	}

	return result, nil
}
