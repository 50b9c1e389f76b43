package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// WinningLines lists every row, column and diagonal.
var WinningLines = [8][3]entity.Move{
	// rows
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	// columns
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	// diagonals
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}},
}

// LegalMoves returns the empty cells in row-major order. The order decides
// which move the search keeps among equal scores.
func LegalMoves(board entity.Board) []entity.Move {
	return OccupiedBy(board, entity.Empty)
}

// IsOccupied reports whether move points at a non-empty cell.
func IsOccupied(board entity.Board, move entity.Move) (bool, error) {
	if !move.InBounds() {
		return false, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, move)
	}

	return board.At(move) != entity.Empty, nil
}

// OccupiedBy returns every cell holding mark in row-major order.
func OccupiedBy(board entity.Board, mark entity.Cell) []entity.Move {
	moves := make([]entity.Move, 0, entity.BoardSize*entity.BoardSize)
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if board[row][col] == mark {
				moves = append(moves, entity.Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func IsBoardFull(board entity.Board) bool {
	return len(LegalMoves(board)) == 0
}

// HasWon reports whether occupied covers at least one winning line.
func HasWon(occupied []entity.Move) bool {
	var taken [entity.BoardSize][entity.BoardSize]bool
	for _, move := range occupied {
		if move.InBounds() {
			taken[move.Row][move.Col] = true
		}
	}

	for _, line := range WinningLines {
		if taken[line[0].Row][line[0].Col] && taken[line[1].Row][line[1].Col] && taken[line[2].Row][line[2].Col] {
			return true
		}
	}

	return false
}

// Evaluate scores the board for mark. Draw covers both a finished draw and
// a game still in progress; callers tell them apart with IsBoardFull.
func Evaluate(board entity.Board, mark entity.Cell) entity.Outcome {
	if HasWon(OccupiedBy(board, mark)) {
		return entity.Win
	}

	if HasWon(OccupiedBy(board, mark.Opponent())) {
		return entity.Loss
	}

	return entity.Draw
}

func IsGameOver(board entity.Board) bool {
	return IsBoardFull(board) || Evaluate(board, entity.MachineMark) != entity.Draw
}
