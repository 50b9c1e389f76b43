package entity

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const BoardSize = 3

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	PlayerMark
	MachineMark
)

func (that Cell) IsValid() bool {
	return that <= MachineMark
}

// Opponent returns the mark playing against this one. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerMark:
		return MachineMark
	case MachineMark:
		return PlayerMark
	default:
		return Empty
	}
}

func (that Cell) String() string {
	switch that {
	case Empty:
		return "empty"
	case PlayerMark:
		return "player"
	case MachineMark:
		return "machine"
	default:
		return fmt.Sprintf("cell(%d)", uint8(that))
	}
}

// Move addresses a board square by row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is a row-major 3x3 grid.
type Board [BoardSize][BoardSize]Cell

// At returns the cell under move. The move must be in bounds.
func (that *Board) At(move Move) Cell {
	return that[move.Row][move.Col]
}

// Set writes cell under move. The move must be in bounds and cell must be a known value.
func (that *Board) Set(move Move, cell Cell) {
	if !cell.IsValid() {
		panic(fmt.Errorf("%w: unknown cell value %d", apperror.ErrInvariantViolation, uint8(cell)))
	}

	that[move.Row][move.Col] = cell
}

// Symbols maps cells to the glyphs shown to the user.
type Symbols struct {
	Player  string
	Machine string
	Empty   string
}

var DefaultSymbols = Symbols{
	Player:  "X",
	Machine: "O",
	Empty:   "-",
}

func (that Symbols) Of(cell Cell) string {
	switch cell {
	case PlayerMark:
		return that.Player
	case MachineMark:
		return that.Machine
	default:
		return that.Empty
	}
}

// ParseBoard reads nine glyphs in row-major order. Whitespace and the
// '|' and '/' separators are ignored.
func ParseBoard(text string, symbols Symbols) (Board, error) {
	var board Board

	glyphs := make([]string, 0, BoardSize*BoardSize)
	for _, r := range text {
		if unicode.IsSpace(r) || r == '|' || r == '/' {
			continue
		}
		glyphs = append(glyphs, string(r))
	}

	if len(glyphs) != BoardSize*BoardSize {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, BoardSize*BoardSize, len(glyphs))
	}

	for i, glyph := range glyphs {
		move := Move{Row: i / BoardSize, Col: i % BoardSize}

		switch {
		case strings.EqualFold(glyph, symbols.Player):
			board.Set(move, PlayerMark)
		case strings.EqualFold(glyph, symbols.Machine):
			board.Set(move, MachineMark)
		case glyph == symbols.Empty:
			board.Set(move, Empty)
		default:
			return board, fmt.Errorf("%w: unknown glyph %q at %s", apperror.ErrInvalidBoard, glyph, move)
		}
	}

	return board, nil
}
