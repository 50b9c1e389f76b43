package console

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	cellSeparator = " | "
	rowSeparator  = "---------"
	banner        = "********************************"
	gameOver      = "********** GAME OVER **********"
)

// Renderer turns boards and outcomes into console text.
type Renderer struct {
	symbols entity.Symbols
	styled  bool

	player  lipgloss.Style
	machine lipgloss.Style
	empty   lipgloss.Style
	title   lipgloss.Style
	notice  lipgloss.Style
}

// NewRenderer builds a renderer for out. With styled set to false the
// output is plain text.
func NewRenderer(out io.Writer, symbols entity.Symbols, styled bool) *Renderer {
	renderer := lipgloss.NewRenderer(out)

	return &Renderer{
		symbols: symbols,
		styled:  styled,

		player:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		machine: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		empty:   renderer.NewStyle().Faint(true),
		title:   renderer.NewStyle().Bold(true),
		notice:  renderer.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// Board renders the grid row by row.
func (that *Renderer) Board(board entity.Board) string {
	rows := make([]string, 0, entity.BoardSize)
	for _, row := range board {
		cells := make([]string, 0, entity.BoardSize)
		for _, cell := range row {
			cells = append(cells, that.Cell(cell))
		}

		rows = append(rows, strings.Join(cells, cellSeparator))
	}

	return strings.Join(rows, "\n"+rowSeparator+"\n")
}

func (that *Renderer) Cell(cell entity.Cell) string {
	glyph := that.symbols.Of(cell)

	switch cell {
	case entity.PlayerMark:
		return that.style(that.player, glyph)
	case entity.MachineMark:
		return that.style(that.machine, glyph)
	default:
		return that.style(that.empty, glyph)
	}
}

func (that *Renderer) Banner() string {
	return banner + "\n\n\t" + that.style(that.title, "Tic Tac Toe AI") + "\n\n" + banner
}

func (that *Renderer) Legend() string {
	return "Player = " + that.Cell(entity.PlayerMark) + "\t AI Computer = " + that.Cell(entity.MachineMark)
}

func (that *Renderer) Notice(text string) string {
	return that.style(that.notice, text)
}

// Result renders the end of game footer from the player's point of view.
func (that *Renderer) Result(outcome entity.Outcome) string {
	return that.style(that.title, gameOver) + "\n\n" + "PLAYER " + that.style(that.title, outcome.String())
}

func (that *Renderer) style(style lipgloss.Style, text string) string {
	if !that.styled {
		return text
	}

	return style.Render(text)
}
