package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	rowPrompt = "Row play: "
	colPrompt = "Col play: "
)

type gameUseCase interface {
	NewGame() *entity.Game
	MakeTurn(ctx context.Context, game *entity.Game, move entity.Move) (*entity.Move, error)
	Result(game *entity.Game) entity.Outcome
}

// Server drives one game over a line oriented console.
type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	renderer    *Renderer

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, gameUseCase gameUseCase, renderer *Renderer, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger:      logger.With("component", "console"),
		gameUseCase: gameUseCase,
		renderer:    renderer,

		in:  in,
		out: out,
	}
}

// Start - plays a game until it is over, the input ends or ctx is done.
func (that *Server) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tokens := readTokens(ctx, that.in)
	game := that.gameUseCase.NewGame()
	log := that.logger.With("method", "Start", "gameID", game.ID)

	fmt.Fprintf(that.out, "%s\n\n%s\n\n", that.renderer.Banner(), that.renderer.Legend())
	that.printBoard(game.Board)

	for game.IsOngoing() {
		move, err := that.readMove(ctx, tokens)
		if err != nil {
			return err
		}

		reply, err := that.gameUseCase.MakeTurn(ctx, game, move)
		switch {
		case errors.Is(err, apperror.ErrCellOccupied):
			fmt.Fprintln(that.out, that.renderer.Notice(fmt.Sprintf("The position %s is occupied. Try another one...", move)))
			continue
		case errors.Is(err, apperror.ErrOutOfRange):
			fmt.Fprintln(that.out, that.renderer.Notice(fmt.Sprintf(
				"The position %s is off the board. Rows and columns go from 0 to %d...", move, entity.BoardSize-1)))
			continue
		case err != nil:
			log.Error("turn failed", "move", move.String(), "error", err)
			return fmt.Errorf("failed to make turn: %w", err)
		}

		if reply != nil {
			fmt.Fprintf(that.out, "AI Computer plays %s\n", reply)
		}

		that.printBoard(game.Board)
	}

	fmt.Fprintln(that.out, that.renderer.Result(that.gameUseCase.Result(game)))

	return nil
}

func (that *Server) readMove(ctx context.Context, tokens <-chan token) (entity.Move, error) {
	row, err := that.readInt(ctx, tokens, rowPrompt)
	if err != nil {
		return entity.Move{}, err
	}

	col, err := that.readInt(ctx, tokens, colPrompt)
	if err != nil {
		return entity.Move{}, err
	}

	fmt.Fprintln(that.out)

	return entity.Move{Row: row, Col: col}, nil
}

func (that *Server) printBoard(board entity.Board) {
	fmt.Fprintf(that.out, "%s\n\n", that.renderer.Board(board))
}
