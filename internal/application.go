package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

var ErrUnknownTurn = errors.New("turn must be machine or player")

// RunApp - runs an interactive game on stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	styled := !conf.NoColor && isatty.IsTerminal(os.Stdout.Fd())

	return runGame(ctx, logger, conf, os.Stdin, os.Stdout, styled)
}

func runGame(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer, styled bool) error {
	log := logger.With("component", "app")

	botService := service.NewBotService(logger)
	gameUseCase := usecase.NewGameManager(logger, botService)
	renderer := console.NewRenderer(out, conf.Marks.Symbols(), styled)
	consoleServer := console.New(logger, gameUseCase, renderer, in, out)

	err := consoleServer.Start(ctx)
	switch {
	case errors.Is(err, apperror.ErrInputClosed):
		log.Info("Input closed before the game ended")
		return nil
	case errors.Is(err, context.Canceled):
		log.Info("Application context canceled, shutting down")
		return nil
	case err != nil:
		return fmt.Errorf("console game failed: %w", err)
	}

	return nil
}

// RunBestMove prints the move the engine picks for turn on the given board.
func RunBestMove(logger *slog.Logger, conf *config.Config, boardText, turn string, out io.Writer) error {
	log := logger.With("component", "app", "method", "RunBestMove")

	mark, err := parseTurn(turn)
	if err != nil {
		return err
	}

	board, err := entity.ParseBoard(boardText, conf.Marks.Symbols())
	if err != nil {
		return fmt.Errorf("failed to parse board: %w", err)
	}

	result, err := tictactoe.Decide(board, mark)
	if err != nil {
		return fmt.Errorf("failed to decide move: %w", err)
	}

	log.Debug("move decided", "turn", mark.String(), "move", result.Move.String(), "score", result.Score)

	renderer := console.NewRenderer(out, conf.Marks.Symbols(), false)
	board.Set(*result.Move, mark)

	if _, err = fmt.Fprintf(out, "move: %s\nscore: %d\n\n%s\n", result.Move, result.Score, renderer.Board(board)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}

func parseTurn(turn string) (entity.Cell, error) {
	switch strings.ToLower(turn) {
	case "machine":
		return entity.MachineMark, nil
	case "player":
		return entity.PlayerMark, nil
	default:
		return entity.Empty, fmt.Errorf("%w: %q", ErrUnknownTurn, turn)
	}
}
