package suite

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Config *config.Config
}

// New returns a context bound to the test and a quiet logger with the
// default configuration.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	conf := &config.Config{
		LogLevel:  "debug",
		LogFormat: config.LogFormatJSON,
		NoColor:   true,
		Marks: config.Marks{
			Player:  entity.DefaultSymbols.Player,
			Machine: entity.DefaultSymbols.Machine,
			Empty:   entity.DefaultSymbols.Empty,
		},
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Config: conf,
	}
}

// Input renders moves as console input, one "row col" pair per line.
func Input(moves ...entity.Move) io.Reader {
	var builder strings.Builder
	for _, move := range moves {
		fmt.Fprintf(&builder, "%d %d\n", move.Row, move.Col)
	}

	return strings.NewReader(builder.String())
}
