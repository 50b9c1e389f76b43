package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

type flags struct {
	configPath string
	logLevel   string
	noColor    bool
	turn       string
}

// main - is the entry point of the application. It builds the command tree and runs it.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &flags{}

	play := func(_ *cobra.Command, _ []string) error {
		conf := initConfig(opts)
		logger := initLogger(conf)

		if err := app.RunApp(logger, conf); err != nil {
			return fmt.Errorf("app run failed: %w", err)
		}

		return nil
	}

	rootCmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Play Tic Tac Toe against a minimax opponent",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         play,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yml", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable coloured output; cannot re-enable colour turned off by no-color in the config")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game, the player moves first",
		Args:  cobra.NoArgs,
		RunE:  play,
	}

	bestMoveCmd := &cobra.Command{
		Use:   "bestmove BOARD",
		Short: "Print the engine's move for a position",
		Long: "Print the engine's move for a position.\n\n" +
			"BOARD lists nine marks in row-major order, for example \"XO-/-X-/--O\".\n" +
			"Whitespace, '|' and '/' are ignored.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := initConfig(opts)
			logger := initLogger(conf)

			return app.RunBestMove(logger, conf, args[0], opts.turn, cmd.OutOrStdout())
		},
	}
	bestMoveCmd.Flags().StringVar(&opts.turn, "turn", "machine", "side to move: machine or player")

	rootCmd.AddCommand(playCmd, bestMoveCmd)

	return rootCmd
}

// initialize config.
func initConfig(opts *flags) *config.Config {
	path := opts.configPath
	if !filepath.IsAbs(path) {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, path)
	}

	conf := config.MustLoad(path)

	if opts.logLevel != "" {
		conf.LogLevel = opts.logLevel
	}

	if opts.noColor {
		conf.NoColor = true
	}

	if err := conf.Validate(); err != nil {
		panic(fmt.Errorf("invalid flags: %w", err))
	}

	return conf
}

// initialize logger. Logs go to stderr, stdout belongs to the game.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch strings.ToLower(conf.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	terminal := isatty.IsTerminal(os.Stderr.Fd())

	format := conf.LogFormat
	if format == config.LogFormatAuto {
		format = config.LogFormatJSON
		if terminal {
			format = config.LogFormatText
		}
	}

	if format == config.LogFormatText {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:   level,
			NoColor: conf.NoColor || !terminal,
		}))
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
