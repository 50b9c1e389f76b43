package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	LogFormatAuto = "auto"
	LogFormatJSON = "json"
	LogFormatText = "text"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	LogFormat string `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"auto"`
	NoColor   bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
	Marks     Marks  `yaml:"marks"`
}

type Marks struct {
	Player  string `yaml:"player" env:"TICTACTOE_PLAYER_MARK" env-default:"X"`
	Machine string `yaml:"machine" env:"TICTACTOE_MACHINE_MARK" env-default:"O"`
	Empty   string `yaml:"empty" env:"TICTACTOE_EMPTY_MARK" env-default:"-"`
}

// Load reads the YAML file at path, then applies environment overrides.
// A missing file is not an error: defaults and environment are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path != "" && fileExists(path) {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	switch strings.ToLower(that.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log-level %q", ErrInvalidConfig, that.LogLevel)
	}

	switch that.LogFormat {
	case LogFormatAuto, LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf("%w: unknown log-format %q", ErrInvalidConfig, that.LogFormat)
	}

	return that.Marks.Validate()
}

// Validate checks that every mark is one visible character and that no two
// marks look alike.
func (that *Marks) Validate() error {
	marks := []string{that.Player, that.Machine, that.Empty}

	for _, mark := range marks {
		if utf8.RuneCountInString(mark) != 1 || strings.TrimSpace(mark) == "" || mark == "|" || mark == "/" {
			return fmt.Errorf("%w: mark %q must be a single visible character", ErrInvalidConfig, mark)
		}
	}

	for i := range marks {
		for j := i + 1; j < len(marks); j++ {
			if strings.EqualFold(marks[i], marks[j]) {
				return fmt.Errorf("%w: marks %q and %q collide", ErrInvalidConfig, marks[i], marks[j])
			}
		}
	}

	return nil
}

func (that *Marks) Symbols() entity.Symbols {
	return entity.Symbols{
		Player:  that.Player,
		Machine: that.Machine,
		Empty:   that.Empty,
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
