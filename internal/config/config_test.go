package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		// When: loading from a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, LogFormatAuto, conf.LogFormat)
		assert.False(t, conf.NoColor)
		assert.Equal(t, entity.DefaultSymbols, conf.Marks.Symbols())
	})

	t.Run("Reads YAML file", func(t *testing.T) {
		// Given: a config file overriding some fields
		path := writeConfig(t, "log-level: debug\nlog-format: json\nno-color: true\nmarks:\n  player: A\n  machine: B\n")

		// When: loading it
		conf, err := Load(path)

		// Then: file values win and the rest keep their defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, LogFormatJSON, conf.LogFormat)
		assert.True(t, conf.NoColor)
		assert.Equal(t, entity.Symbols{Player: "A", Machine: "B", Empty: "-"}, conf.Marks.Symbols())
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("TICTACTOE_LOG_LEVEL", "error")
		t.Setenv("TICTACTOE_MACHINE_MARK", "@")

		conf, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "error", conf.LogLevel)
		assert.Equal(t, "@", conf.Marks.Machine)
	})

	t.Run("Invalid values are rejected", func(t *testing.T) {
		path := writeConfig(t, "log-level: loud\n")

		_, err := Load(path)

		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestMustLoad(t *testing.T) {
	path := writeConfig(t, "log-format: xml\n")

	assert.Panics(t, func() {
		MustLoad(path)
	})
}

func TestMarks_Validate(t *testing.T) {
	tests := []struct {
		name  string
		marks Marks
		valid bool
	}{
		{name: "Defaults", marks: Marks{Player: "X", Machine: "O", Empty: "-"}, valid: true},
		{name: "Unicode glyphs", marks: Marks{Player: "✕", Machine: "◯", Empty: "·"}, valid: true},
		{name: "Two characters", marks: Marks{Player: "XX", Machine: "O", Empty: "-"}},
		{name: "Blank", marks: Marks{Player: " ", Machine: "O", Empty: "-"}},
		{name: "Separator", marks: Marks{Player: "|", Machine: "O", Empty: "-"}},
		{name: "Same letter different case", marks: Marks{Player: "x", Machine: "X", Empty: "-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.marks.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
