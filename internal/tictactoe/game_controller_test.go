package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: the player takes the centre
		err := MakeTurn(game, x, entity.Move{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the board holds the mark and the machine is to move
		expectedGame := &entity.Game{
			ID: "123",
			Board: entity.Board{
				{e, e, e},
				{e, x, e},
				{e, e, e},
			},
			Turn:    o,
			Status:  entity.StatusOngoing,
			History: []entity.Move{{Row: 1, Col: 1}},
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where the player holds (0, 0)
		game := entity.NewGame("123")
		require.NoError(t, MakeTurn(game, x, entity.Move{Row: 0, Col: 0}))
		snapshot := *game

		// When: the machine tries the same square
		err := MakeTurn(game, o, entity.Move{Row: 0, Col: 0})

		// Then: ErrCellOccupied is returned, which is an invalid move
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)

		// Then: the game state remains unchanged
		require.Equal(t, &snapshot, game)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123")

		// When: the machine tries to open
		err := MakeTurn(game, o, entity.Move{Row: 0, Col: 1})

		// Then: ErrNotYourTurn is returned and nothing is placed
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.Board{}, game.Board)
		assert.Equal(t, x, game.Turn)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		game := entity.NewGame("123")

		err := MakeTurn(game, x, entity.Move{Row: 3, Col: 0})

		assert.ErrorIs(t, err, apperror.ErrOutOfRange)
		assert.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		game := entity.NewGame("123")

		err := MakeTurn(game, x, entity.Move{Row: 0, Col: -1})

		assert.ErrorIs(t, err, apperror.ErrOutOfRange)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: the player is one move from completing the left column
		game := &entity.Game{
			ID: "123",
			Board: entity.Board{
				{x, o, e},
				{x, o, e},
				{e, e, e},
			},
			Turn:   x,
			Status: entity.StatusOngoing,
		}

		// When: the player completes it
		err := MakeTurn(game, x, entity.Move{Row: 2, Col: 0})

		// Then: the game is finished with the player as winner
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, x, game.Winner)
		assert.Equal(t, e, game.Turn)
	})

	t.Run("Last cell without a line is a draw", func(t *testing.T) {
		game := &entity.Game{
			Board: entity.Board{
				{x, o, x},
				{x, o, o},
				{o, x, e},
			},
			Turn:   x,
			Status: entity.StatusOngoing,
		}

		err := MakeTurn(game, x, entity.Move{Row: 2, Col: 2})

		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, e, game.Winner)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game the player has already won
		game := &entity.Game{
			Board: entity.Board{
				{x, x, x},
				{e, o, e},
				{e, o, e},
			},
			Status: entity.StatusFinished,
			Winner: x,
		}

		// When: the machine tries to move afterwards
		err := MakeTurn(game, o, entity.Move{Row: 1, Col: 0})

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}
