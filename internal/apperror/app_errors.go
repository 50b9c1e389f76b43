package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrOutOfRange   = fmt.Errorf("%w: coordinates out of range", ErrInvalidMove)

	ErrGameFinished       = errors.New("game is already finished")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrInvalidBoard       = errors.New("invalid board")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrInputClosed        = errors.New("input closed")
)
