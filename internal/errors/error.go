package errors

import "errors"

var (
	ErrOutOfBounds           = errors.New("point is outside the board")
	ErrOccupiedPoint         = errors.New("point is already occupied")
	ErrOutOfTurn             = errors.New("it is not this player's turn")
	ErrSuicideMove           = errors.New("move would leave own group without liberties")
	ErrKoViolation           = errors.New("move would recreate a forbidden prior position")
	ErrGameAlreadyTerminated = errors.New("game is already terminated")
	ErrEmptyPoint            = errors.New("point has no stone")
	ErrBadBoardSize          = errors.New("board size must be 9, 13 or 19")
	ErrBadKoRule             = errors.New("ko rule must be simple or superko")
	ErrGameNotFound          = errors.New("game not found")
)
