package apperror

import "errors"

var (
	ErrInvalidInputFormat = errors.New("invalid input format")
	ErrCellOccupied       = errors.New("cell is already occupied")
	ErrInvalidCell        = errors.New("invalid cell index")
	ErrNoAvailableMoves   = errors.New("no available moves")
	ErrInputClosed        = errors.New("input closed")
	ErrGameFinished       = errors.New("game is already finished")
)
