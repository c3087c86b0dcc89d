package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// IsValidCoordinate reports whether value is an integer between 1 and 3.
func IsValidCoordinate(value string) bool {
	_, err := ParseCoordinate(value)
	return err == nil
}

// ParseCoordinate converts a 1-indexed coordinate typed by the user into a 0-indexed one.
func ParseCoordinate(value string) (int, error) {
	coord, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: coordinate %q", apperror.ErrInvalidInputFormat, value)
	}

	if coord < 1 || coord > entity.Size {
		return 0, fmt.Errorf("%w: coordinate %d out of range", apperror.ErrInvalidInputFormat, coord)
	}

	return coord - 1, nil
}

func IsCellFree(board *entity.Board, row, col int) bool {
	return board.Get(row, col) == entity.EmptyCell
}

// ParseConfirmation accepts "y" or "n" in any case.
func ParseConfirmation(value string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, fmt.Errorf("%w: confirmation %q", apperror.ErrInvalidInputFormat, value)
	}
}

// ParseSymbol accepts "x" or "o" in any case.
func ParseSymbol(value string) (entity.Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "X":
		return entity.PlayerX, nil
	case "O":
		return entity.PlayerO, nil
	default:
		return entity.EmptyCell, fmt.Errorf("%w: symbol %q", apperror.ErrInvalidInputFormat, value)
	}
}
