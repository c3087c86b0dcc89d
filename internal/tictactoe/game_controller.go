package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// MakeTurn places mark at (row, col) and evaluates the board afterwards.
func MakeTurn(board *entity.Board, conf entity.GameConfig, mark entity.Mark, row, col int) (entity.Outcome, error) {
	if outcome := Evaluate(board, conf); outcome.IsFinished() {
		return outcome, apperror.ErrGameFinished
	}

	if err := board.Set(row, col, mark); err != nil {
		return entity.InProgress, fmt.Errorf("invalid turn: %w", err)
	}

	return Evaluate(board, conf), nil
}
