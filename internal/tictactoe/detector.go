package tictactoe

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

// CheckLine reports whether all three cells of line hold mark.
func CheckLine(line entity.Line, mark entity.Mark) bool {
	return line.IsComplete(mark)
}

// Evaluate inspects rows, then columns, then the diagonals through the center.
// A full board without a completed line is a draw.
func Evaluate(board *entity.Board, conf entity.GameConfig) entity.Outcome {
	// rows come first in Lines, then columns
	for _, line := range board.Lines()[:2*entity.Size] {
		if outcome := evaluateLine(line, conf); outcome.IsFinished() {
			return outcome
		}
	}

	if center := board.Get(1, 1); center != entity.EmptyCell {
		if CheckLine(board.MainDiagonal(), center) || CheckLine(board.AntiDiagonal(), center) {
			return winnerOf(center, conf)
		}
	}

	if board.IsFull() {
		return entity.Draw
	}

	return entity.InProgress
}

func evaluateLine(line entity.Line, conf entity.GameConfig) entity.Outcome {
	switch {
	case CheckLine(line, conf.Human):
		return entity.HumanWin
	case CheckLine(line, conf.Computer):
		return entity.ComputerWin
	default:
		return entity.InProgress
	}
}

func winnerOf(mark entity.Mark, conf entity.GameConfig) entity.Outcome {
	if conf.IsHuman(mark) {
		return entity.HumanWin
	}

	return entity.ComputerWin
}
