package service

import (
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Rule names the step of the heuristic that picked a move.
type Rule string

const (
	RuleRow          Rule = "row"
	RuleColumn       Rule = "column"
	RuleMainDiagonal Rule = "main_diagonal"
	RuleAntiDiagonal Rule = "anti_diagonal"
	RuleRandom       Rule = "random"
)

// lineRules follows the order of entity.Board.Lines.
var lineRules = [...]Rule{
	RuleRow, RuleRow, RuleRow,
	RuleColumn, RuleColumn, RuleColumn,
	RuleMainDiagonal, RuleAntiDiagonal,
}

// Move is a cell chosen by the bot.
type Move struct {
	Row  int
	Col  int
	Rule Rule
}

type BotService interface {
	ChooseMove(board *entity.Board) (Move, error)
}

type botService struct {
	rnd *rand.Rand
}

func NewBotService(rnd *rand.Rand) BotService {
	return &botService{
		rnd: rnd,
	}
}

// ChooseMove completes the first two-in-a-row it finds, whoever owns it:
// rows, then columns, then the main diagonal, then the anti diagonal.
// Without such a line it picks a random empty cell.
func (that *botService) ChooseMove(board *entity.Board) (Move, error) {
	if board.IsFull() {
		return Move{}, apperror.ErrNoAvailableMoves
	}

	for i, line := range board.Lines() {
		if cell, ok := line.Opportunity(); ok {
			return Move{Row: cell.Row, Col: cell.Col, Rule: lineRules[i]}, nil
		}
	}

	return that.randomMove(board), nil
}

// randomMove draws cells until it hits an empty one. The board must not be full.
func (that *botService) randomMove(board *entity.Board) Move {
	for {
		row, col := that.rnd.Intn(entity.Size), that.rnd.Intn(entity.Size) //nolint: gosec // it's ok
		if board.Get(row, col) == entity.EmptyCell {
			return Move{Row: row, Col: col, Rule: RuleRandom}
		}
	}
}
