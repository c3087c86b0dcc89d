package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Size is the side length of the board.
const Size = 3

type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the complementary mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Cell is a board square together with its 0-indexed coordinates.
type Cell struct {
	Row  int
	Col  int
	Mark Mark
}

// Line is one of the eight winning triples.
type Line [Size]Cell

// IsComplete reports whether every cell of the line holds mark.
func (that Line) IsComplete(mark Mark) bool {
	if mark == EmptyCell {
		return false
	}

	for _, cell := range that {
		if cell.Mark != mark {
			return false
		}
	}

	return true
}

// Opportunity returns the only empty cell of a line whose two other cells hold the same mark.
// The owner of the pair does not matter.
func (that Line) Opportunity() (Cell, bool) {
	var (
		empty  Cell
		blanks int
		marks  []Mark
	)

	for _, cell := range that {
		if cell.Mark == EmptyCell {
			empty = cell
			blanks++
			continue
		}
		marks = append(marks, cell.Mark)
	}

	if blanks != 1 || marks[0] != marks[1] {
		return Cell{}, false
	}

	return empty, true
}

type Board struct {
	cells [Size][Size]Mark
}

func NewBoard() *Board {
	return &Board{}
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

func (that *Board) Get(row, col int) Mark {
	if !inBounds(row, col) {
		return EmptyCell
	}

	return that.cells[row][col]
}

// Set places mark on an empty cell. A placed mark is never overwritten.
func (that *Board) Set(row, col int, mark Mark) error {
	if !inBounds(row, col) {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCell, row, col)
	}

	if mark == EmptyCell {
		return fmt.Errorf("%w: empty mark", apperror.ErrInvalidCell)
	}

	if that.cells[row][col] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.cells[row][col] = mark

	return nil
}

func (that *Board) cell(row, col int) Cell {
	return Cell{Row: row, Col: col, Mark: that.cells[row][col]}
}

func (that *Board) Row(i int) Line {
	return Line{that.cell(i, 0), that.cell(i, 1), that.cell(i, 2)}
}

func (that *Board) Column(i int) Line {
	return Line{that.cell(0, i), that.cell(1, i), that.cell(2, i)}
}

func (that *Board) MainDiagonal() Line {
	return Line{that.cell(0, 0), that.cell(1, 1), that.cell(2, 2)}
}

func (that *Board) AntiDiagonal() Line {
	return Line{that.cell(0, 2), that.cell(1, 1), that.cell(2, 0)}
}

// Lines returns rows, then columns, then the main and the anti diagonal.
func (that *Board) Lines() []Line {
	lines := make([]Line, 0, 2*Size+2)
	for i := 0; i < Size; i++ {
		lines = append(lines, that.Row(i))
	}
	for i := 0; i < Size; i++ {
		lines = append(lines, that.Column(i))
	}

	return append(lines, that.MainDiagonal(), that.AntiDiagonal())
}

func (that *Board) EmptyCells() []Cell {
	var cells []Cell
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that.cells[row][col] == EmptyCell {
				cells = append(cells, that.cell(row, col))
			}
		}
	}

	return cells
}

// Filled counts the occupied cells, which equals the number of half-moves played.
func (that *Board) Filled() int {
	return Size*Size - len(that.EmptyCells())
}

func (that *Board) IsFull() bool {
	return that.Filled() == Size*Size
}
