package suite

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return &Suite{
		T:      t,
		Logger: logger,
	}
}

// Input joins lines into a reader the console can consume, one answer per line.
func Input(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}

	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// Board builds a board from three rows such as "XO.", where "." is an empty cell.
func Board(t *testing.T, rows ...string) *entity.Board {
	t.Helper()

	if len(rows) != entity.Size {
		t.Fatalf("board needs %d rows, got %d", entity.Size, len(rows))
	}

	board := entity.NewBoard()
	for row, line := range rows {
		if len(line) != entity.Size {
			t.Fatalf("row %d needs %d cells, got %q", row, entity.Size, line)
		}

		for col, ch := range line {
			var mark entity.Mark
			switch ch {
			case 'X':
				mark = entity.PlayerX
			case 'O':
				mark = entity.PlayerO
			case '.':
				continue
			default:
				t.Fatalf("unknown cell %q at row %d, column %d", ch, row, col)
			}

			if err := board.Set(row, col, mark); err != nil {
				t.Fatalf("could not set cell: %v", err)
			}
		}
	}

	return board
}
