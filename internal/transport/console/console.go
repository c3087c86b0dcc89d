package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

const (
	colorX = "9"  // bright red
	colorO = "12" // bright blue

	// maxLineSize bounds a single answer; longer lines are rejected and drained.
	maxLineSize = 4096
)

// Console reads answers line by line and writes the game text.
// Every prompt repeats until the answer is valid; only a closed input ends it early.
type Console struct {
	reader *bufio.Reader
	out    *termenv.Output
	color  bool
}

func New(in io.Reader, out io.Writer, color bool) *Console {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI
	}

	return &Console{
		reader: bufio.NewReaderSize(in, maxLineSize),
		out:    termenv.NewOutput(out, termenv.WithProfile(profile)),
		color:  color,
	}
}

func (that *Console) readLine(prompt string) (string, error) {
	that.print(prompt)

	line, isPrefix, err := that.reader.ReadLine()
	if err != nil {
		return "", readError(err)
	}

	if !isPrefix {
		return string(line), nil
	}

	for isPrefix {
		if _, isPrefix, err = that.reader.ReadLine(); err != nil {
			return "", readError(err)
		}
	}

	return "", fmt.Errorf("%w: line too long", apperror.ErrInvalidInputFormat)
}

func readError(err error) error {
	if errors.Is(err, io.EOF) {
		return apperror.ErrInputClosed
	}

	return fmt.Errorf("failed to read input: %w", err)
}

// ask repeats prompt until parse accepts the answer, showing complaint after every rejected one.
func (that *Console) ask(prompt, complaint string, parse func(answer string) error) error {
	for {
		answer, err := that.readLine(prompt)
		if err == nil {
			err = parse(answer)
		}

		if err == nil {
			return nil
		}

		if !errors.Is(err, apperror.ErrInvalidInputFormat) {
			return err
		}

		that.DisplayMessage(complaint)
	}
}

func (that *Console) PromptSymbol() (entity.Mark, error) {
	var mark entity.Mark

	err := that.ask("X or O? ", "Invalid symbol. Make sure to input either 'X' or 'O'.\n", func(answer string) error {
		var err error
		mark, err = tictactoe.ParseSymbol(answer)
		return err
	})
	if err != nil {
		return entity.EmptyCell, err
	}

	that.DisplayMessage("You successfully selected " + that.mark(mark))

	return mark, nil
}

// PromptCoordinate asks for a 1-indexed coordinate and returns it 0-indexed.
func (that *Console) PromptCoordinate(name string) (int, error) {
	var coord int

	err := that.ask(fmt.Sprintf("Which %s? ", name), "\nInvalid coordinate. Make sure to input either 1, 2 or 3.\n\n",
		func(answer string) error {
			var err error
			coord, err = tictactoe.ParseCoordinate(answer)
			return err
		})
	if err != nil {
		return 0, err
	}

	return coord, nil
}

func (that *Console) PromptConfirmation(message string) (bool, error) {
	return that.confirm(message+" [y/n] ", "\nInvalid input. Make sure to input either 'y' or 'n'.\n\n")
}

// PromptReplay asks whether to start another game.
func (that *Console) PromptReplay() (bool, error) {
	return that.confirm("\n\nWant to play again? [y/n] ", "\nInvalid input. Make sure to input either 'y' or 'n'.")
}

func (that *Console) confirm(prompt, complaint string) (bool, error) {
	var confirmed bool

	err := that.ask(prompt, complaint, func(answer string) error {
		var err error
		confirmed, err = tictactoe.ParseConfirmation(answer)
		return err
	})
	if err != nil {
		return false, err
	}

	return confirmed, nil
}

func (that *Console) DisplayRound(round int) {
	banner := strings.Repeat("#", 24)
	that.DisplayMessage(fmt.Sprintf("\n%s\n%s Round %d %s\n%s",
		banner, strings.Repeat("#", 7), round, strings.Repeat("#", 8), banner))
}

func (that *Console) DisplayBoard(board *entity.Board) {
	separator := "\n" + strings.Repeat("~", 24) + "\n"
	divide := strings.Join([]string{"-----", "-----", "-----", "-----"}, "+")

	var sb strings.Builder
	sb.WriteString("\nCurrent board:\n" + separator + "\n     |  1  |  2  |  3\n" + divide + "\n")

	for row := 0; row < entity.Size; row++ {
		cells := make([]string, entity.Size)
		for col := 0; col < entity.Size; col++ {
			cells[col] = that.mark(board.Get(row, col))
		}

		fmt.Fprintf(&sb, "  %d  |  %s\n", row+1, strings.Join(cells, "  |  "))
		if row < entity.Size-1 {
			sb.WriteString(divide + "\n")
		}
	}

	sb.WriteString(separator)
	that.DisplayMessage(sb.String())
}

func (that *Console) DisplayMessage(text string) {
	that.print(text + "\n")
}

func (that *Console) print(text string) {
	// a failed write to the terminal leaves nothing to report to
	_, _ = io.WriteString(that.out, text)
}

func (that *Console) mark(mark entity.Mark) string {
	if !that.color {
		return mark.String()
	}

	switch mark {
	case entity.PlayerX:
		return that.out.String(mark.String()).Foreground(that.out.Color(colorX)).Bold().String()
	case entity.PlayerO:
		return that.out.String(mark.String()).Foreground(that.out.Color(colorO)).Bold().String()
	default:
		return mark.String()
	}
}
