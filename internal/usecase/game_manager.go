package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type interaction interface {
	PromptSymbol() (entity.Mark, error)
	PromptCoordinate(name string) (int, error)
	PromptConfirmation(message string) (bool, error)
	PromptReplay() (bool, error)

	DisplayRound(round int)
	DisplayBoard(board *entity.Board)
	DisplayMessage(text string)
}

type botService interface {
	ChooseMove(board *entity.Board) (service.Move, error)
}

// GameManager drives games between the human at the console and the bot.
// It owns the board of the current game.
type GameManager struct {
	logger  *slog.Logger
	console interaction
	bot     botService
	pause   time.Duration
}

func NewGameManager(logger *slog.Logger, ui interaction, bot botService, pause time.Duration) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		console: ui,
		bot:     bot,
		pause:   pause,
	}
}

// Run plays games until the human declines a replay.
func (that *GameManager) Run() error {
	for {
		if _, err := that.PlayGame(); err != nil {
			return fmt.Errorf("failed to play game: %w", err)
		}

		again, err := that.console.PromptReplay()
		if err != nil {
			return fmt.Errorf("failed to ask for replay: %w", err)
		}

		if !again {
			that.console.DisplayMessage("\nThank you for playing! Until next time!")
			return nil
		}

		that.console.DisplayMessage("\n")
	}
}

// PlayGame asks for the human symbol and plays rounds on a new board until the game is over.
func (that *GameManager) PlayGame() (entity.Outcome, error) {
	human, err := that.console.PromptSymbol()
	if err != nil {
		return entity.InProgress, fmt.Errorf("failed to choose symbol: %w", err)
	}

	conf := entity.NewGameConfig(human)
	board := entity.NewBoard()

	log := that.logger.With("human", human.String(), "computer", conf.Computer.String())
	log.Debug("game started")

	outcome, err := that.playRounds(board, conf)
	if err != nil {
		return entity.InProgress, err
	}

	that.console.DisplayMessage(outcome.Message())
	log.Debug("game finished", "outcome", outcome.String(), "half_moves", board.Filled())

	return outcome, nil
}

// playRounds lets X move first in every round, whichever side the human took.
func (that *GameManager) playRounds(board *entity.Board, conf entity.GameConfig) (entity.Outcome, error) {
	for round := 1; ; round++ {
		that.console.DisplayRound(round)
		that.console.DisplayBoard(board)

		for _, mark := range []entity.Mark{entity.PlayerX, entity.PlayerO} {
			outcome, err := that.halfMove(board, conf, mark)
			if err != nil {
				return entity.InProgress, fmt.Errorf("round %d: %w", round, err)
			}

			if outcome.IsFinished() {
				return outcome, nil
			}
		}
	}
}

func (that *GameManager) halfMove(board *entity.Board, conf entity.GameConfig, mark entity.Mark) (entity.Outcome, error) {
	that.wait()

	var (
		outcome entity.Outcome
		err     error
	)

	if conf.IsHuman(mark) {
		outcome, err = that.humanTurn(board, conf)
	} else {
		outcome, err = that.computerTurn(board, conf)
	}

	if err != nil {
		return entity.InProgress, err
	}

	that.wait()
	that.console.DisplayBoard(board)
	that.logger.Debug("half-move evaluated", "mark", mark.String(), "outcome", outcome.String())

	return outcome, nil
}

func (that *GameManager) humanTurn(board *entity.Board, conf entity.GameConfig) (entity.Outcome, error) {
	that.console.DisplayMessage(fmt.Sprintf("\nPlayer %s turn\n", conf.Human))

	row, col, err := that.acquireHumanMove(board, conf.Human)
	if err != nil {
		return entity.InProgress, fmt.Errorf("failed to acquire move: %w", err)
	}

	outcome, err := tictactoe.MakeTurn(board, conf, conf.Human, row, col)
	if err != nil {
		return entity.InProgress, fmt.Errorf("failed to make turn: %w", err)
	}

	that.console.DisplayMessage("\nMove placed!\n\n")

	return outcome, nil
}

// acquireHumanMove asks for a row and a column until they point at a free cell the human confirms.
// Declining the confirmation starts over with the row.
func (that *GameManager) acquireHumanMove(board *entity.Board, mark entity.Mark) (int, int, error) {
	for {
		row, err := that.console.PromptCoordinate("row")
		if err != nil {
			return 0, 0, err
		}

		col, err := that.console.PromptCoordinate("column")
		if err != nil {
			return 0, 0, err
		}

		if !tictactoe.IsCellFree(board, row, col) {
			that.console.DisplayMessage("\nOccupied coordinate. Please select another one.\n\n")
			continue
		}

		confirmed, err := that.console.PromptConfirmation(fmt.Sprintf("Place %s at row %d, column %d?", mark, row+1, col+1))
		if err != nil {
			return 0, 0, err
		}

		if confirmed {
			return row, col, nil
		}
	}
}

func (that *GameManager) computerTurn(board *entity.Board, conf entity.GameConfig) (entity.Outcome, error) {
	that.console.DisplayMessage(fmt.Sprintf("\nPlayer %s turn\n", conf.Computer))

	move, err := that.bot.ChooseMove(board)
	if err != nil {
		return entity.InProgress, fmt.Errorf("bot failed to choose move: %w", err)
	}

	that.logger.Debug("computer move", "row", move.Row, "col", move.Col, "rule", move.Rule)

	outcome, err := tictactoe.MakeTurn(board, conf, conf.Computer, move.Row, move.Col)
	if err != nil {
		return entity.InProgress, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.console.DisplayMessage("PC Move registered!\n\n")

	return outcome, nil
}

func (that *GameManager) wait() {
	if that.pause > 0 {
		time.Sleep(that.pause)
	}
}
