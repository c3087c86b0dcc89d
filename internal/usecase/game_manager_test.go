package usecase

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBot struct {
	mock.Mock
}

func (that *mockBot) ChooseMove(board *entity.Board) (service.Move, error) {
	args := that.Called(board)
	return args.Get(0).(service.Move), args.Error(1)
}

func (that *mockBot) expectMoves(cells ...[2]int) {
	for _, cell := range cells {
		that.On("ChooseMove", mock.Anything).
			Return(service.Move{Row: cell[0], Col: cell[1], Rule: service.RuleRandom}, nil).
			Once()
	}
}

func newTestManager(t *testing.T, bot *mockBot, lines ...string) (*GameManager, *bytes.Buffer) {
	t.Helper()

	st := suite.New(t)
	out := &bytes.Buffer{}
	cons := console.New(suite.Input(lines...), out, false)

	return NewGameManager(st.Logger, cons, bot, 0), out
}

// humanWinAsX is a game where the human takes the top row while the bot fills the middle row.
var humanWinAsX = []string{
	"x",
	"1", "1", "y",
	"1", "2", "y",
	"1", "3", "y",
}

func TestGameManager_PlayGame(t *testing.T) {
	t.Run("Human wins as X", func(t *testing.T) {
		// Given: the bot answers in the middle row
		bot := &mockBot{}
		bot.expectMoves([2]int{1, 0}, [2]int{1, 1})
		manager, out := newTestManager(t, bot, humanWinAsX...)

		// When: the game is played
		outcome, err := manager.PlayGame()

		// Then: the human wins in the third round before the bot moves again
		require.NoError(t, err)
		assert.Equal(t, entity.HumanWin, outcome)
		assert.Contains(t, out.String(), "####### Round 3 ########")
		assert.NotContains(t, out.String(), "Round 4")
		assert.Contains(t, out.String(), "You won!")
		bot.AssertExpectations(t)
		bot.AssertNumberOfCalls(t, "ChooseMove", 2)
	})

	t.Run("Computer moves first when the human takes O", func(t *testing.T) {
		// Given: the bot plays the main diagonal
		bot := &mockBot{}
		bot.expectMoves([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2})
		manager, out := newTestManager(t, bot,
			"o",
			"1", "2", "y",
			"1", "3", "y",
		)

		// When: the game is played
		outcome, err := manager.PlayGame()

		// Then: the computer wins through the diagonal
		require.NoError(t, err)
		assert.Equal(t, entity.ComputerWin, outcome)
		assert.Contains(t, out.String(), "You lost!")
		assert.Less(t, strings.Index(out.String(), "Player X turn"), strings.Index(out.String(), "Player O turn"))
		bot.AssertExpectations(t)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: moves ending in XOX / XOO / OXX
		bot := &mockBot{}
		bot.expectMoves([2]int{1, 1}, [2]int{0, 1}, [2]int{2, 0}, [2]int{1, 2})
		manager, out := newTestManager(t, bot,
			"x",
			"1", "1", "y",
			"1", "3", "y",
			"3", "2", "y",
			"2", "1", "y",
			"3", "3", "y",
		)

		// When: the game is played
		outcome, err := manager.PlayGame()

		// Then: the game ends as a draw after nine half-moves
		require.NoError(t, err)
		assert.Equal(t, entity.Draw, outcome)
		assert.Contains(t, out.String(), "Game over, no more space left!")
		assert.Contains(t, out.String(), "####### Round 5 ########")
		bot.AssertExpectations(t)
	})

	t.Run("Error when the bot picks an occupied cell", func(t *testing.T) {
		// Given: a bot that answers on the human's cell
		bot := &mockBot{}
		bot.expectMoves([2]int{0, 0})
		manager, _ := newTestManager(t, bot, "x", "1", "1", "y")

		// When: the game is played
		_, err := manager.PlayGame()

		// Then: the occupied cell is reported
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Error on closed input", func(t *testing.T) {
		bot := &mockBot{}
		manager, _ := newTestManager(t, bot, "x", "1")

		_, err := manager.PlayGame()

		require.ErrorIs(t, err, apperror.ErrInputClosed)
		bot.AssertNotCalled(t, "ChooseMove", mock.Anything)
	})
}

func TestGameManager_acquireHumanMove(t *testing.T) {
	t.Run("First confirmed move", func(t *testing.T) {
		// Given: an empty board
		board := entity.NewBoard()
		manager, _ := newTestManager(t, &mockBot{}, "1", "1", "y")

		// When: the human picks row 1, column 1 and confirms
		row, col, err := manager.acquireHumanMove(board, entity.PlayerX)

		// Then: the top left cell is returned
		require.NoError(t, err)
		assert.Equal(t, 0, row)
		assert.Equal(t, 0, col)
	})

	t.Run("Retries on invalid, occupied and declined moves", func(t *testing.T) {
		// Given: a board whose center is taken
		board := suite.Board(t, "...", ".O.", "...")
		manager, out := newTestManager(t, &mockBot{},
			"2", "2", // occupied
			"x", "1", "1", // invalid row, then a free cell
			"maybe", "n", // invalid confirmation, then declined
			"3", "3", "Y",
		)

		// When: the human finally confirms
		row, col, err := manager.acquireHumanMove(board, entity.PlayerX)

		// Then: the confirmed cell is returned and the board is untouched
		require.NoError(t, err)
		assert.Equal(t, 2, row)
		assert.Equal(t, 2, col)
		assert.Equal(t, suite.Board(t, "...", ".O.", "..."), board)
		assert.Contains(t, out.String(), "Occupied coordinate. Please select another one.")
		assert.Contains(t, out.String(), "Invalid coordinate.")
		assert.Contains(t, out.String(), "Invalid input.")
		assert.Contains(t, out.String(), "Place X at row 1, column 1? [y/n] ")
		assert.Contains(t, out.String(), "Place X at row 3, column 3? [y/n] ")
	})
}

func TestGameManager_Run(t *testing.T) {
	t.Run("Stops when replay is declined", func(t *testing.T) {
		// Given: one game followed by a declined replay
		bot := &mockBot{}
		bot.expectMoves([2]int{1, 0}, [2]int{1, 1})
		manager, out := newTestManager(t, bot, append(humanWinAsX, "n")...)

		// When: running the manager
		err := manager.Run()

		// Then: it says goodbye
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Want to play again? [y/n] ")
		assert.Contains(t, out.String(), "Thank you for playing! Until next time!")
	})

	t.Run("Invalid replay answer is asked again", func(t *testing.T) {
		// Given: an oversized and an unknown answer before the decline
		bot := &mockBot{}
		bot.expectMoves([2]int{1, 0}, [2]int{1, 1})
		manager, out := newTestManager(t, bot, append(humanWinAsX, strings.Repeat("y", 70000), "later", "n")...)

		// When: running the manager
		err := manager.Run()

		// Then: the prompt repeats until the decline
		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(out.String(), "Want to play again? [y/n] "))
		assert.Contains(t, out.String(), "Thank you for playing! Until next time!")
	})

	t.Run("Replay starts a fresh game", func(t *testing.T) {
		// Given: two identical games separated by an accepted replay
		bot := &mockBot{}
		bot.expectMoves([2]int{1, 0}, [2]int{1, 1}, [2]int{1, 0}, [2]int{1, 1})
		lines := append(append(append([]string{}, humanWinAsX...), "y"), humanWinAsX...)
		manager, out := newTestManager(t, bot, append(lines, "n")...)

		// When: running the manager
		err := manager.Run()

		// Then: the second game starts on an empty board from round 1
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(out.String(), "You won!"))
		assert.Equal(t, 2, strings.Count(out.String(), "####### Round 1 ########"))
		bot.AssertExpectations(t)
	})

	t.Run("Error on closed input", func(t *testing.T) {
		manager, _ := newTestManager(t, &mockBot{})

		err := manager.Run()

		assert.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}
