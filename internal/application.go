package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - runs games on the given input and output until the player stops.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	cons := console.New(in, out, conf.Color)
	botService := service.NewBotService(rand.New(rand.NewSource(time.Now().UnixNano()))) //nolint: gosec // it's ok
	gameManager := usecase.NewGameManager(logger, cons, botService, conf.MovePause)

	log.Info("Starting game", "move_pause", conf.MovePause.String())

	if err := gameManager.Run(); err != nil {
		if errors.Is(err, apperror.ErrInputClosed) {
			log.Info("Input closed, shutting down")
			return nil
		}

		return fmt.Errorf("game error: %w", err)
	}

	log.Info("Player left, shutting down")

	return nil
}
