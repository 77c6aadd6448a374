package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pixelfold/tictactoe/internal/config"
	"github.com/pixelfold/tictactoe/internal/game"
	"github.com/pixelfold/tictactoe/internal/terminal"
)

var ErrPresetNames = errors.New("preset player names are invalid")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	session := game.NewSession()

	if conf.Players.HasPreset() {
		result := session.Start(conf.Players.XName, conf.Players.OName)
		if !result.OK {
			return fmt.Errorf("%w: %s", ErrPresetNames, result.Reason)
		}

		log.Info("Session started from preset names", "playerX", conf.Players.XName, "playerO", conf.Players.OName)
	}

	client := terminal.New(logger, session, os.Stdout)

	log.Info("Starting terminal client")
	if err := client.Run(ctx, os.Stdin); err != nil {
		return fmt.Errorf("terminal client error: %w", err)
	}

	log.Info("Terminal client stopped")

	return nil
}
