package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pixelfold/tictactoe/internal/game"
)

var errQuit = errors.New("quit requested")

type session interface {
	Start(nameX, nameO string) game.Result
	Restart() game.Result
	PlayRound(row, col int) game.Result

	ActivePlayer() game.Player
	BoardSnapshot() [3][3]string
	IsRunning() bool
}

// Client - a line-oriented front end over one game session. It reads
// commands from an injected reader and writes rendered state to an
// injected writer, so it works against any terminal and in tests.
type Client struct {
	logger  *slog.Logger
	session session
	out     io.Writer

	handlers map[string]func(args []string) error
}

func New(logger *slog.Logger, session session, out io.Writer) *Client {
	client := &Client{
		logger:  logger,
		session: session,
		out:     out,

		handlers: make(map[string]func(args []string) error),
	}

	client.handlers["start"] = client.handleStart
	client.handlers["restart"] = client.handleRestart
	client.handlers["move"] = client.handleMove
	client.handlers["board"] = client.handleBoard
	client.handlers["help"] = client.handleHelp
	client.handlers["quit"] = client.handleQuit

	return client
}

// Run - processes commands line by line until the input is exhausted, the
// quit command arrives, or the context is canceled.
func (that *Client) Run(ctx context.Context, in io.Reader) error {
	log := that.logger.With("component", "terminal")

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

	if err := that.handleHelp(nil); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("Context canceled, stopping")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return nil
			}

			if err := that.dispatch(line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
	}
}

// dispatch - routes one input line to its command handler.
func (that *Client) dispatch(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	handler, ok := that.handlers[fields[0]]
	if !ok {
		return that.printf("unknown command %q, try help\n", fields[0])
	}

	return handler(fields[1:])
}

func (that *Client) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
