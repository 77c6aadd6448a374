package terminal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/pixelfold/tictactoe/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runScript - feeds the client a scripted session and returns its output.
func runScript(t *testing.T, script string) string {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	out := &bytes.Buffer{}
	client := New(logger, game.NewSession(), out)

	err := client.Run(context.Background(), strings.NewReader(script))
	require.NoError(t, err)

	return out.String()
}

func TestClient_Run(t *testing.T) {
	t.Run("Plays a full game to a win", func(t *testing.T) {
		// Given: a scripted game where Alice completes the top row
		script := strings.Join([]string{
			"start Alice Bob",
			"move 0 0",
			"move 1 1",
			"move 0 1",
			"move 2 2",
			"move 0 2",
			"quit",
		}, "\n")

		// When: the client runs the script
		output := runScript(t, script)

		// Then: turns alternate and the win is announced
		assert.Contains(t, output, "Alice (X) to move")
		assert.Contains(t, output, "Bob (O) to move")
		assert.Contains(t, output, "Alice (X) wins!")
	})

	t.Run("Surfaces invalid names inline", func(t *testing.T) {
		// Given: a start command with equal names
		output := runScript(t, "start Alice Alice\n")

		// Then: the reason is shown and no turn is announced
		assert.Contains(t, output, "names must be non-blank and different")
		assert.NotContains(t, output, "to move")
	})

	t.Run("Rejects moves before a game starts", func(t *testing.T) {
		// Given: a move command with no game running
		output := runScript(t, "move 0 0\n")

		// Then: the user is pointed at start
		assert.Contains(t, output, "no game in progress")
	})

	t.Run("Rejects restart before any start", func(t *testing.T) {
		output := runScript(t, "restart\n")

		assert.Contains(t, output, "no players yet")
	})

	t.Run("Reports an occupied cell", func(t *testing.T) {
		// Given: two moves targeting the same cell
		script := "start Alice Bob\nmove 1 1\nmove 1 1\n"

		output := runScript(t, script)

		assert.Contains(t, output, "that cell is taken or out of range")
	})

	t.Run("Handles unknown commands and bad arguments", func(t *testing.T) {
		script := strings.Join([]string{
			"dance",
			"start OnlyOne",
			"start Alice Bob",
			"move one two",
		}, "\n")

		output := runScript(t, script)

		assert.Contains(t, output, `unknown command "dance"`)
		assert.Contains(t, output, "usage: start <playerX> <playerO>")
		assert.Contains(t, output, "usage: move <row 0-2> <col 0-2>")
	})

	t.Run("Renders the board grid", func(t *testing.T) {
		script := "start Alice Bob\nmove 0 0\nboard\n"

		output := runScript(t, script)

		assert.Contains(t, output, "    0   1   2")
		assert.Contains(t, output, "0  X | . | . ")
	})

	t.Run("Stops on quit before consuming later commands", func(t *testing.T) {
		// Given: a script with commands after quit
		output := runScript(t, "quit\nstart Alice Bob\n")

		// Then: nothing after quit runs
		assert.NotContains(t, output, "to move")
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		// Given: a canceled context and a blocked reader
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		out := &bytes.Buffer{}
		client := New(logger, game.NewSession(), out)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: running against input that never arrives
		reader, writer := io.Pipe()
		defer writer.Close()

		err := client.Run(ctx, reader)

		// Then: the client returns without error
		require.NoError(t, err)
	})
}
