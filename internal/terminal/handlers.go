package terminal

import (
	"strconv"
	"strings"

	"github.com/pixelfold/tictactoe/internal/game"
)

// reasonText - maps core reason codes to the inline text shown to the user.
var reasonText = map[string]string{
	game.ReasonInvalidNames:      "names must be non-blank and different",
	game.ReasonNoPlayers:         "no players yet, start a game first",
	game.ReasonNotRunning:        "no game in progress, use start or restart",
	game.ReasonOccupiedOrInvalid: "that cell is taken or out of range",
}

func (that *Client) handleStart(args []string) error {
	if len(args) != 2 {
		return that.printf("usage: start <playerX> <playerO>\n")
	}

	result := that.session.Start(args[0], args[1])
	if !result.OK {
		return that.printf("%s\n", reasonText[result.Reason])
	}

	return that.printTurn()
}

func (that *Client) handleRestart(_ []string) error {
	result := that.session.Restart()
	if !result.OK {
		return that.printf("%s\n", reasonText[result.Reason])
	}

	return that.printTurn()
}

func (that *Client) handleMove(args []string) error {
	row, col, ok := parseCoords(args)
	if !ok {
		return that.printf("usage: move <row 0-2> <col 0-2>\n")
	}

	result := that.session.PlayRound(row, col)
	if !result.OK {
		return that.printf("%s\n", reasonText[result.Reason])
	}

	switch result.Status {
	case game.StatusWin:
		if err := that.printBoard(); err != nil {
			return err
		}
		return that.printf("%s (%s) wins!\n", result.Winner.Name, result.Winner.Mark)
	case game.StatusDraw:
		if err := that.printBoard(); err != nil {
			return err
		}
		return that.printf("draw, the board is full\n")
	default:
		return that.printTurn()
	}
}

func (that *Client) handleBoard(_ []string) error {
	return that.printBoard()
}

func (that *Client) handleHelp(_ []string) error {
	return that.printf("commands:\n" +
		"  start <playerX> <playerO>   begin a game with two names\n" +
		"  restart                     replay with the same names\n" +
		"  move <row> <col>            place your mark, rows and cols are 0-2\n" +
		"  board                       show the board\n" +
		"  quit                        leave\n")
}

func (that *Client) handleQuit(_ []string) error {
	return errQuit
}

// printTurn - renders the board and announces whose move is expected.
func (that *Client) printTurn() error {
	if err := that.printBoard(); err != nil {
		return err
	}

	active := that.session.ActivePlayer()

	return that.printf("%s (%s) to move\n", active.Name, active.Mark)
}

func (that *Client) printBoard() error {
	return that.printf("%s", renderBoard(that.session.BoardSnapshot()))
}

// renderBoard - draws the grid with row and column indexes; empty cells
// show as dots.
func renderBoard(grid [3][3]string) string {
	var builder strings.Builder

	builder.WriteString("    0   1   2\n")

	for row := range grid {
		builder.WriteString(strconv.Itoa(row) + " ")
		for col, mark := range grid[row] {
			if mark == game.EmptyCell {
				mark = "."
			}
			builder.WriteString(" " + mark + " ")
			if col < len(grid[row])-1 {
				builder.WriteString("|")
			}
		}
		builder.WriteString("\n")
		if row < len(grid)-1 {
			builder.WriteString("  ---+---+---\n")
		}
	}

	return builder.String()
}

// parseCoords - reads two integers from the move arguments.
func parseCoords(args []string) (int, int, bool) {
	if len(args) != 2 {
		return 0, 0, false
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, false
	}

	col, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, false
	}

	return row, col, true
}
