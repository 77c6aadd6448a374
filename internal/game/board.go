package game

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

const boardSize = 3

// WinTriples - the 8 fixed winning lines over the flat board:
// 3 rows, 3 columns, 2 diagonals.
var WinTriples = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board holds the 3x3 grid of cell marks, row-major.
type Board struct {
	cells [9]string
}

func NewBoard() *Board {
	return &Board{}
}

// Place - puts mark at (row, col). It returns false without touching the
// board when the coordinates are outside the 0-2 range or the target cell
// is already occupied; there is no error path, an invalid move is an
// ordinary outcome.
func (that *Board) Place(mark string, row, col int) bool {
	if row < 0 || row >= boardSize || col < 0 || col >= boardSize {
		return false
	}

	idx := row*boardSize + col
	if that.cells[idx] != EmptyCell {
		return false
	}

	that.cells[idx] = mark

	return true
}

// Snapshot - returns an independent copy of the grid; mutating the copy
// never affects the board.
func (that *Board) Snapshot() [3][3]string {
	var grid [3][3]string
	for i, cell := range that.cells {
		grid[i/boardSize][i%boardSize] = cell
	}

	return grid
}

// Reset - sets every cell back to empty.
func (that *Board) Reset() {
	that.cells = [9]string{}
}

// hasWin - reports whether mark holds every cell of at least one winning triple.
func (that *Board) hasWin(mark string) bool {
	for _, triple := range WinTriples {
		if that.cells[triple[0]] == mark && that.cells[triple[1]] == mark && that.cells[triple[2]] == mark {
			return true
		}
	}

	return false
}

// isFull - reports whether no empty cell remains.
func (that *Board) isFull() bool {
	for _, cell := range that.cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}
