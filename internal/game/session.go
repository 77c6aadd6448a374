package game

import "strings"

// Reason codes carried by failed results.
const (
	ReasonInvalidNames      = "invalid-names"
	ReasonNoPlayers         = "no-players"
	ReasonNotRunning        = "not-running"
	ReasonOccupiedOrInvalid = "occupied-or-invalid"
)

// Round statuses carried by successful PlayRound results.
const (
	StatusWin      = "win"
	StatusDraw     = "draw"
	StatusContinue = "continue"
)

// Player - a named participant with a fixed mark. Marks are assigned once
// per session and never swap between players.
type Player struct {
	Name string `json:"name"`
	Mark string `json:"mark"`
}

// Result - the structured outcome of a session operation. Failures carry a
// reason code instead of an error; the session never panics and never logs.
type Result struct {
	OK     bool    `json:"ok"`
	Reason string  `json:"reason,omitempty"`
	Status string  `json:"status,omitempty"`
	Winner *Player `json:"winner,omitempty"`
	Next   *Player `json:"next,omitempty"`
}

// Session - one game lifecycle from start through win or draw. It owns the
// board and both players; all mutation goes through its operations.
type Session struct {
	board   *Board
	playerX *Player
	playerO *Player
	active  *Player
	running bool
}

// NewSession - returns a session with an empty board and two unnamed
// players holding the fixed X and O marks. The session is reused across
// restarts; it is not running until Start succeeds.
func NewSession() *Session {
	return &Session{
		board:   NewBoard(),
		playerX: &Player{Mark: PlayerX},
		playerO: &Player{Mark: PlayerO},
	}
}

// Start - begins a fresh game with the given names. It fails with
// ReasonInvalidNames when either name is blank or the two names are equal
// (exact string match). On success the board is reset, the X player is
// active, and the session is running.
func (that *Session) Start(nameX, nameO string) Result {
	if isBlank(nameX) || isBlank(nameO) || nameX == nameO {
		return Result{Reason: ReasonInvalidNames}
	}

	that.playerX.Name = nameX
	that.playerO.Name = nameO
	that.board.Reset()
	that.active = that.playerX
	that.running = true

	return Result{OK: true}
}

// Restart - begins a fresh game keeping the names from the previous start.
// It fails with ReasonNoPlayers when Start has never succeeded.
func (that *Session) Restart() Result {
	if that.playerX.Name == "" || that.playerO.Name == "" {
		return Result{Reason: ReasonNoPlayers}
	}

	that.board.Reset()
	that.active = that.playerX
	that.running = true

	return Result{OK: true}
}

// PlayRound - places the active player's mark at (row, col) and evaluates
// the game. It fails with ReasonNotRunning while the session is inactive
// and with ReasonOccupiedOrInvalid when the placement is rejected; neither
// failure changes any state.
func (that *Session) PlayRound(row, col int) Result {
	if !that.running {
		return Result{Reason: ReasonNotRunning}
	}

	mark := that.active.Mark
	if !that.board.Place(mark, row, col) {
		return Result{Reason: ReasonOccupiedOrInvalid}
	}

	// win is checked strictly before draw: a move that completes a line
	// while filling the board is a win
	if that.board.hasWin(mark) {
		that.running = false
		winner := *that.active

		return Result{OK: true, Status: StatusWin, Winner: &winner}
	}

	if that.board.isFull() {
		that.running = false

		return Result{OK: true, Status: StatusDraw}
	}

	that.active = that.toggleActive()
	next := *that.active

	return Result{OK: true, Status: StatusContinue, Next: &next}
}

// ActivePlayer - returns a copy of the player whose move is expected next.
func (that *Session) ActivePlayer() Player {
	if that.active == nil {
		return Player{}
	}

	return *that.active
}

// BoardSnapshot - delegates to Board.Snapshot.
func (that *Session) BoardSnapshot() [3][3]string {
	return that.board.Snapshot()
}

func (that *Session) IsRunning() bool {
	return that.running
}

func (that *Session) toggleActive() *Player {
	if that.active == that.playerX {
		return that.playerO
	}

	return that.playerX
}

// isBlank - empty or whitespace-only.
func isBlank(name string) bool {
	return strings.TrimSpace(name) == ""
}
