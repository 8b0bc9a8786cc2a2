package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type State int

const (
	AwaitingMoveA State = iota
	AwaitingMoveB
	GameOver
)

func (s State) String() string {
	switch s {
	case AwaitingMoveA:
		return "awaiting-a"
	case AwaitingMoveB:
		return "awaiting-b"
	}

	return "game-over"
}

// Turn is a player's decision for one turn: a move, or a pass.
type Turn struct {
	Move  Move
	Pass  bool
	epoch uint64
}

type Result struct {
	White  int
	Black  int
	Winner Disc // Blank on a tie
}

type HistoryEntry struct {
	Player  Disc
	Move    Move
	Pass    bool
	Flipped int
}

// Game coordinates turns. Player A plays White and moves first, player B
// plays Black. All methods must be called from one goroutine; players do
// their thinking elsewhere and hand back a Turn for Apply.
type Game struct {
	board   *Board
	white   Player
	black   Player
	current Disc
	passes  int
	level   int
	state   State
	epoch   uint64
	pending bool
	result  Result
	history []HistoryEntry
}

// NewGame initializes a new game with the starting position
func NewGame(a, b Player) *Game {
	g := &Game{
		board: NewBoard(),
		white: a,
		black: b,
		level: DefaultLevel,
	}
	g.Reset()

	return g
}

// Reset starts the game over on the same board, so cell listeners survive.
func (g *Game) Reset() {
	g.board.Reset(White, Black)
	g.current = White
	g.passes = 0
	g.state = AwaitingMoveA
	g.epoch++
	g.pending = false
	g.result = Result{}
	g.history = nil

	log.Debug().Str("white", g.white.Name()).Str("black", g.black.Name()).Int("level", g.level).Msg("game-reset")
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Current() Disc {
	return g.current
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Passes() int {
	return g.passes
}

func (g *Game) Level() int {
	return g.level
}

// SetLevel changes the look-ahead used by the next computer request.
func (g *Game) SetLevel(level int) error {
	if level < MinLevel || level > MaxLevel {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrLevelRange, level, MinLevel, MaxLevel)
	}

	g.level = level

	return nil
}

func (g *Game) PlayerFor(d Disc) Player {
	if d == Black {
		return g.black
	}

	return g.white
}

func (g *Game) CurrentPlayer() Player {
	return g.PlayerFor(g.current)
}

// PlayerName returns the display name of whoever plays d.
func (g *Game) PlayerName(d Disc) string {
	return fmt.Sprintf("%s (%v)", g.PlayerFor(d).Name(), d)
}

func (g *Game) IsGameOver() bool {
	return g.state == GameOver
}

// Thinking reports whether a computer request is outstanding.
func (g *Game) Thinking() bool {
	return g.pending
}

func (g *Game) History() []HistoryEntry {
	return append([]HistoryEntry(nil), g.history...)
}

// GetScore returns the disc count of each side.
func (g *Game) GetScore() (int, int) {
	return g.board.Count(White), g.board.Count(Black)
}

// Result is the final tally once the game is over, the running tally before.
func (g *Game) Result() Result {
	if g.state == GameOver {
		return g.result
	}

	return g.tally()
}

// RequestMove asks the player to move. The Turn it delivers must be handed
// to Apply on the goroutine that owns the game.
func (g *Game) RequestMove() <-chan Turn {
	if g.state == GameOver {
		out := make(chan Turn)
		close(out)

		return out
	}

	g.epoch++
	player := g.CurrentPlayer()
	g.pending = !player.IsHuman()

	return player.RequestMove(MoveRequest{
		Board: g.board,
		Mover: g.current,
		Level: g.level,
		epoch: g.epoch,
	})
}

// Apply completes the outstanding request. Turns from an earlier request or
// an earlier game are discarded with ErrStaleTurn.
func (g *Game) Apply(t Turn) error {
	if t.epoch != g.epoch {
		return ErrStaleTurn
	}

	g.pending = false

	if t.Pass {
		return g.Pass()
	}

	return g.play(t.Move.X, t.Move.Y)
}

// Play moves for the current player directly, bypassing its request.
func (g *Game) Play(x, y int) error {
	if g.pending {
		return ErrSearchInFlight
	}

	return g.play(x, y)
}

// Pass skips the current player's turn, which is only allowed when it has
// no legal move. Two passes in a row end the game.
func (g *Game) Pass() error {
	if g.state == GameOver {
		return ErrGameOver
	}

	if g.board.HasMoves(g.current) {
		return fmt.Errorf("%w: %v has a move and cannot pass", ErrIllegalMove, g.current)
	}

	g.epoch++
	g.pending = false
	g.passes++
	g.history = append(g.history, HistoryEntry{Player: g.current, Pass: true})

	log.Debug().Str("player", g.current.String()).Int("passes", g.passes).Msg("turn-passed")

	if g.passes >= 2 {
		g.finish()
		return nil
	}

	g.SwitchTurn()

	return nil
}

// SwitchTurn switches the current player
func (g *Game) SwitchTurn() {
	g.current = Opponent(g.current)

	if g.current == White {
		g.state = AwaitingMoveA
	} else {
		g.state = AwaitingMoveB
	}
}

// PlayOut drives both players until the game ends. Cancelling ctx abandons
// the pending turn; a search in progress finishes on its own and is ignored.
func (g *Game) PlayOut(ctx context.Context) (Result, error) {
	for g.state != GameOver {
		if err := ctx.Err(); err != nil {
			return g.Result(), err
		}

		turns := g.RequestMove()

		select {
		case <-ctx.Done():
			return g.Result(), ctx.Err()
		case t, ok := <-turns:
			if !ok {
				return g.Result(), fmt.Errorf("%s gave up: %w", g.PlayerName(g.current), ErrNotAwaiting)
			}

			if err := g.Apply(t); err != nil {
				return g.Result(), err
			}
		}
	}

	return g.result, nil
}

func (g *Game) play(x, y int) error {
	if g.state == GameOver {
		return ErrGameOver
	}

	if !InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}

	move := Move{X: x, Y: y}
	flipped := len(g.board.Flips(g.current, x, y))

	if !g.board.ApplyMove(g.current, x, y) {
		return fmt.Errorf("%w: %v cannot play %v", ErrIllegalMove, g.current, move)
	}

	g.epoch++
	g.passes = 0
	g.history = append(g.history, HistoryEntry{Player: g.current, Move: move, Flipped: flipped})

	log.Debug().
		Str("player", g.current.String()).
		Str("move", move.String()).
		Int("flipped", flipped).
		Int("occupied", g.board.Occupied()).
		Msg("move-applied")

	g.SwitchTurn()

	return nil
}

func (g *Game) finish() {
	g.state = GameOver
	g.result = g.tally()

	log.Info().
		Int("white", g.result.White).
		Int("black", g.result.Black).
		Str("winner", g.result.Winner.String()).
		Int("turns", len(g.history)).
		Msg("game-over")
}

func (g *Game) tally() Result {
	white, black := g.GetScore()
	r := Result{White: white, Black: black, Winner: Blank}

	if white > black {
		r.Winner = White
	} else if black > white {
		r.Winner = Black
	}

	return r
}
