package main

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// MoveRequest is what a player sees when asked to move. Board is the live
// board: read it only on the goroutine that owns the game.
type MoveRequest struct {
	Board *Board
	Mover Disc
	Level int
	epoch uint64
}

func (r MoveRequest) play(m Move) Turn {
	return Turn{Move: m, epoch: r.epoch}
}

func (r MoveRequest) pass() Turn {
	return Turn{Pass: true, epoch: r.epoch}
}

// Player decides moves. The returned channel delivers exactly one Turn and
// is then closed; a closed channel without a Turn means the player gave up.
type Player interface {
	Name() string
	IsHuman() bool
	RequestMove(req MoveRequest) <-chan Turn
}

// HumanPlayer answers through Submit, usually called from a click handler.
type HumanPlayer struct {
	mu  sync.Mutex
	req MoveRequest
	out chan Turn
}

func NewHumanPlayer() *HumanPlayer {
	return &HumanPlayer{}
}

func (h *HumanPlayer) Name() string {
	return "You"
}

func (h *HumanPlayer) IsHuman() bool {
	return true
}

// RequestMove passes at once when there is nothing to play; otherwise the
// turn is delivered by Submit.
func (h *HumanPlayer) RequestMove(req MoveRequest) <-chan Turn {
	out := make(chan Turn, 1)

	if !req.Board.HasMoves(req.Mover) {
		out <- req.pass()
		close(out)

		return out
	}

	h.mu.Lock()
	if h.out != nil {
		// the previous request was abandoned
		close(h.out)
	}
	h.req = req
	h.out = out
	h.mu.Unlock()

	return out
}

// Awaiting reports whether a request is waiting for Submit.
func (h *HumanPlayer) Awaiting() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.out != nil
}

// Cancel closes the outstanding request without a turn.
func (h *HumanPlayer) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.out != nil {
		close(h.out)
		h.out = nil
	}
}

// Submit delivers the cell the human picked. Illegal picks are refused and
// the request stays open.
func (h *HumanPlayer) Submit(x, y int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.out == nil {
		return ErrNotAwaiting
	}

	if !InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}

	if !h.req.Board.LegalMove(h.req.Mover, x, y) {
		return fmt.Errorf("%w: %v cannot play %v", ErrIllegalMove, h.req.Mover, Move{X: x, Y: y})
	}

	h.out <- h.req.play(Move{X: x, Y: y})
	close(h.out)
	h.out = nil

	return nil
}

// ComputerPlayer searches a copy of the board on its own goroutine. A request
// made while an abandoned search is still running waits for it to finish.
type ComputerPlayer struct {
	name     string
	mu       sync.Mutex // serializes searches over the one Searcher
	searcher *Searcher

	// FixedLevel, when positive, overrides the level of the request.
	FixedLevel int
}

func NewComputerPlayer(w Weights) *ComputerPlayer {
	return &ComputerPlayer{name: "Computer", searcher: NewSearcher(w)}
}

func (c *ComputerPlayer) Name() string {
	return c.name
}

func (c *ComputerPlayer) IsHuman() bool {
	return false
}

func (c *ComputerPlayer) RequestMove(req MoveRequest) <-chan Turn {
	out := make(chan Turn, 1)
	snapshot := req.Board.Copy()

	level := req.Level
	if c.FixedLevel > 0 {
		level = c.FixedLevel
	}

	go func() {
		defer close(out)

		c.mu.Lock()
		result, err := c.searcher.Search(snapshot, req.Mover, level)
		c.mu.Unlock()
		if err != nil {
			log.Error().Err(err).Str("mover", req.Mover.String()).Msg("search-failed")
			return
		}

		if !result.HasMove {
			out <- req.pass()
			return
		}

		out <- req.play(result.Move)
	}()

	return out
}

// RandomPlayer plays a uniformly random legal move. Used as a baseline in
// the arena.
type RandomPlayer struct{}

func (RandomPlayer) Name() string {
	return "Random"
}

func (RandomPlayer) IsHuman() bool {
	return false
}

func (RandomPlayer) RequestMove(req MoveRequest) <-chan Turn {
	out := make(chan Turn, 1)
	defer close(out)

	moves := req.Board.ValidMoves(req.Mover)
	if len(moves) == 0 {
		out <- req.pass()
		return out
	}

	out <- req.play(moves[frand.Intn(len(moves))])

	return out
}
