package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	bigScore     = 9000 // beyond any reachable score
	perfectScore = 8003
)

type SearchResult struct {
	Move       Move
	HasMove    bool
	Score      int
	Level      int
	Nodes      int
	PeakBoards int
	Elapsed    time.Duration
}

// Searcher runs negamax with alpha-beta pruning. Each Searcher owns its
// scratch boards, so one Searcher runs one search at a time; use one per
// goroutine.
type Searcher struct {
	weights Weights
	busy    atomic.Bool
	pool    boardPool
	level   int
	nodes   int
}

func NewSearcher(w Weights) *Searcher {
	return &Searcher{weights: w}
}

// Search picks the move for mover on b, looking level plies past the root
// before falling back to Evaluate. b is only read. HasMove is false when
// mover has to pass.
func (s *Searcher) Search(b *Board, mover Disc, level int) (SearchResult, error) {
	if b == nil {
		return SearchResult{}, ErrNoBoard
	}

	if level < 0 {
		return SearchResult{}, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}

	if !s.busy.CompareAndSwap(false, true) {
		return SearchResult{}, ErrSearchBusy
	}
	defer s.busy.Store(false)

	s.level = level
	s.nodes = 0
	s.pool.peak = 0

	start := time.Now()
	score, move, ok := s.search(0, b, mover, -bigScore, bigScore)

	result := SearchResult{
		Move:       move,
		HasMove:    ok,
		Score:      score,
		Level:      level,
		Nodes:      s.nodes,
		PeakBoards: s.pool.peak,
		Elapsed:    time.Since(start),
	}

	log.Debug().
		Str("mover", mover.String()).
		Int("level", level).
		Bool("pass", !ok).
		Str("move", move.String()).
		Int("score", score).
		Int("nodes", result.Nodes).
		Int("peak-boards", result.PeakBoards).
		Dur("elapsed", result.Elapsed).
		Msg("search-complete")

	return result, nil
}

// search returns the score of b for mover and, if mover can play, the move
// that earns it. Scores are from mover's point of view.
func (s *Searcher) search(depth int, b *Board, mover Disc, alpha, beta int) (int, Move, bool) {
	s.nodes++

	if depth > s.level {
		return Evaluate(b, mover, s.weights), Move{}, false
	}

	opponent := Opponent(mover)

	bestScore := -bigScore
	if depth < s.level-1 {
		bestScore = alpha
	}

	var bestMove Move
	found := false
	possibleMoves := 0

	scratch := s.pool.get(b)
	defer s.pool.put(scratch)

	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if !b.LegalMove(mover, x, y) {
				continue
			}

			possibleMoves++
			scratch.CopyFrom(b)
			scratch.ApplyMove(mover, x, y)

			score, _, _ := s.search(depth+1, scratch, opponent, -beta, -bestScore)
			score = -score

			if score > bestScore {
				bestScore = score
				bestMove = Move{X: x, Y: y}
				found = true

				if score >= beta || score >= perfectScore {
					return score, bestMove, true
				}
			}
		}
	}

	if possibleMoves == 0 {
		// forced pass
		score, _, _ := s.search(depth+1, b, opponent, -beta, -bestScore)

		return -score, Move{}, false
	}

	// Mobility bonus on the last two plies before the horizon.
	if depth >= s.level-1 {
		bestScore += possibleMoves * s.weights.Mobility
	}

	return bestScore, bestMove, found
}
