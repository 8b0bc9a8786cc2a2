package main

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

type ArenaStats struct {
	winsA  atomic.Uint32
	winsB  atomic.Uint32
	draws  atomic.Uint32
	discsA atomic.Int64
	discsB atomic.Int64

	mu    sync.Mutex
	final *Board // board of the game that finished last
}

func (s *ArenaStats) WinsA() int { return int(s.winsA.Load()) }
func (s *ArenaStats) WinsB() int { return int(s.winsB.Load()) }
func (s *ArenaStats) Draws() int { return int(s.draws.Load()) }

func (s *ArenaStats) Total() int {
	return s.WinsA() + s.WinsB() + s.Draws()
}

// ScoreA counts a draw as half a win.
func (s *ArenaStats) ScoreA() float64 {
	return percent(2*s.WinsA()+s.Draws(), 2*s.Total())
}

func (s *ArenaStats) AvgDiscs() (float64, float64) {
	total := int64(s.Total())
	if total == 0 {
		return 0, 0
	}

	return float64(s.discsA.Load()) / float64(total), float64(s.discsB.Load()) / float64(total)
}

// FinalBoard returns the closing position of the game that finished last, or
// nil before any game has finished.
func (s *ArenaStats) FinalBoard() *Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.final
}

func (s *ArenaStats) record(r Result, aDisc Disc, final *Board) {
	if final != nil {
		s.mu.Lock()
		s.final = final.Copy()
		s.mu.Unlock()
	}

	bDisc := Opponent(aDisc)
	discs := map[Disc]int{White: r.White, Black: r.Black}

	s.discsA.Add(int64(discs[aDisc]))
	s.discsB.Add(int64(discs[bDisc]))

	switch r.Winner {
	case aDisc:
		s.winsA.Add(1)
	case bDisc:
		s.winsB.Add(1)
	default:
		s.draws.Add(1)
	}
}

func percent[T constraints.Integer](part, whole T) float64 {
	if whole == 0 {
		return 0
	}

	return 100 * float64(part) / float64(whole)
}

func (a ArenaConfig) sideA(w Weights) Player {
	p := NewComputerPlayer(w)
	p.FixedLevel = a.LevelA

	return p
}

func (a ArenaConfig) sideB(w Weights) Player {
	if a.RandomB {
		return RandomPlayer{}
	}

	p := NewComputerPlayer(w)
	p.FixedLevel = a.LevelB

	return p
}

// RunArena plays cfg.Games games, cfg.Workers at a time. Every game gets its
// own players, so no searcher is shared between goroutines.
func RunArena(ctx context.Context, cfg ArenaConfig, w Weights) (*ArenaStats, error) {
	stats := &ArenaStats{}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	log.Info().
		Int("games", cfg.Games).
		Int("workers", workers).
		Int("level-a", cfg.LevelA).
		Int("level-b", cfg.LevelB).
		Bool("random-b", cfg.RandomB).
		Msg("arena-start")

	start := time.Now()

	for i := 0; i < cfg.Games; i++ {
		i := i
		g.Go(func() error {
			a, b := cfg.sideA(w), cfg.sideB(w)

			aDisc := White
			game := NewGame(a, b)
			if i%2 == 1 {
				aDisc = Black
				game = NewGame(b, a)
			}

			result, err := game.PlayOut(ctx)
			if err != nil {
				return fmt.Errorf("arena game %d: %w", i, err)
			}

			stats.record(result, aDisc, game.Board())

			log.Debug().
				Int("game", i).
				Str("a", aDisc.String()).
				Int("white", result.White).
				Int("black", result.Black).
				Str("winner", result.Winner.String()).
				Msg("arena-game")

			return nil
		})
	}

	err := g.Wait()

	log.Info().
		Int("played", stats.Total()).
		Int("wins-a", stats.WinsA()).
		Int("wins-b", stats.WinsB()).
		Int("draws", stats.Draws()).
		Dur("elapsed", time.Since(start)).
		Msg("arena-done")

	return stats, err
}
