package main

import (
	"context"
	"errors"
	"testing"
)

func TestRunArena(t *testing.T) {
	cfg := ArenaConfig{Games: 6, Workers: 3, LevelA: 1, RandomB: true}

	stats, err := RunArena(context.Background(), cfg, DefaultWeights())
	if err != nil {
		t.Fatalf("arena: %v", err)
	}

	if stats.Total() != cfg.Games {
		t.Fatalf("expected %d games, got %d", cfg.Games, stats.Total())
	}

	avgA, avgB := stats.AvgDiscs()
	if avgA+avgB > BoardSize*BoardSize || avgA+avgB <= 0 {
		t.Fatalf("unexpected average discs %.1f + %.1f", avgA, avgB)
	}

	if score := stats.ScoreA(); score < 0 || score > 100 {
		t.Fatalf("score out of range: %.1f", score)
	}

	final := stats.FinalBoard()
	if final == nil {
		t.Fatalf("expected the closing board of a game")
	}
	if final.HasMoves(White) || final.HasMoves(Black) {
		t.Fatalf("closing board still has moves:\n%s", final)
	}
}

func TestRunArenaCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := ArenaConfig{Games: 4, Workers: 1, LevelA: 2, LevelB: 2}
	if _, err := RunArena(ctx, cfg, DefaultWeights()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestArenaStatsRecord(t *testing.T) {
	var s ArenaStats

	s.record(Result{White: 40, Black: 24, Winner: White}, White, nil)
	s.record(Result{White: 40, Black: 24, Winner: White}, Black, nil)
	s.record(Result{White: 32, Black: 32, Winner: Blank}, White, nil)

	if s.WinsA() != 1 || s.WinsB() != 1 || s.Draws() != 1 {
		t.Fatalf("unexpected tally %d/%d/%d", s.WinsA(), s.WinsB(), s.Draws())
	}

	if s.FinalBoard() != nil {
		t.Fatalf("no board was recorded")
	}

	if got := s.ScoreA(); got != 50 {
		t.Fatalf("expected a 50%% score, got %.1f", got)
	}

	avgA, avgB := s.AvgDiscs()
	if avgA != 32 || avgB != 32 {
		t.Fatalf("expected 32 - 32, got %.1f - %.1f", avgA, avgB)
	}
}

func TestPercent(t *testing.T) {
	if got := percent(1, 4); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}

	if got := percent(int64(3), int64(0)); got != 0 {
		t.Fatalf("expected 0 for an empty whole, got %v", got)
	}
}
