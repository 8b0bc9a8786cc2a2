package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/profile"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "othello:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("othello", flag.ContinueOnError)

	configPath := fs.String("config", "", "JSON config file")
	level := fs.Int("level", DefaultLevel, "look-ahead level, 1 (easy) to 10 (hard)")
	color := fs.String("color", "white", "your colour: white (moves first) or black")
	hints := fs.Bool("hints", true, "highlight playable squares")
	logFile := fs.String("log", "", "log file")
	logLevel := fs.String("log-level", "info", "log level")
	games := fs.Int("arena", 0, "play this many computer games headless and print a summary")
	workers := fs.Int("workers", 0, "arena games played at once (0: one per CPU)")
	levelA := fs.Int("level-a", DefaultLevel, "arena level of side a")
	levelB := fs.Int("level-b", DefaultLevel, "arena level of side b")
	randomB := fs.Bool("random-b", false, "side b of the arena plays random moves")
	show := fs.Bool("show", false, "print the closing board of the last arena game")
	profileDir := fs.String("profile", "", "write a CPU profile of the arena run to this directory")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfigFile(*configPath)
	if err != nil {
		return err
	}

	// Flags given on the command line win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "level":
			cfg.Level = *level
		case "color":
			cfg.HumanColor = *color
		case "hints":
			cfg.ShowValidMoves = *hints
		case "log":
			cfg.LogFile = *logFile
		case "log-level":
			cfg.LogLevel = *logLevel
		case "arena":
			cfg.Arena.Games = *games
		case "workers":
			cfg.Arena.Workers = *workers
		case "level-a":
			cfg.Arena.LevelA = *levelA
		case "level-b":
			cfg.Arena.LevelB = *levelB
		case "random-b":
			cfg.Arena.RandomB = *randomB
		case "show":
			cfg.Arena.Show = *show
		case "profile":
			cfg.ProfileDir = *profileDir
		}
	})

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	headless := cfg.Arena.Games > 0

	closer, err := setupLogging(cfg, headless)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closer.Close()

	if headless {
		return runArena(cfg)
	}

	log.Info().Int("level", cfg.Level).Str("color", cfg.HumanColor).Msg("ui-start")

	return StartUI(NewConfigStore(cfg))
}

func loadConfigFile(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	return LoadConfig(path)
}

func runArena(cfg Config) error {
	return playArena(cfg, os.Stdout)
}

func playArena(cfg Config, w io.Writer) error {
	if cfg.ProfileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.ProfileDir), profile.Quiet).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := RunArena(ctx, cfg.Arena, cfg.Weights)

	if final := stats.FinalBoard(); cfg.Arena.Show && final != nil {
		if rerr := RenderBoard(w, final, Blank); rerr != nil && err == nil {
			err = rerr
		}
	}

	if rerr := RenderArena(w, cfg.Arena, stats); rerr != nil && err == nil {
		err = rerr
	}

	return err
}
