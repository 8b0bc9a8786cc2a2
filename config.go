package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

type Config struct {
	Level          int         `json:"level"`
	HumanColor     string      `json:"human_color"`
	ShowValidMoves bool        `json:"show_valid_moves"`
	Weights        Weights     `json:"weights"`
	LogFile        string      `json:"log_file"`
	LogLevel       string      `json:"log_level"`
	ProfileDir     string      `json:"profile_dir"`
	Arena          ArenaConfig `json:"arena"`
}

// ArenaConfig describes a headless series of games between side A, always
// a computer, and side B. Colours alternate from game to game.
type ArenaConfig struct {
	Games   int  `json:"games"`
	Workers int  `json:"workers"`
	LevelA  int  `json:"level_a"`
	LevelB  int  `json:"level_b"`
	RandomB bool `json:"random_b"`
	Show    bool `json:"show"` // print the closing board of the last game
}

func DefaultConfig() Config {
	return Config{
		Level:          DefaultLevel,
		HumanColor:     "white", // white moves first
		ShowValidMoves: true,
		Weights:        DefaultWeights(),
		LogLevel:       "info",
		Arena: ArenaConfig{
			LevelA: DefaultLevel,
			LevelB: DefaultLevel,
		},
	}
}

// LoadConfig reads a JSON file over the defaults. Fields missing from the
// file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Level < MinLevel || c.Level > MaxLevel {
		return fmt.Errorf("level: %w: %d", ErrLevelRange, c.Level)
	}

	if _, err := c.HumanDisc(); err != nil {
		return err
	}

	if err := c.Weights.Validate(); err != nil {
		return err
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	a := c.Arena
	if a.Games < 0 || a.Workers < 0 {
		return fmt.Errorf("arena: games and workers must not be negative")
	}

	if a.Games > 0 {
		if a.LevelA < MinLevel || a.LevelA > MaxLevel {
			return fmt.Errorf("arena level a: %w: %d", ErrLevelRange, a.LevelA)
		}

		if !a.RandomB && (a.LevelB < MinLevel || a.LevelB > MaxLevel) {
			return fmt.Errorf("arena level b: %w: %d", ErrLevelRange, a.LevelB)
		}
	}

	return nil
}

// HumanDisc maps the configured colour to a disc.
func (c Config) HumanDisc() (Disc, error) {
	switch strings.ToLower(c.HumanColor) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}

	return Blank, fmt.Errorf("human colour %q: want white or black", c.HumanColor)
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func NewConfigStore(cfg Config) *ConfigStore {
	return &ConfigStore{config: cfg}
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
