package main

import "errors"

var (
	ErrIllegalMove    = errors.New("illegal move")
	ErrOutOfBounds    = errors.New("cell is off the board")
	ErrGameOver       = errors.New("game is over")
	ErrLevelRange     = errors.New("look-ahead level out of range")
	ErrInvalidLevel   = errors.New("negative search depth")
	ErrNoBoard        = errors.New("no board to search")
	ErrSearchBusy     = errors.New("search already running")
	ErrSearchInFlight = errors.New("computer is still thinking")
	ErrStaleTurn      = errors.New("turn belongs to an abandoned game")
	ErrNotAwaiting    = errors.New("player is not awaiting a move")
	ErrBadWeights     = errors.New("invalid heuristic weights")
)
