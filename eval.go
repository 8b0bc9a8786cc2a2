package main

import "fmt"

// Weights tunes the static evaluation and the mobility bonus of the search.
type Weights struct {
	Corner   int `json:"corner"`
	Inside   int `json:"inside"`
	Mobility int `json:"mobility"`
}

func DefaultWeights() Weights {
	return Weights{
		Corner:   300,
		Inside:   50,
		Mobility: 8,
	}
}

// Validate keeps a corner worth more than the square that gives it away.
func (w Weights) Validate() error {
	if w.Inside <= 0 || w.Corner <= w.Inside {
		return fmt.Errorf("%w: need corner > inside > 0, got corner=%d inside=%d", ErrBadWeights, w.Corner, w.Inside)
	}

	if w.Mobility < 0 {
		return fmt.Errorf("%w: mobility %d is negative", ErrBadWeights, w.Mobility)
	}

	return nil
}

var (
	corners = [4][2]int{{0, 0}, {BoardSize - 1, 0}, {0, BoardSize - 1}, {BoardSize - 1, BoardSize - 1}}
	insides = [4][2]int{{1, 1}, {BoardSize - 2, 1}, {1, BoardSize - 2}, {BoardSize - 2, BoardSize - 2}}
)

// Evaluate scores the board for player from who holds the corners. An open
// corner counts against whoever sits on the X-square diagonally inside it.
func Evaluate(b *Board, player Disc, w Weights) int {
	opponent := Opponent(player)
	score := 0

	for i, corner := range corners {
		switch b.cells[corner[0]][corner[1]] {
		case player:
			score += w.Corner
		case opponent:
			score -= w.Corner
		default:
			inside := insides[i]
			switch b.cells[inside[0]][inside[1]] {
			case player:
				score -= w.Inside
			case opponent:
				score += w.Inside
			}
		}
	}

	return score
}
