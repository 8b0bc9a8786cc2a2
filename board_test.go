package main

import (
	"reflect"
	"strings"
	"testing"
)

// boardFrom builds a board from rows of 'O' (white), 'X' (black) and '.',
// top row first. Spaces are ignored.
func boardFrom(t *testing.T, rows ...string) *Board {
	t.Helper()

	if len(rows) != BoardSize {
		t.Fatalf("need %d rows, got %d", BoardSize, len(rows))
	}

	b := &Board{}
	for y, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != BoardSize {
			t.Fatalf("row %d has %d cells", y, len(row))
		}

		for x, c := range row {
			switch c {
			case 'O':
				b.cells[x][y] = White
			case 'X':
				b.cells[x][y] = Black
			case '.':
			default:
				t.Fatalf("bad cell %q in row %d", c, y)
			}
		}
	}

	return b
}

func TestResetPlacesStartingDiscs(t *testing.T) {
	b := NewBoard()
	b.ApplyMove(White, 2, 4)
	b.Reset(White, Black)

	want := map[[2]int]Disc{{3, 3}: White, {3, 4}: Black, {4, 3}: Black, {4, 4}: White}
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if got := b.At(x, y); got != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, got, want[[2]int{x, y}])
			}
		}
	}

	if b.Occupied() != 4 {
		t.Fatalf("expected 4 occupied cells, got %d", b.Occupied())
	}
}

func TestLegalFirstMoves(t *testing.T) {
	tests := []struct {
		player Disc
		want   []Move
	}{
		{White, []Move{{2, 4}, {3, 5}, {4, 2}, {5, 3}}},
		{Black, []Move{{2, 3}, {3, 2}, {4, 5}, {5, 4}}},
	}

	for _, tt := range tests {
		got := NewBoard().ValidMoves(tt.player)
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("%v: expected %v, got %v", tt.player, tt.want, got)
		}
	}
}

func TestApplyMoveFlipsOnlyTheCapturedRun(t *testing.T) {
	b := NewBoard()

	if flips := b.Flips(Black, 2, 3); !reflect.DeepEqual(flips, [][2]int{{3, 3}}) {
		t.Fatalf("expected (2,3) to flip only (3,3), got %v", flips)
	}

	if !b.ApplyMove(Black, 2, 3) {
		t.Fatalf("expected (2,3) to be legal for black")
	}

	want := boardFrom(t,
		"........",
		"........",
		"........",
		"..XXX...",
		"...XO...",
		"........",
		"........",
		"........",
	)
	if !b.Equal(want) {
		t.Fatalf("unexpected board after move:\n%s\nwant:\n%s", b, want)
	}
}

func TestApplyMoveFlipsSeveralDirections(t *testing.T) {
	b := boardFrom(t,
		"O.O.O...",
		".XXX....",
		"OX.XO...",
		".XXX....",
		"O.O.O...",
		"........",
		"........",
		"........",
	)

	if !b.ApplyMove(White, 2, 2) {
		t.Fatalf("expected move to be legal")
	}

	want := boardFrom(t,
		"O.O.O...",
		".OOO....",
		"OOOOO...",
		".OOO....",
		"O.O.O...",
		"........",
		"........",
		"........",
	)
	if !b.Equal(want) {
		t.Fatalf("unexpected board:\n%s", b)
	}
}

func TestIllegalMovesLeaveBoardUntouched(t *testing.T) {
	tests := []struct {
		name   string
		board  []string
		player Disc
		x, y   int
	}{
		{
			name:   "occupied",
			board:  []string{"........", "........", "........", "...OX...", "...XO...", "........", "........", "........"},
			player: White, x: 3, y: 3,
		},
		{
			name:   "no neighbours",
			board:  []string{"........", "........", "........", "...OX...", "...XO...", "........", "........", "........"},
			player: White, x: 0, y: 0,
		},
		{
			name:   "run walks off the edge",
			board:  []string{".XXXXXXX", "........", "........", "........", "........", "........", "........", "........"},
			player: White, x: 0, y: 0,
		},
		{
			name:   "run ends on an empty cell",
			board:  []string{".XX.O...", "........", "........", "........", "........", "........", "........", "........"},
			player: White, x: 0, y: 0,
		},
		{
			name:   "own disc adjacent",
			board:  []string{".OX.....", "........", "........", "........", "........", "........", "........", "........"},
			player: White, x: 0, y: 0,
		},
		{
			name:   "blank player",
			board:  []string{"........", "........", "........", "...OX...", "...XO...", "........", "........", "........"},
			player: Blank, x: 2, y: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFrom(t, tt.board...)
			before := b.Copy()

			if b.LegalMove(tt.player, tt.x, tt.y) {
				t.Fatalf("expected move to be illegal")
			}
			if b.ApplyMove(tt.player, tt.x, tt.y) {
				t.Fatalf("expected ApplyMove to refuse")
			}
			if !b.Equal(before) {
				t.Fatalf("board changed:\n%s", b)
			}
		})
	}
}

// playScripted plays a whole game choosing the n-th legal move each turn and
// calls check before every move.
func playScripted(t *testing.T, pick func(turn int, moves []Move) Move, check func(b *Board, mover Disc)) *Board {
	t.Helper()

	b := NewBoard()
	mover := White
	passes := 0

	for turn := 0; passes < 2; turn++ {
		moves := b.ValidMoves(mover)
		if len(moves) == 0 {
			passes++
			mover = Opponent(mover)
			continue
		}

		passes = 0
		if check != nil {
			check(b, mover)
		}

		m := pick(turn, moves)
		if !b.ApplyMove(mover, m.X, m.Y) {
			t.Fatalf("turn %d: listed move %v was refused", turn, m)
		}
		mover = Opponent(mover)
	}

	return b
}

func TestApplyMoveAgreesWithLegalMove(t *testing.T) {
	pickers := []func(int, []Move) Move{
		func(_ int, moves []Move) Move { return moves[0] },
		func(_ int, moves []Move) Move { return moves[len(moves)-1] },
		func(turn int, moves []Move) Move { return moves[turn%len(moves)] },
	}

	for _, pick := range pickers {
		playScripted(t, pick, func(b *Board, _ Disc) {
			for _, player := range []Disc{White, Black} {
				for x := 0; x < BoardSize; x++ {
					for y := 0; y < BoardSize; y++ {
						before := b.Copy()
						legal := b.LegalMove(player, x, y)
						if !b.Equal(before) {
							t.Fatalf("LegalMove changed the board")
						}

						scratch := b.Copy()
						if applied := scratch.ApplyMove(player, x, y); applied != legal {
							t.Fatalf("%v at (%d,%d): LegalMove=%v ApplyMove=%v\n%s", player, x, y, legal, applied, b)
						}
					}
				}
			}
		})
	}
}

func TestMovesNeverRemoveDiscs(t *testing.T) {
	playScripted(t, func(turn int, moves []Move) Move {
		return moves[(turn*7)%len(moves)]
	}, func(b *Board, mover Disc) {
		for _, m := range b.ValidMoves(mover) {
			scratch := b.Copy()
			flips := len(b.Flips(mover, m.X, m.Y))
			scratch.ApplyMove(mover, m.X, m.Y)

			if got, want := scratch.Occupied(), b.Occupied()+1; got != want {
				t.Fatalf("occupied went from %d to %d", b.Occupied(), got)
			}
			if got, want := scratch.Count(mover), b.Count(mover)+1+flips; got != want {
				t.Fatalf("mover count %d, want %d", got, want)
			}
			if flips < 1 {
				t.Fatalf("legal move %v flipped nothing", m)
			}
		}
	})
}

func TestCopyFromMatchesSource(t *testing.T) {
	src := playScripted(t, func(turn int, moves []Move) Move {
		return moves[turn%len(moves)]
	}, nil)

	dst := NewBoard()
	dst.CopyFrom(src)

	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if dst.At(x, y) != src.At(x, y) {
				t.Fatalf("cell (%d,%d): %v != %v", x, y, dst.At(x, y), src.At(x, y))
			}
		}
	}

	occupied := dst.Occupied()
	src.Reset(White, Black)
	if dst.Occupied() != occupied {
		t.Fatalf("copy is aliased to its source")
	}
}

func TestWatchFiresForChangedCellsOnly(t *testing.T) {
	b := NewBoard()

	changes := map[[2]int]Disc{}
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			b.Watch(x, y, func(x, y int, occupant Disc) {
				changes[[2]int{x, y}] = occupant
			})
		}
	}

	b.ApplyMove(Black, 2, 3)

	want := map[[2]int]Disc{{2, 3}: Black, {3, 3}: Black}
	if !reflect.DeepEqual(changes, want) {
		t.Fatalf("expected %v, got %v", want, changes)
	}

	scratch := b.Copy()
	clear(changes)
	scratch.ApplyMove(White, 2, 2)
	if len(changes) != 0 {
		t.Fatalf("copy fired listeners of its source: %v", changes)
	}

	b.Reset(White, Black)
	want = map[[2]int]Disc{{2, 3}: Blank, {3, 3}: White}
	if !reflect.DeepEqual(changes, want) {
		t.Fatalf("reset: expected %v, got %v", want, changes)
	}
}

func TestOffBoardCoordinatesPanic(t *testing.T) {
	calls := map[string]func(b *Board){
		"At":        func(b *Board) { b.At(8, 0) },
		"LegalMove": func(b *Board) { b.LegalMove(White, -1, 3) },
		"ApplyMove": func(b *Board) { b.ApplyMove(White, 3, 8) },
		"Watch":     func(b *Board) { b.Watch(0, -1, nil) },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected a panic")
				}
			}()
			call(NewBoard())
		})
	}
}

func TestMoveString(t *testing.T) {
	if got := (Move{X: 2, Y: 3}).String(); got != "c4" {
		t.Fatalf("expected c4, got %s", got)
	}
}
