package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

func discRune(d Disc) rune {
	switch d {
	case White:
		return 'O'
	case Black:
		return 'X'
	}

	return '.'
}

// String draws the board with x across and y down, in the notation of
// Move.String.
func (b *Board) String() string {
	var sb strings.Builder

	sb.WriteString("  a b c d e f g h\n")
	for y := 0; y < BoardSize; y++ {
		fmt.Fprintf(&sb, "%d", y+1)
		for x := 0; x < BoardSize; x++ {
			sb.WriteByte(' ')
			sb.WriteRune(discRune(b.cells[x][y]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// RenderBoard writes the board with coloured discs. Legal moves of hint are
// marked; pass Blank for none. Colours are dropped when w is not a terminal.
func RenderBoard(w io.Writer, b *Board, hint Disc) error {
	out := termenv.NewOutput(w)

	white := out.String(string(discRune(White))).Foreground(out.Color("15")).Bold()
	black := out.String(string(discRune(Black))).Foreground(out.Color("9")).Bold()
	legal := out.String("*").Foreground(out.Color("10")).Faint()
	empty := out.String(string(discRune(Blank))).Faint()

	var sb strings.Builder

	sb.WriteString("  a b c d e f g h\n")
	for y := 0; y < BoardSize; y++ {
		fmt.Fprintf(&sb, "%d", y+1)
		for x := 0; x < BoardSize; x++ {
			sb.WriteByte(' ')

			switch d := b.cells[x][y]; {
			case d == White:
				sb.WriteString(white.String())
			case d == Black:
				sb.WriteString(black.String())
			case hint != Blank && b.LegalMove(hint, x, y):
				sb.WriteString(legal.String())
			default:
				sb.WriteString(empty.String())
			}
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// RenderArena writes the summary of an arena run.
func RenderArena(w io.Writer, cfg ArenaConfig, s *ArenaStats) error {
	out := termenv.NewOutput(w)

	nameB := fmt.Sprintf("level %d", cfg.LevelB)
	if cfg.RandomB {
		nameB = "random"
	}

	avgA, avgB := s.AvgDiscs()
	header := out.String(fmt.Sprintf("level %d vs %s", cfg.LevelA, nameB)).Bold()

	_, err := fmt.Fprintf(w,
		"%s\ngames: %d\nwins a: %d\nwins b: %d\ndraws: %d\nscore a: %.1f%%\navg discs: %.1f - %.1f\n",
		header, s.Total(), s.WinsA(), s.WinsB(), s.Draws(), s.ScoreA(), avgA, avgB)

	return err
}
