package main

// boardPool is a free list of scratch boards. It belongs to one Searcher and
// is never touched by two goroutines at once.
type boardPool struct {
	free      []*Board
	live      int
	peak      int
	allocated int
}

// get hands out a board holding a copy of src.
func (p *boardPool) get(src *Board) *Board {
	var b *Board

	if n := len(p.free); n > 0 {
		b = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		b = &Board{}
		p.allocated++
	}

	b.CopyFrom(src)

	p.live++
	if p.live > p.peak {
		p.peak = p.live
	}

	return b
}

func (p *boardPool) put(b *Board) {
	p.live--
	p.free = append(p.free, b)
}
