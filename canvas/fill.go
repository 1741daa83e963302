package canvas

import (
	"github.com/bodgit/bitmap16/palette"
	"github.com/bodgit/bitmap16/sketch"
)

type point struct {
	x, y int
}

// Fill flood-fills the 4-connected region containing (x, y) with index.
// The fill is bounded by the live grid region; filling with the color the
// start cell already holds is a no-op and leaves the undo slot alone.
func (e *Editor) Fill(x, y int, index uint8) error {
	if err := e.check(x, y); err != nil {
		return err
	}
	if int(index) > palette.MaxColors {
		return ErrIndex
	}

	target := e.s.Pixels[y][x]
	if target == index {
		return nil
	}

	e.save(false)

	// Cells are marked visited as they are pushed, so each is pushed at
	// most once and the stack can never outgrow the grid.
	var (
		visited [sketch.GridMax][sketch.GridMax]bool
		stack   [sketch.GridMax * sketch.GridMax]point
	)

	stack[0] = point{x, y}
	visited[y][x] = true
	top := 1

	for top > 0 {
		top--
		p := stack[top]

		e.s.Pixels[p.y][p.x] = index

		for _, q := range [...]point{{p.x + 1, p.y}, {p.x - 1, p.y}, {p.x, p.y + 1}, {p.x, p.y - 1}} {
			if q.x < 0 || q.y < 0 || q.x >= e.s.GridSize || q.y >= e.s.GridSize {
				continue
			}
			if visited[q.y][q.x] || e.s.Pixels[q.y][q.x] != target {
				continue
			}
			visited[q.y][q.x] = true
			stack[top] = q
			top++
		}
	}

	return nil
}
