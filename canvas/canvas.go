/*
Package canvas implements editing of the active sketch: pixel placement,
erase, clear, flood fill, grid toggling, and a single level of undo.

Every mutating operation snapshots the full canvas before touching it, so
undo always reverses exactly the most recent operation and nothing
earlier.
*/
package canvas

import (
	"errors"

	"github.com/bodgit/bitmap16/palette"
	"github.com/bodgit/bitmap16/sketch"
)

var (
	// ErrBounds is returned when a coordinate falls outside the live
	// grid region.
	ErrBounds = errors.New("canvas: coordinates outside grid")

	// ErrIndex is returned for color indices beyond the 16 slots.
	ErrIndex = errors.New("canvas: invalid color index")

	// ErrNoUndo is returned by Undo when the undo slot is empty.
	ErrNoUndo = errors.New("canvas: nothing to undo")
)

// Editor owns the active sketch and the undo slot.
type Editor struct {
	s    *sketch.Sketch
	undo snapshot
}

// NewEditor returns an editor bound to s.
func NewEditor(s *sketch.Sketch) *Editor {
	return &Editor{s: s}
}

// Sketch returns the active sketch.
func (e *Editor) Sketch() *sketch.Sketch {
	return e.s
}

// Replace rebinds the editor to s. The undo slot is deliberately kept:
// restoring a deleted sketch works by undoing over whatever was loaded
// after the deletion.
func (e *Editor) Replace(s *sketch.Sketch) {
	e.s = s
}

func (e *Editor) check(x, y int) error {
	if x < 0 || y < 0 || x >= e.s.GridSize || y >= e.s.GridSize {
		return ErrBounds
	}
	return nil
}

// Place writes a color index at (x, y).
func (e *Editor) Place(x, y int, index uint8) error {
	if err := e.check(x, y); err != nil {
		return err
	}
	if int(index) > palette.MaxColors {
		return ErrIndex
	}

	e.save(false)
	e.s.Pixels[y][x] = index

	return nil
}

// Erase clears the pixel at (x, y).
func (e *Editor) Erase(x, y int) error {
	if err := e.check(x, y); err != nil {
		return err
	}

	e.save(false)
	e.s.Pixels[y][x] = 0

	return nil
}

// Clear zeroes every pixel in the live grid region. Cells outside the
// current grid size keep their values.
func (e *Editor) Clear() {
	e.save(false)

	for y := 0; y < e.s.GridSize; y++ {
		for x := 0; x < e.s.GridSize; x++ {
			e.s.Pixels[y][x] = 0
		}
	}
}

// ToggleGrid flips the live region between 8x8 and 16x16 and returns the
// new size. No pixel data moves; cells leaving the live region are
// preserved for when it grows back. The snapshot carries grid metadata,
// so the toggle itself is undoable.
func (e *Editor) ToggleGrid() int {
	e.save(true)

	n := sketch.GridMax
	if e.s.GridSize == sketch.GridMax {
		n = sketch.GridSmall
	}
	e.s.GridSize = n

	return n
}
