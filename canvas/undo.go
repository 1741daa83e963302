package canvas

import (
	"github.com/bodgit/bitmap16/palette"
	"github.com/bodgit/bitmap16/sketch"
)

// snapshot is the single undo slot: always the full 16x16 canvas, plus
// grid and palette metadata when the snapshot must reverse an operation
// that changed them. A zero gridSize means no metadata was captured.
// captured marks a whole document placed here by Capture, as opposed to
// metadata recorded to reverse an in-place edit.
type snapshot struct {
	valid       bool
	captured    bool
	pixels      [sketch.GridMax][sketch.GridMax]uint8
	gridSize    int
	paletteSize int
	colors      [palette.MaxColors]palette.Color
}

// save overwrites the undo slot with the current canvas, capturing grid
// and palette metadata when meta is set.
func (e *Editor) save(meta bool) {
	e.undo = snapshot{
		valid:  true,
		pixels: e.s.Pixels,
	}
	if meta {
		e.undo.gridSize = e.s.GridSize
		e.undo.paletteSize = e.s.PaletteSize
		e.undo.colors = e.s.Colors
	}
}

// Capture fills the undo slot from s, metadata included. Deleting a
// sketch captures it here first so the deletion can be undone.
func (e *Editor) Capture(s *sketch.Sketch) {
	e.undo = snapshot{
		valid:       true,
		captured:    true,
		pixels:      s.Pixels,
		gridSize:    s.GridSize,
		paletteSize: s.PaletteSize,
		colors:      s.Colors,
	}
}

// CanUndo reports whether the undo slot is occupied.
func (e *Editor) CanUndo() bool {
	return e.undo.valid
}

// HoldsSketch reports whether the undo slot carries a whole captured
// sketch, as left by Capture. A ToggleGrid snapshot carries metadata but
// is not a captured document.
func (e *Editor) HoldsSketch() bool {
	return e.undo.valid && e.undo.captured
}

// Undo restores the snapshot onto the active sketch and consumes it. The
// full 16x16 canvas is always restored; grid size and palette only when
// the snapshot carries that metadata. There is exactly one level: a
// second Undo without an intervening operation fails with ErrNoUndo.
func (e *Editor) Undo() error {
	if !e.undo.valid {
		return ErrNoUndo
	}

	e.s.Pixels = e.undo.pixels
	if e.undo.gridSize != 0 {
		e.s.GridSize = e.undo.gridSize
		e.s.PaletteSize = e.undo.paletteSize
		e.s.Colors = e.undo.colors
	}
	if e.undo.captured {
		e.s.Empty = false
	}

	e.undo = snapshot{}

	return nil
}
