package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodgit/bitmap16/palette"
	"github.com/bodgit/bitmap16/sketch"
)

func TestPlace(t *testing.T) {
	e := NewEditor(sketch.New())

	require.NoError(t, e.Place(3, 4, 7))
	assert.Equal(t, uint8(7), e.Sketch().Pixels[4][3])

	assert.ErrorIs(t, e.Place(-1, 0, 1), ErrBounds)
	assert.ErrorIs(t, e.Place(0, -1, 1), ErrBounds)
	assert.ErrorIs(t, e.Place(16, 0, 1), ErrBounds)
	assert.ErrorIs(t, e.Place(0, 16, 1), ErrBounds)
	assert.ErrorIs(t, e.Place(0, 0, 17), ErrIndex)

	// Bounds follow the live grid size.
	e.ToggleGrid()
	assert.ErrorIs(t, e.Place(8, 0, 1), ErrBounds)
}

func TestErase(t *testing.T) {
	e := NewEditor(sketch.New())

	require.NoError(t, e.Place(2, 2, 5))
	require.NoError(t, e.Erase(2, 2))
	assert.Zero(t, e.Sketch().Pixels[2][2])

	assert.ErrorIs(t, e.Erase(16, 16), ErrBounds)
}

func TestClear(t *testing.T) {
	e := NewEditor(sketch.New())
	s := e.Sketch()

	s.Pixels[10][10] = 5
	e.ToggleGrid() // live region is now 8x8

	require.NoError(t, e.Place(0, 0, 1))
	e.Clear()

	assert.Zero(t, s.Pixels[0][0])

	// Cells outside the live region survive a clear.
	assert.Equal(t, uint8(5), s.Pixels[10][10])
}

func TestUndoOneLevel(t *testing.T) {
	e := NewEditor(sketch.New())
	s := e.Sketch()

	require.NoError(t, e.Place(0, 0, 1)) // edit A
	require.NoError(t, e.Place(0, 0, 2)) // edit B

	require.NoError(t, e.Undo())
	assert.Equal(t, uint8(1), s.Pixels[0][0], "undo restores the state before B, not before A")

	// The snapshot is consumed.
	assert.False(t, e.CanUndo())
	assert.ErrorIs(t, e.Undo(), ErrNoUndo)
}

func TestUndoClear(t *testing.T) {
	e := NewEditor(sketch.New())
	s := e.Sketch()

	require.NoError(t, e.Place(5, 5, 9))
	e.Clear()
	require.Zero(t, s.Pixels[5][5])

	require.NoError(t, e.Undo())
	assert.Equal(t, uint8(9), s.Pixels[5][5])
}

func TestUndoEmpty(t *testing.T) {
	e := NewEditor(sketch.New())

	assert.False(t, e.CanUndo())
	assert.ErrorIs(t, e.Undo(), ErrNoUndo)
}

func TestToggleGrid(t *testing.T) {
	e := NewEditor(sketch.New())
	s := e.Sketch()

	s.Pixels[12][12] = 3

	assert.Equal(t, sketch.GridSmall, e.ToggleGrid())
	assert.Equal(t, sketch.GridSmall, s.GridSize)

	// No pixel data moves on a toggle.
	assert.Equal(t, uint8(3), s.Pixels[12][12])

	assert.Equal(t, sketch.GridMax, e.ToggleGrid())
	assert.Equal(t, uint8(3), s.Pixels[12][12])
}

func TestToggleGridUndo(t *testing.T) {
	e := NewEditor(sketch.New())
	s := e.Sketch()

	e.ToggleGrid()
	require.Equal(t, sketch.GridSmall, s.GridSize)

	// The toggle is undoable, but the slot does not hold a whole
	// captured document.
	assert.False(t, e.HoldsSketch())

	require.NoError(t, e.Undo())
	assert.Equal(t, sketch.GridMax, s.GridSize)
	assert.True(t, s.Empty)
}

func TestCapture(t *testing.T) {
	victim := sketch.New()
	victim.BindPalette(palette.Builtins()[12]) // GAME BOY, 4 colors
	require.NoError(t, victim.SetGridSize(sketch.GridSmall))
	victim.Pixels[1][1] = 2

	e := NewEditor(sketch.New())
	e.Capture(victim)
	assert.True(t, e.HoldsSketch())

	// Undo transplants the captured sketch onto the active one.
	require.NoError(t, e.Undo())

	s := e.Sketch()
	assert.Equal(t, uint8(2), s.Pixels[1][1])
	assert.Equal(t, sketch.GridSmall, s.GridSize)
	assert.Equal(t, 4, s.PaletteSize)
	assert.Equal(t, victim.Colors, s.Colors)
	assert.False(t, s.Empty)
	assert.False(t, e.HoldsSketch())
}

func TestReplaceKeepsUndo(t *testing.T) {
	e := NewEditor(sketch.New())

	require.NoError(t, e.Place(0, 0, 1))
	assert.True(t, e.CanUndo())

	e.Replace(sketch.New())
	assert.True(t, e.CanUndo())
}
