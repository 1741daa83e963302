package sketch

import "github.com/bodgit/bitmap16/palette"

// CollapseIndex maps a stored pixel index onto a palette of the given
// size. Transparent stays transparent and in-range indices pass through;
// out-of-range indices wrap onto 1..paletteSize, so pixels drawn under a
// larger palette are reinterpreted rather than lost when the palette
// shrinks.
func CollapseIndex(index uint8, paletteSize int) uint8 {
	if index == 0 || paletteSize <= 0 {
		return 0
	}
	if int(index) <= paletteSize {
		return index
	}
	return uint8((int(index)-1)%paletteSize) + 1
}

// Resolve maps a stored pixel index to its display color. The boolean is
// false when the index is transparent.
func (s *Sketch) Resolve(index uint8) (palette.Color, bool) {
	index = CollapseIndex(index, s.PaletteSize)
	if index == 0 {
		return 0, false
	}
	return s.Colors[index-1], true
}

// ColorAt resolves the pixel at (x, y). The boolean is false when the
// cell is transparent.
func (s *Sketch) ColorAt(x, y int) (palette.Color, bool) {
	return s.Resolve(s.Pixels[y][x])
}
