/*
Package sketch implements the BitMap16 DX sketch document and its on-disk
file format.

A sketch file is a fixed-length binary record:

	+--------------+-----------------------------------------+
	| Version byte | only present in version 2 files         |
	+--------------+-----------------------------------------+
	| Grid size    | 8 or 16                                 |
	+--------------+-----------------------------------------+
	| Palette size | 4, 8, or 16                             |
	+--------------+-----------------------------------------+
	| Palette      | 16 big-endian RGB565 colors, 32 bytes   |
	+--------------+-----------------------------------------+
	| Pixels       | 16x16 indices, row-major, 256 bytes     |
	+--------------+-----------------------------------------+

There is no compression, so version 1 files are exactly 290 bytes and
version 2 files 291. The file length alone decides the version on read;
version 1 files carry no version byte at all.
*/
package sketch

import (
	"errors"
	"image"
	"image/color"

	"github.com/bodgit/bitmap16/palette"
)

const (
	// GridMax is the full canvas dimension. Every sketch allocates the
	// complete GridMax by GridMax pixel buffer regardless of its grid
	// size.
	GridMax = 16

	// GridSmall is the reduced grid size.
	GridSmall = 8

	// Version is the format version written by Encode.
	Version = 2

	paletteBytes = palette.MaxColors * 2
	pixelBytes   = GridMax * GridMax

	fileSizeV1 = 2 + paletteBytes + pixelBytes
	fileSizeV2 = fileSizeV1 + 1
)

var (
	// ErrCorrupt is returned when a file's length matches no known
	// format version.
	ErrCorrupt = errors.New("sketch: file corrupted")

	// ErrVersion is returned when a version 2 file carries an
	// unsupported version byte.
	ErrVersion = errors.New("sketch: unsupported format version")

	// ErrGridSize is returned for grid sizes other than 8 or 16.
	ErrGridSize = errors.New("sketch: invalid grid size")

	// ErrPaletteSize is returned for palette sizes other than 4, 8
	// or 16.
	ErrPaletteSize = errors.New("sketch: invalid palette size")
)

// Sketch is one drawing: a 16x16 grid of palette indices plus the palette
// it was drawn with. Index 0 is transparent and indices 1..16 map to
// Colors[0..15]. Only the top-left GridSize by GridSize region is live;
// the rest of the buffer is preserved but not rendered.
type Sketch struct {
	Pixels      [GridMax][GridMax]uint8
	GridSize    int
	PaletteSize int
	Colors      [palette.MaxColors]palette.Color
	Empty       bool
}

// New returns a blank sketch: all pixels transparent, the full 16x16
// grid, and the default built-in palette.
func New() *Sketch {
	s := &Sketch{
		GridSize: GridMax,
		Empty:    true,
	}
	s.BindPalette(palette.Default())
	return s
}

// BindPalette copies p's size and colors onto the sketch. Pixel data is
// never rewritten: indices beyond the new palette size resolve through
// collapsing (see Resolve), so shrinking the palette recolors previously
// drawn cells rather than erasing them.
func (s *Sketch) BindPalette(p palette.Palette) {
	s.PaletteSize = p.Size
	s.Colors = p.Colors
}

// SetGridSize switches the live region to n by n, where n is 8 or 16.
// Pixels outside a shrunken region are preserved, not cleared, and become
// live again if the grid is enlarged.
func (s *Sketch) SetGridSize(n int) error {
	if n != GridSmall && n != GridMax {
		return ErrGridSize
	}
	s.GridSize = n
	return nil
}

// Image renders the live grid region as an RGBA image. Transparent cells
// have zero alpha; every other cell is its resolved palette color
// expanded to 8 bits per channel. Grid sizes beyond the pixel buffer are
// treated as GridMax.
func (s *Sketch) Image() *image.RGBA {
	n := s.GridSize
	if n < 0 || n > GridMax {
		n = GridMax
	}
	m := image.NewRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if c, ok := s.ColorAt(x, y); ok {
				r, g, b := c.RGB()
				m.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
			}
		}
	}
	return m
}
