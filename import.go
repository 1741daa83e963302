package bitmap16

import (
	"errors"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/bodgit/bitmap16/palette"
	"github.com/bodgit/bitmap16/sketch"
	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"
)

// ErrImageSize is returned when an imported image is not square with a
// side divisible by a legal grid size.
var ErrImageSize = errors.New("bitmap16: image is wrong size")

// Import converts an image into the active sketch. The image must be
// square; sides divisible by 16 map onto the full grid, otherwise sides
// divisible by 8 map onto the small grid. Oversized images are scaled
// down one source pixel per cell, the opaque colors are reduced to a
// 16 color palette, and anything more than half transparent becomes a
// transparent cell. The result replaces the active sketch unsaved.
func (b *BitMap16) Import(r io.Reader) error {
	m, _, err := image.Decode(r)
	if err != nil {
		return err
	}

	bounds := m.Bounds()
	side := bounds.Dx()

	var grid int
	switch {
	case side != bounds.Dy() || side == 0:
		return ErrImageSize
	case side%sketch.GridMax == 0:
		grid = sketch.GridMax
	case side%sketch.GridSmall == 0:
		grid = sketch.GridSmall
	default:
		return ErrImageSize
	}

	if side != grid {
		dst := image.NewRGBA(image.Rect(0, 0, grid, grid))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, bounds, draw.Src, nil)
		m, bounds = dst, dst.Bounds()
	}

	// Opaque pixels in scan order, keeping multiplicity so quantizing
	// weights colors by coverage.
	var opaque []color.Color
	for y := 0; y < grid; y++ {
		for x := 0; x < grid; x++ {
			c := m.At(bounds.Min.X+x, bounds.Min.Y+y)
			if _, _, _, a := c.RGBA(); a >= 0x8000 {
				opaque = append(opaque, c)
			}
		}
	}

	s := sketch.New()
	s.GridSize = grid

	if len(opaque) == 0 {
		b.editor.Replace(s)
		b.filename = ""
		return nil
	}

	var unique color.Palette
	seen := make(map[color.Color]struct{})
	for _, c := range opaque {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}

	colors := reduceColors(opaque, unique)

	size := palette.MaxColors
	switch {
	case len(colors) <= 4:
		size = 4
	case len(colors) <= 8:
		size = 8
	}
	s.BindPalette(palette.New("IMPORTED", size, colors...))

	mapping := make(color.Palette, len(colors))
	for i, c := range colors {
		mapping[i] = c
	}

	for y := 0; y < grid; y++ {
		for x := 0; x < grid; x++ {
			c := m.At(bounds.Min.X+x, bounds.Min.Y+y)
			if _, _, _, a := c.RGBA(); a < 0x8000 {
				continue
			}
			s.Pixels[y][x] = uint8(mapping.Index(c) + 1)
		}
	}

	b.editor.Replace(s)
	b.filename = ""

	b.logger.WithField("gridSize", grid).WithField("colors", len(colors)).Debug("imported image")

	return nil
}

// reduceColors maps the opaque pixels onto at most 16 packed colors,
// quantizing only when the image has more unique colors than a palette
// can hold. Colors keep their first-seen order and collapse together when
// packing makes them equal.
func reduceColors(opaque []color.Color, unique color.Palette) []palette.Color {
	p := unique
	if len(p) > palette.MaxColors {
		strip := image.NewRGBA(image.Rect(0, 0, len(opaque), 1))
		for i, c := range opaque {
			strip.Set(i, 0, c)
		}

		q := quantize.MedianCutQuantizer{}
		p = q.Quantize(make(color.Palette, 0, palette.MaxColors), strip)
	}

	var colors []palette.Color
	seen := make(map[palette.Color]struct{})
	for _, c := range p {
		r, g, b, _ := c.RGBA()
		pc := palette.FromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
		if _, ok := seen[pc]; ok {
			continue
		}
		seen[pc] = struct{}{}
		colors = append(colors, pc)
	}

	return colors
}
