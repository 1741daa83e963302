/*
Package palette implements the BitMap16 DX color palette model.

A palette holds 4, 8, or 16 meaningful colors in RGB565 encoding; 5 bits
of red, 6 bits of green, and 5 bits of blue packed into 16 bits. All 16
color slots are always populated, with the slots beyond the palette size
holding cyclic repeats of the defined entries, so a pixel index between 1
and 16 resolves to a color under any palette.
*/
package palette

const (
	// MaxColors is the number of color slots in every palette.
	MaxColors = 16

	// MaxPalettes is the catalog capacity, built-in and user palettes
	// combined.
	MaxPalettes = 32
)

// Color is an RGB565 packed color as the device stores it.
type Color uint16

// FromRGB packs 8-bit red, green and blue channels into an RGB565 color.
func FromRGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGB expands the color back to 8-bit channels. The high bits of each
// channel are replicated into the low bits so that full intensity expands
// to 0xff rather than 0xf8.
func (c Color) RGB() (r, g, b uint8) {
	r5 := uint8(c >> 11 & 0x1f)
	g6 := uint8(c >> 5 & 0x3f)
	b5 := uint8(c & 0x1f)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	return uint32(r8) * 0x101, uint32(g8) * 0x101, uint32(b8) * 0x101, 0xffff
}

// Palette is one named color table. Size is the number of meaningful
// entries; Colors is fully populated regardless, with the slots at Size
// and beyond holding cyclic repeats. User marks palettes loaded from the
// workspace rather than compiled in.
type Palette struct {
	Name   string
	Size   int
	User   bool
	Colors [MaxColors]Color
}

// ValidSize reports whether n is a legal palette size.
func ValidSize(n int) bool {
	switch n {
	case 4, 8, 16:
		return true
	}
	return false
}

// New assembles a palette of the given size from up to 16 colors, filling
// any remaining slots cyclically from the ones given.
func New(name string, size int, colors ...Color) Palette {
	p := Palette{Name: name, Size: size}
	n := copy(p.Colors[:], colors)
	fill(&p.Colors, n)
	return p
}

// fill pads colors[n:] with cyclic repeats of colors[:n].
func fill(colors *[MaxColors]Color, n int) {
	if n <= 0 {
		return
	}
	for i := n; i < MaxColors; i++ {
		colors[i] = colors[i%n]
	}
}
