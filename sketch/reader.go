package sketch

import (
	"io"

	"github.com/bodgit/bitmap16/palette"
)

// Config holds a sketch file's dimensions without its pixel payload.
type Config struct {
	GridSize    int
	PaletteSize int
}

type decoder struct {
	// Enough to hold the longest legal file plus one byte, so a file
	// that is too long is detectable.
	tmp [fileSizeV2 + 1]byte
}

// decode reads the whole file and dispatches on its length: 290 bytes is
// a version 1 file with no version byte, 291 bytes is version 2. Every
// other length is corrupt. New versions add a length/tag pair here.
func (d *decoder) decode(r io.Reader) (*Sketch, error) {
	n, err := io.ReadFull(r, d.tmp[:])
	switch err {
	case io.EOF, io.ErrUnexpectedEOF:
	case nil:
		// Read past the longest legal layout.
		return nil, ErrCorrupt
	default:
		return nil, err
	}

	b := d.tmp[:n]
	switch n {
	case fileSizeV1:
	case fileSizeV2:
		if b[0] != Version {
			return nil, ErrVersion
		}
		b = b[1:]
	default:
		return nil, ErrCorrupt
	}

	s := &Sketch{
		GridSize:    int(b[0]),
		PaletteSize: int(b[1]),
	}

	for i := range s.Colors {
		s.Colors[i] = palette.Color(uint16(b[2+2*i])<<8 | uint16(b[3+2*i]))
	}

	b = b[2+paletteBytes:]
	for y := 0; y < GridMax; y++ {
		copy(s.Pixels[y][:], b[y*GridMax:(y+1)*GridMax])
	}

	return s, nil
}

// Decode reads a sketch file from r. A failed decode returns nothing;
// whatever sketch the caller holds is untouched.
func Decode(r io.Reader) (*Sketch, error) {
	var d decoder
	return d.decode(r)
}

// DecodeConfig returns the grid and palette size of a sketch file.
func DecodeConfig(r io.Reader) (Config, error) {
	var d decoder
	s, err := d.decode(r)
	if err != nil {
		return Config{}, err
	}
	return Config{
		GridSize:    s.GridSize,
		PaletteSize: s.PaletteSize,
	}, nil
}
