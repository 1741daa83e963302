package sketch

import (
	"io"

	"github.com/bodgit/bitmap16/palette"
)

type encoder struct {
	tmp [fileSizeV2]byte
}

func (e *encoder) encode(w io.Writer, s *Sketch) error {
	if s.GridSize != GridSmall && s.GridSize != GridMax {
		return ErrGridSize
	}
	if !palette.ValidSize(s.PaletteSize) {
		return ErrPaletteSize
	}

	e.tmp[0] = Version
	e.tmp[1] = uint8(s.GridSize)
	e.tmp[2] = uint8(s.PaletteSize)

	for i, c := range s.Colors {
		e.tmp[3+2*i] = uint8(c >> 8)
		e.tmp[4+2*i] = uint8(c)
	}

	for y := 0; y < GridMax; y++ {
		copy(e.tmp[3+paletteBytes+y*GridMax:], s.Pixels[y][:])
	}

	_, err := w.Write(e.tmp[:])
	return err
}

// Encode writes s to w in the current (version 2) file format. The grid
// and palette sizes are validated before anything is written.
func Encode(w io.Writer, s *Sketch) error {
	var e encoder
	return e.encode(w, s)
}
