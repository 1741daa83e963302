package bitmap16

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/bodgit/bitmap16/sketch"
	"golang.org/x/image/draw"
)

const (
	// displaySize is the device's square display dimension in pixels.
	// Exports are scaled up to it so one cell covers a whole number of
	// pixels at either grid size.
	displaySize = 128

	maxExports = 10000
)

// ErrTooManyExports is returned when every numbered export filename is
// taken.
var ErrTooManyExports = errors.New("bitmap16: no free export filename")

// renderPNG encodes the sketch as a PNG. Logical renders are one pixel
// per cell; otherwise the image is scaled to the display size with each
// cell kept as a crisp square block.
func renderPNG(w io.Writer, s *sketch.Sketch, logical bool) error {
	img := s.Image()

	if !logical {
		dst := image.NewRGBA(image.Rect(0, 0, displaySize, displaySize))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		return png.Encode(w, dst)
	}

	return png.Encode(w, img)
}

// openExport claims the lowest free numbered export file. Creation is
// exclusive so concurrent exporters never claim the same name.
func (b *BitMap16) openExport() (*os.File, string, error) {
	for i := 0; i < maxExports; i++ {
		name := fmt.Sprintf("dx_%04d.png", i)

		f, err := os.OpenFile(b.dir(exportDir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err != nil {
			if os.IsExist(err) {
				continue
			}
			return nil, "", err
		}

		return f, name, nil
	}

	return nil, "", ErrTooManyExports
}

// Export renders the named sketch file to a PNG in the exports directory
// and returns the filename written.
func (b *BitMap16) Export(name string, logical bool) (string, error) {
	s, err := b.readSketch(name)
	if err != nil {
		return "", err
	}

	return b.exportSketch(s, logical)
}

// ExportActive renders the active sketch to a PNG in the exports
// directory and returns the filename written.
func (b *BitMap16) ExportActive(logical bool) (string, error) {
	return b.exportSketch(b.editor.Sketch(), logical)
}

func (b *BitMap16) exportSketch(s *sketch.Sketch, logical bool) (string, error) {
	if err := b.InitWorkspace(); err != nil {
		return "", err
	}

	f, name, err := b.openExport()
	if err != nil {
		return "", err
	}

	if err := renderPNG(f, s, logical); err != nil {
		f.Close()
		os.Remove(b.dir(exportDir, name))
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", err
	}

	b.logger.WithField("file", name).Debug("exported sketch")

	return name, nil
}
