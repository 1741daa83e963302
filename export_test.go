package bitmap16

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeExport(t *testing.T, b *BitMap16, name string) image.Image {
	t.Helper()

	f, err := os.Open(b.dir(exportDir, name))
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)

	return img
}

func assertPixel(t *testing.T, img image.Image, x, y int, er, eg, eb uint8) {
	t.Helper()

	r, g, b, a := img.At(x, y).RGBA()
	assert.Equal(t, uint32(er)*0x101, r)
	assert.Equal(t, uint32(eg)*0x101, g)
	assert.Equal(t, uint32(eb)*0x101, b)
	assert.Equal(t, uint32(0xffff), a)
}

func assertTransparent(t *testing.T, img image.Image, x, y int) {
	t.Helper()

	_, _, _, a := img.At(x, y).RGBA()
	assert.Equal(t, uint32(0), a)
}

func TestExport(t *testing.T) {
	b := newTestSession(t)

	require.NoError(t, b.Editor().Place(0, 0, 1))
	name, err := b.Save()
	require.NoError(t, err)

	out, err := b.Export(name, false)
	require.NoError(t, err)
	assert.Equal(t, "dx_0000.png", out)

	img := decodeExport(t, b, out)
	assert.Equal(t, displaySize, img.Bounds().Dx())
	assert.Equal(t, displaySize, img.Bounds().Dy())

	// Cell (0, 0) covers an 8 pixel square of the first palette color;
	// the cell next to it is transparent.
	er, eg, eb := b.Editor().Sketch().Colors[0].RGB()
	assertPixel(t, img, 0, 0, er, eg, eb)
	assertPixel(t, img, 7, 7, er, eg, eb)
	assertTransparent(t, img, 8, 0)
}

func TestExportLogical(t *testing.T) {
	b := newTestSession(t)

	require.NoError(t, b.Editor().Place(0, 0, 1))

	out, err := b.ExportActive(true)
	require.NoError(t, err)
	assert.Equal(t, "dx_0000.png", out)

	img := decodeExport(t, b, out)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())

	er, eg, eb := b.Editor().Sketch().Colors[0].RGB()
	assertPixel(t, img, 0, 0, er, eg, eb)
	assertTransparent(t, img, 1, 0)
}

func TestExportSmallGrid(t *testing.T) {
	b := newTestSession(t)

	assert.Equal(t, 8, b.Editor().ToggleGrid())
	require.NoError(t, b.Editor().Place(0, 0, 1))

	out, err := b.ExportActive(false)
	require.NoError(t, err)

	// An 8x8 grid still fills the display, so each cell is a 16 pixel
	// square.
	img := decodeExport(t, b, out)
	assert.Equal(t, displaySize, img.Bounds().Dx())

	er, eg, eb := b.Editor().Sketch().Colors[0].RGB()
	assertPixel(t, img, 15, 15, er, eg, eb)
	assertTransparent(t, img, 16, 0)
}

func TestExportNumbering(t *testing.T) {
	b := newTestSession(t)

	name, err := b.Save()
	require.NoError(t, err)

	out, err := b.Export(name, true)
	require.NoError(t, err)
	assert.Equal(t, "dx_0000.png", out)

	out, err = b.Export(name, true)
	require.NoError(t, err)
	assert.Equal(t, "dx_0001.png", out)

	// A claimed filename is skipped over, never clobbered.
	require.NoError(t, os.WriteFile(b.dir(exportDir, "dx_0002.png"), []byte("taken"), 0644))

	out, err = b.Export(name, true)
	require.NoError(t, err)
	assert.Equal(t, "dx_0003.png", out)
}

func TestExportMissingSketch(t *testing.T) {
	b := newTestSession(t)

	_, err := b.Export("sketch_42.dat", true)
	assert.Error(t, err)
}

func TestExportAll(t *testing.T) {
	b := newTestSession(t)

	for i := 0; i < 3; i++ {
		b.NewSketch()
		require.NoError(t, b.Editor().Place(i, i, 1))
		_, err := b.Save()
		require.NoError(t, err)
	}

	require.NoError(t, b.ExportAll(context.Background(), true))

	names, err := filepath.Glob(b.dir(exportDir, "dx_*.png"))
	require.NoError(t, err)
	assert.Len(t, names, 3)
}

func TestExportAllEmptyWorkspace(t *testing.T) {
	b := newTestSession(t)

	require.NoError(t, b.ExportAll(context.Background(), false))
}
