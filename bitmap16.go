/*
Package bitmap16 is a library for maintaining the SD card workspace of a
BitMap16 DX pixel art handheld: the sketches it stores, the palettes it
loads, and the PNG exports it produces.
*/
package bitmap16

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/bodgit/bitmap16/canvas"
	"github.com/bodgit/bitmap16/palette"
	"github.com/bodgit/bitmap16/sketch"
)

// BitMap16 is one editing session against a workspace: the active sketch
// and its editor, the palette catalog, and the preference store. Sessions
// are not safe for concurrent use; there is exactly one logical actor.
type BitMap16 struct {
	base     string
	prefs    *Prefs
	catalog  *palette.Catalog
	editor   *canvas.Editor
	filename string
	logger   *logrus.Logger
}

// New returns a session rooted at the base directory, normally the mount
// point of the device's SD card. A nil logger discards everything.
func New(base string, prefs *Prefs, logger *logrus.Logger) *BitMap16 {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	return &BitMap16{
		base:    base,
		prefs:   prefs,
		catalog: palette.NewCatalog(),
		editor:  canvas.NewEditor(sketch.New()),
		logger:  logger,
	}
}

// Editor returns the canvas editor bound to the active sketch.
func (b *BitMap16) Editor() *canvas.Editor {
	return b.editor
}

// Catalog returns the palette catalog.
func (b *BitMap16) Catalog() *palette.Catalog {
	return b.catalog
}

// Filename returns the file the active sketch was loaded from or saved
// to, or "" for a sketch that has never been saved.
func (b *BitMap16) Filename() string {
	return b.filename
}

// Close releases the preference store.
func (b *BitMap16) Close() error {
	if b.prefs == nil {
		return nil
	}
	return b.prefs.Close()
}
