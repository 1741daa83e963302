package bitmap16

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/bitmap16/palette"
)

// LoadUserPalettes rebuilds the palette catalog: the built-in palettes
// followed by every .hex palette file in the workspace palettes
// directory, in name order. Files that fail to parse are skipped with a
// warning, and loading stops once the catalog is full.
func (b *BitMap16) LoadUserPalettes() error {
	b.catalog.Reset()

	entries, err := os.ReadDir(b.dir(paletteDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".hex") {
			continue
		}

		f, err := os.Open(b.dir(paletteDir, entry.Name()))
		if err != nil {
			return err
		}
		p, err := palette.DecodeHex(f)
		f.Close()
		if err != nil {
			b.logger.WithField("file", entry.Name()).WithError(err).Warn("skipping palette")
			continue
		}

		p.Name = paletteName(entry.Name())
		p.User = true

		if !b.catalog.Add(p) {
			b.logger.WithField("file", entry.Name()).Warn("palette catalog full")
			break
		}
	}

	return nil
}

// paletteName derives the displayed palette name from a filename the way
// the device does: extension dropped, separators spaced, upper case.
func paletteName(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return strings.ToUpper(name)
}
