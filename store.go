package bitmap16

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/bodgit/bitmap16/palette"
	"github.com/bodgit/bitmap16/sketch"
)

// WorkspaceDir is the directory tree the device maintains at the root of
// its SD card. Everything the session touches lives under it.
const WorkspaceDir = "bitmap16dx"

const (
	sketchDir  = "sketches"
	exportDir  = "exports"
	paletteDir = "palettes"
)

// ErrNoPrefs is returned when allocating a sketch number without a
// preference store.
var ErrNoPrefs = errors.New("bitmap16: no preference store")

var sketchFilename = regexp.MustCompile(`^sketch_([0-9]+)\.dat$`)

// SketchInfo describes one stored sketch file.
type SketchInfo struct {
	Name        string
	Number      uint64
	GridSize    int
	PaletteSize int
}

func (b *BitMap16) dir(elem ...string) string {
	return filepath.Join(append([]string{b.base, WorkspaceDir}, elem...)...)
}

// InitWorkspace creates the workspace directory tree under the session's
// base directory.
func (b *BitMap16) InitWorkspace() error {
	for _, dir := range []string{b.dir(sketchDir), b.dir(exportDir), b.dir(paletteDir)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// Sketches lists the stored sketches, newest first. Files that don't
// decode are skipped with a warning.
func (b *BitMap16) Sketches() ([]SketchInfo, error) {
	entries, err := os.ReadDir(b.dir(sketchDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var infos []SketchInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		m := sketchFilename.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		n, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil || n == 0 {
			continue
		}

		f, err := os.Open(b.dir(sketchDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		c, err := sketch.DecodeConfig(f)
		f.Close()
		if err != nil {
			b.logger.WithField("file", entry.Name()).WithError(err).Warn("skipping unreadable sketch")
			continue
		}

		infos = append(infos, SketchInfo{
			Name:        entry.Name(),
			Number:      n,
			GridSize:    c.GridSize,
			PaletteSize: c.PaletteSize,
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Number > infos[j].Number })

	return infos, nil
}

// maxSketchNumber reports the highest sketch number present, for seeding
// a zeroed counter.
func (b *BitMap16) maxSketchNumber() uint64 {
	entries, err := os.ReadDir(b.dir(sketchDir))
	if err != nil {
		return 0
	}

	var max uint64
	for _, entry := range entries {
		m := sketchFilename.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		if n, err := strconv.ParseUint(m[1], 10, 64); err == nil && n > max {
			max = n
		}
	}

	return max
}

// readSketch decodes the named sketch file. Stored grid or palette sizes
// outside the legal sets fall back to 16, like the device.
func (b *BitMap16) readSketch(name string) (*sketch.Sketch, error) {
	f, err := os.Open(b.dir(sketchDir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := sketch.Decode(f)
	if err != nil {
		return nil, err
	}

	if s.GridSize != sketch.GridSmall && s.GridSize != sketch.GridMax {
		b.logger.WithField("file", name).WithField("gridSize", s.GridSize).Warn("coercing grid size")
		s.GridSize = sketch.GridMax
	}
	if !palette.ValidSize(s.PaletteSize) {
		b.logger.WithField("file", name).WithField("paletteSize", s.PaletteSize).Warn("coercing palette size")
		s.PaletteSize = palette.MaxColors
	}

	return s, nil
}

// Open loads the named sketch file as the active sketch. A failed decode
// leaves the active sketch untouched.
func (b *BitMap16) Open(name string) error {
	s, err := b.readSketch(name)
	if err != nil {
		return err
	}

	b.editor.Replace(s)
	b.filename = name

	b.logger.WithField("file", name).Debug("opened sketch")

	return nil
}

// NewSketch discards the active sketch for a fresh blank one. The undo
// slot survives, so a deleted sketch can still be restored afterwards.
func (b *BitMap16) NewSketch() {
	b.editor.Replace(sketch.New())
	b.filename = ""
}

// Save writes the active sketch to its file, allocating the next numbered
// filename for a sketch that has never been saved, and returns the
// filename written.
func (b *BitMap16) Save() (string, error) {
	if b.filename == "" {
		return b.SaveAs()
	}
	if err := b.write(b.filename); err != nil {
		return "", err
	}
	return b.filename, nil
}

// SaveAs writes the active sketch under a freshly allocated sketch
// number, even when it already has a file, and returns the filename
// written.
func (b *BitMap16) SaveAs() (string, error) {
	if b.prefs == nil {
		return "", ErrNoPrefs
	}

	n, err := b.prefs.NextSketchNumber(b.maxSketchNumber)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("sketch_%d.dat", n)
	if err := b.write(name); err != nil {
		return "", err
	}
	b.filename = name

	return name, nil
}

func (b *BitMap16) write(name string) error {
	if err := b.InitWorkspace(); err != nil {
		return err
	}

	path := b.dir(sketchDir, name)

	// Remove then rewrite, matching the device. A crash in between
	// loses the file; a documented risk of the format.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := sketch.Encode(f, b.editor.Sketch()); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	b.editor.Sketch().Empty = false

	b.logger.WithField("file", name).Debug("saved sketch")

	return nil
}

// Delete removes the named sketch file. Its full contents are captured
// into the undo slot first, so Restore can bring it back for as long as
// the session lives.
func (b *BitMap16) Delete(name string) error {
	s, err := b.readSketch(name)
	if err != nil {
		return err
	}

	b.editor.Capture(s)

	if err := os.Remove(b.dir(sketchDir, name)); err != nil {
		return err
	}

	if b.filename == name {
		b.filename = ""
	}

	b.logger.WithField("file", name).Debug("deleted sketch")

	return nil
}

// Restore undoes the last operation onto the active sketch. When the undo
// slot holds a complete sketch, as it does after Delete, the restored
// sketch is also written back out under a fresh number; the filename
// written is returned, or "" when the undo only touched the canvas.
func (b *BitMap16) Restore() (string, error) {
	full := b.editor.HoldsSketch()

	if err := b.editor.Undo(); err != nil {
		return "", err
	}

	if !full {
		return "", nil
	}

	b.filename = ""
	return b.SaveAs()
}
