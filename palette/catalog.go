package palette

// Catalog owns the set of palettes available for browsing: the built-in
// tables followed by any user palettes in load order. The catalog tops
// out at MaxPalettes entries; additions beyond that are dropped.
type Catalog struct {
	palettes []Palette
	filtered []int
	size     int
	userOnly bool
}

// NewCatalog returns a catalog holding the built-in palettes with an
// unrestricted filter.
func NewCatalog() *Catalog {
	c := &Catalog{}
	c.Reset()
	return c
}

// Reset discards any user palettes, leaving only the built-ins, and
// clears the filter.
func (c *Catalog) Reset() {
	c.palettes = Builtins()
	c.size, c.userOnly = 0, false
	c.refilter()
}

// Add appends p to the catalog, reporting false when the catalog is
// already full.
func (c *Catalog) Add(p Palette) bool {
	if len(c.palettes) >= MaxPalettes {
		return false
	}
	c.palettes = append(c.palettes, p)
	c.refilter()
	return true
}

// Len returns the number of palettes in the catalog, ignoring the filter.
func (c *Catalog) Len() int {
	return len(c.palettes)
}

// At returns the palette at catalog index i.
func (c *Catalog) At(i int) Palette {
	return c.palettes[i]
}

// Find returns the first palette named name.
func (c *Catalog) Find(name string) (Palette, bool) {
	for _, p := range c.palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// SetFilter narrows the browseable view to palettes of the given size (0
// keeps every size) and, when userOnly is set, to user palettes. The
// underlying catalog is never mutated by filtering.
func (c *Catalog) SetFilter(size int, userOnly bool) {
	c.size, c.userOnly = size, userOnly
	c.refilter()
}

// Filtered returns the catalog indices passing the current filter, in
// catalog order.
func (c *Catalog) Filtered() []int {
	out := make([]int, len(c.filtered))
	copy(out, c.filtered)
	return out
}

func (c *Catalog) refilter() {
	c.filtered = c.filtered[:0]
	for i, p := range c.palettes {
		if (c.size == 0 || p.Size == c.size) && (!c.userOnly || p.User) {
			c.filtered = append(c.filtered, i)
		}
	}
}
