package palette

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c := NewCatalog()
	require.Equal(t, 13, c.Len())

	assert.Equal(t, "SWEETIE-16", c.At(0).Name)

	p, ok := c.Find("PICO-8")
	assert.True(t, ok)
	assert.Equal(t, 16, p.Size)

	_, ok = c.Find("NO SUCH")
	assert.False(t, ok)

	// Unfiltered view exposes everything in order.
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, c.Filtered())
}

func TestCatalogFilter(t *testing.T) {
	c := NewCatalog()

	c.SetFilter(8, false)
	assert.Equal(t, []int{6, 7, 8}, c.Filtered())

	c.SetFilter(4, false)
	assert.Equal(t, []int{9, 10, 11, 12}, c.Filtered())

	c.SetFilter(0, true)
	assert.Empty(t, c.Filtered())

	require.True(t, c.Add(New("MINE", 4, 0x1111, 0x2222, 0x3333, 0x4444)))

	user := New("YOURS", 8, 0x1111, 0x2222, 0x3333, 0x4444, 0x5555, 0x6666, 0x7777, 0x8888)
	user.User = true
	require.True(t, c.Add(user))

	c.SetFilter(0, true)
	assert.Equal(t, []int{14}, c.Filtered())

	c.SetFilter(8, true)
	assert.Equal(t, []int{14}, c.Filtered())

	c.SetFilter(8, false)
	assert.Equal(t, []int{6, 7, 8, 14}, c.Filtered())
}

func TestCatalogCapacity(t *testing.T) {
	c := NewCatalog()

	for i := c.Len(); i < MaxPalettes; i++ {
		p := New(fmt.Sprintf("USER %d", i), 4, 0x1111, 0x2222, 0x3333, 0x4444)
		p.User = true
		require.True(t, c.Add(p))
	}
	require.Equal(t, MaxPalettes, c.Len())

	// The catalog is full; further additions are dropped.
	assert.False(t, c.Add(New("OVERFLOW", 4, 0x1111, 0x2222, 0x3333, 0x4444)))
	assert.Equal(t, MaxPalettes, c.Len())
}

func TestCatalogReset(t *testing.T) {
	c := NewCatalog()

	p := New("MINE", 4, 0x1111, 0x2222, 0x3333, 0x4444)
	p.User = true
	require.True(t, c.Add(p))
	c.SetFilter(4, true)

	c.Reset()
	assert.Equal(t, 13, c.Len())
	assert.Len(t, c.Filtered(), 13)
}
