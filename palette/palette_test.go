package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRGB(t *testing.T) {
	tables := []struct {
		r, g, b uint8
		want    Color
	}{
		{0x00, 0x00, 0x00, 0x0000},
		{0xff, 0xff, 0xff, 0xffff},
		{0xff, 0x00, 0x00, 0xf800},
		{0x00, 0xff, 0x00, 0x07e0},
		{0x00, 0x00, 0xff, 0x001f},
		{0x1a, 0x1c, 0x2c, 0x18e5}, // SWEETIE-16 background
		{0x08, 0x18, 0x20, 0x08c4}, // GAME BOY darkest
	}

	for _, table := range tables {
		assert.Equal(t, table.want, FromRGB(table.r, table.g, table.b))
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b := Color(0xffff).RGB()
	assert.Equal(t, uint8(0xff), r)
	assert.Equal(t, uint8(0xff), g)
	assert.Equal(t, uint8(0xff), b)

	r, g, b = Color(0x0000).RGB()
	assert.Equal(t, uint8(0x00), r)
	assert.Equal(t, uint8(0x00), g)
	assert.Equal(t, uint8(0x00), b)

	// Packing an expanded color is lossless.
	for _, c := range []Color{0x18e5, 0xf800, 0x07e0, 0x001f, 0x8c4} {
		r, g, b := c.RGB()
		assert.Equal(t, c, FromRGB(r, g, b))
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color(0xffff).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestNew(t *testing.T) {
	p := New("TEST", 4, 0x1111, 0x2222, 0x3333, 0x4444)

	assert.Equal(t, "TEST", p.Name)
	assert.Equal(t, 4, p.Size)
	assert.False(t, p.User)

	for i := 4; i < MaxColors; i++ {
		assert.Equal(t, p.Colors[i%4], p.Colors[i])
	}
}

func TestValidSize(t *testing.T) {
	for n, want := range map[int]bool{
		0:  false,
		4:  true,
		5:  false,
		8:  true,
		15: false,
		16: true,
		17: false,
	} {
		assert.Equal(t, want, ValidSize(n), "size %d", n)
	}
}
