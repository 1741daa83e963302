package palette

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHex(t *testing.T) {
	p, err := DecodeHex(strings.NewReader(`// an eight color palette
#6CEDED
6CB9C9

6D85A5
#6E5181
6F1D5C
4F1446
2E0A30
0D001A
`))
	require.NoError(t, err)

	assert.Equal(t, 8, p.Size)
	assert.Equal(t, FromRGB(0x6c, 0xed, 0xed), p.Colors[0])
	assert.Equal(t, FromRGB(0x0d, 0x00, 0x1a), p.Colors[7])

	// Cyclic fill of the unused slots.
	for i := 8; i < MaxColors; i++ {
		assert.Equal(t, p.Colors[i-8], p.Colors[i])
	}
}

func TestDecodeHexSkipsMalformed(t *testing.T) {
	p, err := DecodeHex(strings.NewReader(`FFF
ZZZZZZ
5A3921
6B8C42
7BC67B
FFFFB5
FFFFFFFF
`))
	require.NoError(t, err)

	assert.Equal(t, 4, p.Size)
	assert.Equal(t, FromRGB(0x5a, 0x39, 0x21), p.Colors[0])
}

func TestDecodeHexBadCount(t *testing.T) {
	tables := []struct {
		name  string
		lines int
	}{
		{"empty", 0},
		{"five", 5},
		{"seven", 7},
		{"nine", 9},
		{"fifteen", 15},
		{"seventeen", 17},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			var b strings.Builder
			for i := 0; i < table.lines; i++ {
				b.WriteString("102030\n")
			}
			_, err := DecodeHex(strings.NewReader(b.String()))
			assert.ErrorIs(t, err, ErrColorCount)
		})
	}
}
