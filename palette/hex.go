package palette

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ErrColorCount is returned by DecodeHex when the number of valid color
// lines is not exactly 4, 8, or 16.
var ErrColorCount = errors.New("palette: color count not 4, 8 or 16")

// DecodeHex parses a Lospec-style palette file from r: one color per line
// as six hex digits with an optional leading "#". Blank lines and lines
// starting with "//" are ignored, as is anything else that is not a six
// digit hex value. The count of valid lines must be exactly 4, 8, or 16;
// the remaining slots up to 16 are filled cyclically from the parsed
// colors.
func DecodeHex(r io.Reader) (Palette, error) {
	var (
		p Palette
		n int
	)

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		line = strings.TrimPrefix(line, "#")
		if len(line) != 6 {
			continue
		}
		rgb, err := strconv.ParseUint(line, 16, 32)
		if err != nil {
			continue
		}
		if n == MaxColors {
			return Palette{}, ErrColorCount
		}
		p.Colors[n] = FromRGB(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb))
		n++
	}
	if err := s.Err(); err != nil {
		return Palette{}, err
	}

	if !ValidSize(n) {
		return Palette{}, ErrColorCount
	}

	p.Size = n
	fill(&p.Colors, n)

	return p, nil
}
