package palette

// Builtins returns the compiled-in palettes in their browse order: the
// 16-color tables first, then the 8-color, then the 4-color. The slice
// and its contents are fresh copies on every call.
func Builtins() []Palette {
	return []Palette{
		New("SWEETIE-16", 16,
			FromRGB(0x1A, 0x1C, 0x2C), FromRGB(0x5D, 0x27, 0x5D),
			FromRGB(0xB1, 0x3E, 0x53), FromRGB(0xEF, 0x7D, 0x57),
			FromRGB(0xFF, 0xCD, 0x75), FromRGB(0xA7, 0xF0, 0x70),
			FromRGB(0x38, 0xB7, 0x64), FromRGB(0x25, 0x71, 0x79),
			FromRGB(0x29, 0x36, 0x6F), FromRGB(0x3B, 0x5D, 0xC9),
			FromRGB(0x41, 0xA6, 0xF6), FromRGB(0x73, 0xEF, 0xF7),
			FromRGB(0xF4, 0xF4, 0xF4), FromRGB(0x94, 0xB0, 0xC2),
			FromRGB(0x56, 0x6C, 0x86), FromRGB(0x33, 0x3C, 0x57)),
		New("PICO-8", 16,
			FromRGB(0x00, 0x00, 0x00), FromRGB(0x1D, 0x2B, 0x53),
			FromRGB(0x7E, 0x25, 0x53), FromRGB(0x00, 0x87, 0x51),
			FromRGB(0xAB, 0x52, 0x36), FromRGB(0x5F, 0x57, 0x4F),
			FromRGB(0xC2, 0xC3, 0xC7), FromRGB(0xFF, 0xF1, 0xE8),
			FromRGB(0xFF, 0x00, 0x4D), FromRGB(0xFF, 0xA3, 0x00),
			FromRGB(0xFF, 0xEC, 0x27), FromRGB(0x00, 0xE4, 0x36),
			FromRGB(0x29, 0xAD, 0xFF), FromRGB(0x83, 0x76, 0x9C),
			FromRGB(0xFF, 0x77, 0xA8), FromRGB(0xFF, 0xCC, 0xAA)),
		New("ENDESGA-16", 16,
			FromRGB(0xE4, 0xA6, 0x72), FromRGB(0xB8, 0x6F, 0x50),
			FromRGB(0x74, 0x3F, 0x39), FromRGB(0x3F, 0x28, 0x32),
			FromRGB(0x9E, 0x28, 0x35), FromRGB(0xE5, 0x3B, 0x44),
			FromRGB(0xFB, 0x92, 0x2B), FromRGB(0xFF, 0xE7, 0x62),
			FromRGB(0x63, 0xC6, 0x4D), FromRGB(0x32, 0x73, 0x45),
			FromRGB(0x19, 0x3D, 0x3F), FromRGB(0x4F, 0x67, 0x81),
			FromRGB(0xAF, 0xBF, 0xD2), FromRGB(0xFF, 0xFF, 0xFF),
			FromRGB(0x2C, 0xE8, 0xF4), FromRGB(0x04, 0x84, 0xD1)),
		New("DAWNBRINGER", 16,
			FromRGB(0x14, 0x0C, 0x1C), FromRGB(0x44, 0x24, 0x34),
			FromRGB(0x30, 0x34, 0x6D), FromRGB(0x4E, 0x4A, 0x4E),
			FromRGB(0x85, 0x4C, 0x30), FromRGB(0x34, 0x65, 0x24),
			FromRGB(0xD0, 0x46, 0x48), FromRGB(0x75, 0x71, 0x61),
			FromRGB(0x59, 0x7D, 0xCE), FromRGB(0xD2, 0x7D, 0x2C),
			FromRGB(0x85, 0x95, 0xA1), FromRGB(0x6D, 0xAA, 0x2C),
			FromRGB(0xD2, 0xAA, 0x99), FromRGB(0x6D, 0xC2, 0xCA),
			FromRGB(0xDA, 0xD4, 0x5E), FromRGB(0xDE, 0xEE, 0xD6)),
		New("WOODSPARK", 16,
			FromRGB(0xF5, 0xEE, 0xB0), FromRGB(0xFA, 0xBF, 0x61),
			FromRGB(0xE0, 0x8D, 0x51), FromRGB(0x8A, 0x58, 0x65),
			FromRGB(0x45, 0x2B, 0x3F), FromRGB(0x2C, 0x5E, 0x3B),
			FromRGB(0x60, 0x9C, 0x4F), FromRGB(0xC6, 0xCC, 0x54),
			FromRGB(0x78, 0xC2, 0xD6), FromRGB(0x54, 0x79, 0xB0),
			FromRGB(0x56, 0x54, 0x6E), FromRGB(0x83, 0x9F, 0xA6),
			FromRGB(0xE0, 0xD3, 0xC8), FromRGB(0xF0, 0x5B, 0x5B),
			FromRGB(0x8F, 0x32, 0x5F), FromRGB(0xEB, 0x6C, 0x98)),
		New("LOST CENTURY", 16,
			FromRGB(0xD1, 0xB1, 0x87), FromRGB(0xC7, 0x7B, 0x58),
			FromRGB(0xAE, 0x5D, 0x40), FromRGB(0x79, 0x44, 0x4A),
			FromRGB(0x4B, 0x3D, 0x44), FromRGB(0xBA, 0x91, 0x58),
			FromRGB(0x92, 0x74, 0x41), FromRGB(0x4D, 0x45, 0x39),
			FromRGB(0x77, 0x74, 0x3B), FromRGB(0xB3, 0xA5, 0x55),
			FromRGB(0xD2, 0xC9, 0xA5), FromRGB(0x8C, 0xAB, 0xA1),
			FromRGB(0x4B, 0x72, 0x6E), FromRGB(0x57, 0x48, 0x52),
			FromRGB(0x84, 0x78, 0x75), FromRGB(0xAB, 0x9B, 0x8E)),
		New("BERRY NEBULA", 8,
			FromRGB(0x6C, 0xED, 0xED), FromRGB(0x6C, 0xB9, 0xC9),
			FromRGB(0x6D, 0x85, 0xA5), FromRGB(0x6E, 0x51, 0x81),
			FromRGB(0x6F, 0x1D, 0x5C), FromRGB(0x4F, 0x14, 0x46),
			FromRGB(0x2E, 0x0A, 0x30), FromRGB(0x0D, 0x00, 0x1A)),
		New("GOTHIC BIT", 8,
			FromRGB(0x0E, 0x0E, 0x12), FromRGB(0x1A, 0x1A, 0x24),
			FromRGB(0x33, 0x33, 0x46), FromRGB(0x53, 0x53, 0x73),
			FromRGB(0x80, 0x80, 0xA4), FromRGB(0xA6, 0xA6, 0xBF),
			FromRGB(0xC1, 0xC1, 0xD2), FromRGB(0xE6, 0xE6, 0xEC)),
		New("DREAM HAZE", 8,
			FromRGB(0x3C, 0x42, 0xC4), FromRGB(0x6E, 0x51, 0xC8),
			FromRGB(0xA0, 0x65, 0xCD), FromRGB(0xCE, 0x79, 0xD2),
			FromRGB(0xD6, 0x8F, 0xB8), FromRGB(0xDD, 0xA2, 0xA3),
			FromRGB(0xEA, 0xC4, 0xAE), FromRGB(0xF4, 0xDF, 0xBE)),
		New("LINK'S AWK", 4,
			FromRGB(0x5A, 0x39, 0x21), FromRGB(0x6B, 0x8C, 0x42),
			FromRGB(0x7B, 0xC6, 0x7B), FromRGB(0xFF, 0xFF, 0xB5)),
		New("ICE CREAM", 4,
			FromRGB(0x7C, 0x3F, 0x58), FromRGB(0xEB, 0x6B, 0x6F),
			FromRGB(0xF9, 0xA8, 0x75), FromRGB(0xFF, 0xF6, 0xD3)),
		New("HOLLOW", 4,
			FromRGB(0x0F, 0x0F, 0x1B), FromRGB(0x56, 0x5A, 0x75),
			FromRGB(0xC6, 0xB7, 0xBE), FromRGB(0xFA, 0xFB, 0xF6)),
		New("GAME BOY", 4,
			FromRGB(0x08, 0x18, 0x20), FromRGB(0x34, 0x68, 0x56),
			FromRGB(0x88, 0xC0, 0x70), FromRGB(0xE0, 0xF8, 0xD0)),
	}
}

// Default returns the palette bound to a freshly created sketch.
func Default() Palette {
	return Builtins()[0]
}
