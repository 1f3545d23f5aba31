package translation

import (
	"strings"
	"unicode"
)

// cjk covers the CJK symbol, kana and ideograph blocks used by directory
// data, plus the compatibility ideographs.
var cjk = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3000, Hi: 0x9fff, Stride: 1},
		{Lo: 0xf900, Hi: 0xfaff, Stride: 1},
	},
}

// IsLatinOnly reports whether text contains no CJK or kana characters.
func IsLatinOnly(text string) bool {
	return strings.IndexFunc(text, func(r rune) bool {
		return unicode.Is(cjk, r)
	}) < 0
}

// needsTranslation reports whether text has to go to a backend at all.
func needsTranslation(text string) bool {
	return strings.TrimSpace(text) != "" && !IsLatinOnly(text)
}
