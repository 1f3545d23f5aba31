package romaji

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Romanize converts the kana in text to Hepburn romaji and title-cases every
// whitespace separated word of the result. Characters without a mapping are
// copied through unchanged. Empty or whitespace-only input is returned as is.
func Romanize(text string) string {
	if strings.TrimFunc(text, isSpace) == "" {
		return text
	}

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(runes); {
		r := runes[i]

		if r == sokuonHiragana || r == sokuonKatakana {
			// Only the marker is consumed; the doubled mora is matched on the
			// next iteration.
			if m := match(runes, i+1); m != nil {
				b.WriteByte(m.roman[0])
			} else {
				b.WriteString(danglingGeminate)
			}
			i++
			continue
		}

		if m := match(runes, i); m != nil {
			b.WriteString(m.roman)
			i += len(m.kana)
			continue
		}

		b.WriteRune(r)
		i++
	}

	return titleCase(b.String())
}

// RomanizeAll romanizes each text in order.
func RomanizeAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = Romanize(t)
	}
	return out
}

// match returns the first table entry whose kana unit starts at runes[i].
func match(runes []rune, i int) *mora {
	if i >= len(runes) {
		return nil
	}
	for k := range table {
		if hasPrefixAt(runes, i, table[k].kana) {
			return &table[k]
		}
	}
	return nil
}

func hasPrefixAt(runes []rune, i int, prefix []rune) bool {
	if len(runes)-i < len(prefix) {
		return false
	}
	for j, p := range prefix {
		if runes[i+j] != p {
			return false
		}
	}
	return true
}

// isSpace is the whitespace set words are split on: unicode.IsSpace plus
// the byte order mark U+FEFF, minus NEL U+0085, which is what browsers
// treat as whitespace.
func isSpace(r rune) bool {
	switch r {
	case '\ufeff':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

func titleCase(s string) string {
	words := strings.FieldsFunc(s, isSpace)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
