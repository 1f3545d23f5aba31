// Package romaji converts Japanese hiragana and katakana into Hepburn-style
// romanized text. It is dictionary free: kanji, Latin letters, digits and
// punctuation pass through unchanged.
package romaji
