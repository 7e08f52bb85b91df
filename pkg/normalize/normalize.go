// Package normalize rewrites raw input text before tokenization
// (SPEC_FULL §6 "Normalizer"): full-width alphanumerics and punctuation
// folded to their canonical spelling, the same table-driven
// longest-match shape as pkg/njdset's digit-normalization stage and
// pkg/mora's katakana tokenizer, scaled to general text instead of a
// closed digit/mora vocabulary.
package normalize

import "strings"

// table maps every reversible full-width/variant spelling this package
// folds to its canonical form. Multi-rune keys (e.g. ellipsis variants)
// are tried before single-rune ones so Normalize can longest-match.
var table = map[string]string{
	"０": "0", "１": "1", "２": "2", "３": "3", "４": "4",
	"５": "5", "６": "6", "７": "7", "８": "8", "９": "9",

	"Ａ": "A", "Ｂ": "B", "Ｃ": "C", "Ｄ": "D", "Ｅ": "E", "Ｆ": "F",
	"Ｇ": "G", "Ｈ": "H", "Ｉ": "I", "Ｊ": "J", "Ｋ": "K", "Ｌ": "L",
	"Ｍ": "M", "Ｎ": "N", "Ｏ": "O", "Ｐ": "P", "Ｑ": "Q", "Ｒ": "R",
	"Ｓ": "S", "Ｔ": "T", "Ｕ": "U", "Ｖ": "V", "Ｗ": "W", "Ｘ": "X",
	"Ｙ": "Y", "Ｚ": "Z",
	"ａ": "a", "ｂ": "b", "ｃ": "c", "ｄ": "d", "ｅ": "e", "ｆ": "f",
	"ｇ": "g", "ｈ": "h", "ｉ": "i", "ｊ": "j", "ｋ": "k", "ｌ": "l",
	"ｍ": "m", "ｎ": "n", "ｏ": "o", "ｐ": "p", "ｑ": "q", "ｒ": "r",
	"ｓ": "s", "ｔ": "t", "ｕ": "u", "ｖ": "v", "ｗ": "w", "ｘ": "x",
	"ｙ": "y", "ｚ": "z",

	"！": "!", "？": "?", "，": ",", "．": ".", "：": ":", "；": ";",
	"（": "(", "）": ")", "「": "「", "」": "」",
	"〜": "ー", "～": "ー",

	"...": "…", "‥": "…",
	"　": " ",
}

// byLength holds every table key sorted by descending rune length.
var byLength []string

func init() {
	byLength = make([]string, 0, len(table))
	for k := range table {
		byLength = append(byLength, k)
	}
	for i := 1; i < len(byLength); i++ {
		for j := i; j > 0 && len([]rune(byLength[j])) > len([]rune(byLength[j-1])); j-- {
			byLength[j], byLength[j-1] = byLength[j-1], byLength[j]
		}
	}
}

// Normalize rewrites s by greedily longest-matching against table,
// passing through any rune sequence that matches nothing unchanged.
func Normalize(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); {
		matched := false
		for _, key := range byLength {
			klen := len([]rune(key))
			if i+klen > len(runes) {
				continue
			}
			if string(runes[i:i+klen]) == key {
				b.WriteString(table[key])
				i += klen
				matched = true
				break
			}
		}
		if !matched {
			b.WriteRune(runes[i])
			i++
		}
	}
	return b.String()
}
