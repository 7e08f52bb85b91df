package tokenizer

import (
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// KagomeTokenizer adapts kagome's IPADic analyzer to the Tokenizer
// interface, grounded on pkg/readerer.Analyzer's own kagome setup
// (tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())).
type KagomeTokenizer struct {
	t *tokenizer.Tokenizer
}

// NewKagomeTokenizer builds a KagomeTokenizer over the bundled IPADic.
func NewKagomeTokenizer() (*KagomeTokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &KagomeTokenizer{t: t}, nil
}

// Tokenize runs kagome's morphological analysis and remaps its IPADic
// feature layout (pos1-4, ctype, cform, base form, reading,
// pronunciation) onto pkg/njd's 13-field row: fields 8-9 (0-indexed 7-8)
// are left empty since IPADic carries no accent data, field 12
// (acc/mora) is set to "*", which pkg/njd reads as no declared accent
// (acc 0, no mora-count check), and field 13 (chain_rule) is left empty
// for the same reason, so AccentTypePass falls back to its
// no-chain-rule default (see DESIGN.md).
func (k *KagomeTokenizer) Tokenize(text string) ([]RawToken, error) {
	tokens := k.t.Tokenize(text)
	rows := make([]RawToken, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		if tok.Class == tokenizer.UNKNOWN {
			rows = append(rows, unkToken(tok.Surface))
			continue
		}
		rows = append(rows, rowFromFeatures(tok.Surface, tok.Features()))
	}
	return rows, nil
}

func unkToken(surface string) RawToken {
	t := RawToken{Surface: surface}
	t.Details[0] = "UNK"
	return t
}

func rowFromFeatures(surface string, f []string) RawToken {
	get := func(i int) string {
		if i < len(f) {
			return f[i]
		}
		return "*"
	}
	reading := get(7)
	pron := get(8)
	if pron == "*" {
		pron = reading
	}
	t := RawToken{Surface: surface}
	t.Details = [13]string{
		get(0), get(1), get(2), get(3), // pos 1-4
		get(4), // ctype
		get(5), // cform
		get(6), // orig (base form)
		"", "", // fields 8-9: no accent-dictionary data in IPADic
		reading,
		pron,
		"*", // acc/mora_size: malformed on purpose, see Tokenize doc
		"",  // chain_rule: no accent-dictionary data to parse
	}
	return t
}
