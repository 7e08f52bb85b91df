// Package tokenizer turns input text into the 13-field dictionary rows
// pkg/njd decodes into Nodes (spec §3 "Tokenizer -> NJD", SPEC_FULL §6).
package tokenizer

// RawToken is one dictionary row in the 13-field layout
// pkg/njd.NewNodesFromRow expects. A dictionary miss is reported as the
// single-field `{"UNK"}` shortcut (Details[0] == "UNK", the rest empty).
type RawToken struct {
	Surface string
	Details [13]string
}

// Fields returns Details as a slice, trimmed to just the `{"UNK"}`
// shortcut when that is what this token represents.
func (t RawToken) Fields() []string {
	if t.Details[0] == "UNK" {
		unk := true
		for _, f := range t.Details[1:] {
			if f != "" {
				unk = false
				break
			}
		}
		if unk {
			return []string{"UNK"}
		}
	}
	return t.Details[:]
}

// Tokenizer splits text into an ordered sequence of dictionary rows.
type Tokenizer interface {
	Tokenize(text string) ([]RawToken, error)
}
