// Package njd implements the mutable node vector (spec §3, §4.1): the
// morphological unit each preprocessing pass reads and rewrites in
// place, and the container that owns it from tokenization through label
// synthesis.
package njd

import (
	"strconv"
	"strings"

	"github.com/jpreprocess-go/jpreprocess/pkg/cform"
	"github.com/jpreprocess-go/jpreprocess/pkg/chainrule"
	"github.com/jpreprocess-go/jpreprocess/pkg/ctype"
	"github.com/jpreprocess-go/jpreprocess/pkg/mora"
	"github.com/jpreprocess-go/jpreprocess/pkg/pos"
)

// ChainFlag is the tri-state accent-phrase boundary decision set by the
// chaining pass (spec §3, §4.4).
type ChainFlag int

const (
	ChainUnset ChainFlag = iota
	ChainStartNewPhrase
	ChainContinuePhrase
)

// Node is a single morphological unit (spec §3).
type Node struct {
	Surface string
	POS     pos.POS
	CType   ctype.CType
	CForm   cform.CForm
	Orig    string
	Read    string
	Pron    []mora.Mora
	Acc     int
	MoraSize int

	ChainRule chainrule.Table
	ChainFlag ChainFlag

	// FillerGroup marks that this node is part of a run of consecutive
	// フィラー nodes treated as one breath unit by the pronunciation pass
	// (spec §4.2).
	FillerGroup bool

	// Raw preserves the original 13-field dictionary row verbatim, for
	// fields this package does not otherwise model (spec §4.1 fields 8-9
	// are unassigned by the distilled spec; see DESIGN.md).
	Raw [13]string
}

// IsSilent reports whether this node has no pronunciation and should be
// dropped by RemoveSilentNodes (spec §3 invariant).
func (n *Node) IsSilent() bool { return len(n.Pron) == 0 }

// IsFiller reports whether this node's POS category is フィラー.
func (n *Node) IsFiller() bool { return n.POS.Category == pos.Filler }

// IsSymbol reports whether this node's POS category is 記号.
func (n *Node) IsSymbol() bool { return n.POS.Category == pos.Kigou }

// IsKazu reports whether this node is a 名詞,数 numeric noun (spec §4.3).
func (n *Node) IsKazu() bool {
	return n.POS.Category == pos.Meishi && n.POS.Meishi == pos.MeishiKazu
}

// IsPunctuationBoundary reports whether this node's surface is a breath
// boundary marker (spec §4.8: `、`, `。`, or a punctuation-subtype
// symbol).
func (n *Node) IsPunctuationBoundary() bool {
	switch n.Surface {
	case "、", "。":
		return true
	}
	if !n.IsSymbol() {
		return false
	}
	switch n.POS.Kigou {
	case pos.KigouKuten, pos.KigouTouten:
		return true
	}
	return false
}

// String returns the node's displayed text (spec §8 scenario 4 checks
// this against the merged UNK surface).
func (n *Node) String() string { return n.Surface }

// newRow is the parsed, still language-agnostic view of a 13-field
// dictionary row before Mora/accent derivation.
type newRow struct {
	surface string
	fields  [13]string
}

// NewNodesFromRow decodes one dictionary row into one or more Nodes
// (spec §4.1). Rows whose surface contains an internal punctuation
// marker (`・`) split into multiple nodes, one per sub-reading, each
// inheriting the parent's pos/ctype/cform and owning its own Mora slice
// (spec §4.1 final paragraph). A row of exactly one field, `"UNK"`,
// expands to a noun stub (spec §4.1, §6).
func NewNodesFromRow(surface string, fields []string) ([]*Node, error) {
	if len(fields) == 1 && fields[0] == "UNK" {
		return []*Node{newUnkStub(surface)}, nil
	}
	if len(fields) != 13 {
		return nil, &ParseError{Field: "row", Value: surface}
	}

	var raw [13]string
	copy(raw[:], fields)

	p, err := pos.Parse(fields[0], fields[1], fields[2], fields[3])
	if err != nil {
		return nil, &ParseError{Field: "pos", Value: surface, Err: err}
	}
	family, row := fields[4], "*"
	if i := strings.Index(family, "・"); i >= 0 {
		family, row = family[:i], family[i+len("・"):]
	}
	ct, err := ctype.Parse(family, row)
	if err != nil {
		return nil, &ParseError{Field: "ctype", Value: surface, Err: err}
	}
	cf, err := cform.Parse(fields[5])
	if err != nil {
		// cform "*" is a valid None and always parses; a genuine
		// failure here means a malformed field, not an absent one.
		return nil, &ParseError{Field: "cform", Value: surface, Err: err}
	}
	orig := fields[6]
	read := fields[9]
	accM := fields[11]

	declaredAcc, declaredMora, ok := parseAccMora(accM)

	var chain chainrule.Table
	if len(fields) > 12 && fields[12] != "" {
		chain, err = chainrule.Parse(fields[12])
		if err != nil {
			return nil, &ParseError{Field: "chain_rule", Value: surface, Err: err}
		}
	}

	if !strings.Contains(surface, "・") {
		pron, tokenizeOK := mora.Tokenize(fields[10])
		if !tokenizeOK {
			return nil, &ParseError{Field: "pron", Value: fields[10]}
		}
		if ok && len(pron) != declaredMora {
			return nil, &MoraSizeMismatchError{Surface: surface, Declared: declaredMora, Got: len(pron)}
		}
		n := &Node{
			Surface: surface, POS: p, CType: ct, CForm: cf,
			Orig: orig, Read: read, Pron: pron,
			Acc: declaredAcc, MoraSize: len(pron),
			ChainRule: chain, Raw: raw,
		}
		return []*Node{n}, nil
	}

	return splitOnInternalPunctuation(surface, raw, p, ct, cf, orig, read, chain, declaredAcc)
}

// splitOnInternalPunctuation implements spec §4.1's "a single input row
// may split into multiple Nodes when the surface contains internal
// punctuation markers" for the `・` marker: surface and reading are both
// split on it, and each sub-reading is independently tokenized into
// Moras, so the marker itself contributes no Mora to either side.
func splitOnInternalPunctuation(surface string, raw [13]string, p pos.POS, ct ctype.CType, cf cform.CForm, orig, read string, chain chainrule.Table, acc int) ([]*Node, error) {
	surfaceParts := strings.Split(surface, "・")
	readParts := strings.Split(read, "・")
	if len(readParts) != len(surfaceParts) {
		// Reading didn't carry the same boundary; fall back to treating
		// the whole reading as belonging to the first sub-surface.
		readParts = make([]string, len(surfaceParts))
		readParts[0] = read
	}

	nodes := make([]*Node, 0, len(surfaceParts))
	for i, sp := range surfaceParts {
		pron, _ := mora.Tokenize(readParts[i])
		n := &Node{
			Surface: sp, POS: p, CType: ct, CForm: cf,
			Orig: orig, Read: readParts[i], Pron: pron,
			MoraSize: len(pron), ChainRule: chain, Raw: raw,
		}
		if i == 0 {
			n.Acc = acc
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// parseAccMora decodes field 12's `A/M` format (spec §4.1). Ill-formed
// strings are tolerated: ok=false, and callers fall back to acc=0
// without failing (spec §4.3 "Failure mode").
func parseAccMora(s string) (acc, moraCount int, ok bool) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	a, errA := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errA != nil || errM != nil {
		return 0, 0, false
	}
	return a, m, true
}

// newUnkStub builds the noun stub an unrecognised word expands to (spec
// §4.1, §6): empty pron, accent 0/0.
func newUnkStub(surface string) *Node {
	return &Node{
		Surface: surface,
		POS:     pos.POS{Category: pos.Meishi, Meishi: pos.MeishiGeneral},
		Orig:    surface,
		Read:    "",
		Pron:    nil,
		Acc:     0,
		MoraSize: 0,
	}
}
