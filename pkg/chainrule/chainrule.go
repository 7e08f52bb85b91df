// Package chainrule implements the per-node accent-chain expression
// (spec §3, §4.5, §9): a compact three-variant expression structure
// instead of the raw dictionary string, parsed once when a Node is built.
package chainrule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jpreprocess-go/jpreprocess/pkg/pos"
)

// Kind distinguishes the three expression shapes spec §4.5 describes.
type Kind int

const (
	// Preserve ("*"): accent is unchanged; the node only extends the phrase.
	Preserve Kind = iota
	// Add ("N", a signed integer): accent becomes acc_previous + N.
	Add
	// Absolute ("@N"): accent becomes phrase_mora_count_so_far + N.
	Absolute
)

// Expr is one parsed chain-rule expression.
type Expr struct {
	Kind Kind
	N    int
}

// Apply computes the new phrase accent nucleus given the accent carried
// by the previous node and the total mora count of the phrase built so
// far (spec §4.5), without clamping — callers clamp to [0, total_phrase_mora].
func (e Expr) Apply(accPrevious, phraseMoraCountSoFar int) int {
	switch e.Kind {
	case Absolute:
		return phraseMoraCountSoFar + e.N
	case Add:
		return accPrevious + e.N
	default: // Preserve
		return accPrevious
	}
}

// ParseError reports a malformed chain-rule expression or table.
type ParseError struct{ Value string }

func (e *ParseError) Error() string { return fmt.Sprintf("chainrule: cannot parse %q", e.Value) }

// ParseExpr parses a single expression token: "*", "@N", or a signed
// integer "N"/"+N"/"-N".
func ParseExpr(s string) (Expr, error) {
	s = strings.TrimSpace(s)
	if s == "*" || s == "" {
		return Expr{Kind: Preserve}, nil
	}
	if strings.HasPrefix(s, "@") {
		n, err := strconv.Atoi(s[1:])
		if err != nil {
			return Expr{}, &ParseError{Value: s}
		}
		return Expr{Kind: Absolute, N: n}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Expr{}, &ParseError{Value: s}
	}
	return Expr{Kind: Add, N: n}, nil
}

// Table is the per-node chain rule: one expression per POS category of
// the immediately preceding node (spec §3: "chain_rule ... keyed by the
// immediately-preceding POS category").
type Table map[pos.Category]Expr

// Parse decodes the optional field 13 of a dictionary row (spec §4.1).
// The dictionary encodes it as comma-separated "category%expr" entries,
// e.g. "動詞%-1,名詞%@2". This wire format is not specified by the
// distilled spec (only the parsed Expr shape is, per §9's design note);
// it is this repository's choice — see DESIGN.md.
func Parse(field string) (Table, error) {
	field = strings.TrimSpace(field)
	if field == "" || field == "*" {
		return nil, nil
	}
	table := make(Table)
	for _, entry := range strings.Split(field, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "%", 2)
		if len(parts) != 2 {
			return nil, &ParseError{Value: entry}
		}
		cat, ok := pos.ParseCategoryName(parts[0])
		if !ok {
			return nil, &ParseError{Value: entry}
		}
		expr, err := ParseExpr(parts[1])
		if err != nil {
			return nil, err
		}
		table[cat] = expr
	}
	return table, nil
}

// Lookup returns the expression keyed by the preceding node's POS
// category, and whether one was present (spec §4.5's "missing chain
// rule" fallback path).
func (t Table) Lookup(prev pos.Category) (Expr, bool) {
	if t == nil {
		return Expr{}, false
	}
	e, ok := t[prev]
	return e, ok
}
