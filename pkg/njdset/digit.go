package njdset

import (
	"strings"

	"github.com/jpreprocess-go/jpreprocess/pkg/mora"
	"github.com/jpreprocess-go/jpreprocess/pkg/njd"
)

// DigitPass implements spec §4.3: digit normalization, numerative
// reading selection, then sequence merging and re-accent, over every
// contiguous run of 名詞,数 nodes plus their trailing numerative/counter
// noun.
func DigitPass(n *njd.NJD) {
	stageANormalizeDigits(n)
	stageBNumerativeReading(n)
	n.Nodes = stageCMergeAndReaccent(n.Nodes)
}

func pronText(node *njd.Node) string {
	var b strings.Builder
	for _, m := range node.Pron {
		b.WriteString(m.Symbol)
	}
	return b.String()
}

// stageANormalizeDigits rewrites each kazu node's surface to its
// canonical kanji digit and re-derives its pronunciation (spec §4.3
// Stage A).
func stageANormalizeDigits(n *njd.NJD) {
	for _, node := range n.Nodes {
		if !node.IsKazu() {
			continue
		}
		canon, ok := digitNormalize[node.Surface]
		if !ok || canon == node.Surface {
			continue
		}
		node.Surface = canon
		if pron, ok := digitPron[canon]; ok {
			if moras, tokOK := mora.Tokenize(pron); tokOK {
				node.Pron = moras
				node.MoraSize = len(moras)
				node.Read = pron
			}
		}
	}
}

// stageBNumerativeReading scans `<digit> <multiplier>` and
// `<digit> <numerative>` boundaries and mutates readings/accents per
// the euphony and voicing tables (spec §4.3 Stage B). Tie-break: later
// tables override earlier ones when both match the same boundary (spec
// §9 Open Question — this port lets numeral_list9/11 contraction run
// after voicing, so a contraction always wins on the digit side).
func stageBNumerativeReading(n *njd.NJD) {
	nodes := n.Nodes
	for i, node := range nodes {
		if !node.IsKazu() {
			continue
		}
		if i+1 >= len(nodes) {
			continue
		}
		next := nodes[i+1]
		digitReading := pronText(node)

		applyVoicing(digitReading, next)
		applyContraction(digitReading, next, node)
	}
}

// applyVoicing mutates next's first mora in place if its initial
// consonant is in the ハ row and the preceding digit's reading requires
// voicing or semi-voicing (numeral_list7).
func applyVoicing(digitReading string, next *njd.Node) {
	class, ok := numeralList7[digitReading]
	if !ok || class == noVoicing || len(next.Pron) == 0 {
		return
	}
	first := next.Pron[0]
	pair, ok := haRowVoicing[first.Symbol]
	if !ok {
		return
	}
	newSymbol := pair.voiced
	if class == semiVoicedClass {
		newSymbol = pair.semiVoiced
	}
	if newMora, ok := mora.Table[newSymbol]; ok {
		next.Pron[0] = newMora
	}
}

// applyContraction handles the digit-before-百/千/兆 contraction tables
// (numeral_list9/11): the digit's own pron/accent/mora_size are rewritten
// when the following node is the triggering multiplier.
func applyContraction(digitReading string, next, digitNode *njd.Node) {
	if numeralList8[next.Surface] {
		if e, ok := numeralList9[digitReading]; ok {
			rewriteWithEuphony(digitNode, e)
		}
		return
	}
	if numeralList10[next.Surface] {
		if e, ok := numeralList11[digitReading]; ok {
			rewriteWithEuphony(digitNode, e)
		}
	}
}

func rewriteWithEuphony(node *njd.Node, e euphony) {
	moras, ok := mora.Tokenize(e.NewPron)
	if !ok {
		return
	}
	node.Pron = moras
	node.MoraSize = e.NewMoraSize
	node.Read = e.NewPron
	acc := node.Acc + e.AccentDelta
	if acc < 0 {
		acc = 0
	}
	if acc > node.MoraSize {
		acc = node.MoraSize
	}
	node.Acc = acc
}

// stageCMergeAndReaccent groups each maximal run of kazu nodes (joined
// across period-boundary nodes per isPeriod) into a single merged node
// and recomputes its accent with the tail-weighted policy (spec §4.3
// Stage C). Nodes outside any run pass through unchanged.
func stageCMergeAndReaccent(nodes []*njd.Node) []*njd.Node {
	inRun := make([]bool, len(nodes))
	for i, node := range nodes {
		inRun[i] = node.IsKazu()
	}
	// Bridge period-boundary nodes that sit between two kazu runs.
	for i, node := range nodes {
		if !isPeriod(node.Surface) {
			continue
		}
		if i > 0 && i+1 < len(nodes) && inRun[i-1] && nodes[i+1].IsKazu() {
			inRun[i] = true
		}
	}

	var out []*njd.Node
	for i := 0; i < len(nodes); {
		if !inRun[i] {
			out = append(out, nodes[i])
			i++
			continue
		}
		start := i
		for i < len(nodes) && inRun[i] {
			i++
		}
		out = append(out, mergeDigitRun(nodes[start:i]))
	}
	return out
}

// mergeDigitRun concatenates a run's surfaces and Moras into one Node
// and computes its accent (spec §4.3 Stage C).
func mergeDigitRun(run []*njd.Node) *njd.Node {
	if len(run) == 1 {
		return run[0]
	}
	merged := &njd.Node{
		POS:   run[0].POS,
		CType: run[0].CType,
		CForm: run[0].CForm,
	}
	var surface strings.Builder
	var read strings.Builder
	for _, node := range run {
		surface.WriteString(node.Surface)
		read.WriteString(node.Read)
		merged.Pron = append(merged.Pron, node.Pron...)
	}
	merged.Surface = surface.String()
	merged.Read = read.String()
	merged.MoraSize = len(merged.Pron)
	merged.Acc = computeDigitRunAccent(run, merged.MoraSize)
	return merged
}

// computeDigitRunAccent applies spec §4.3 Stage C's tail-weighted
// policy: a terminal numerative with a fixed accent (numeralList5)
// wins; otherwise the accent falls on the mora position of the last
// non-zero digit group boundary, minus 1. The numeralList5 branch is an
// unresolved, un-grounded guess at a mechanism no retrieved source
// documents — see DESIGN.md.
func computeDigitRunAccent(run []*njd.Node, totalMora int) int {
	last := run[len(run)-1]
	if acc, ok := numeralList5[last.Surface]; ok {
		return clamp(acc, 0, totalMora)
	}

	moraOffset := 0
	lastBoundary := 0
	for _, node := range run {
		if isPeriod(node.Surface) {
			continue
		}
		if node.Surface != "〇" {
			lastBoundary = moraOffset + len(node.Pron)
		}
		moraOffset += len(node.Pron)
	}
	acc := lastBoundary - 1
	return clamp(acc, 0, totalMora)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
