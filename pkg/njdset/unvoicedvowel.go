package njdset

import (
	"github.com/jpreprocess-go/jpreprocess/pkg/njd"
	"github.com/jpreprocess-go/jpreprocess/pkg/pos"
)

// Consonant-family sets grounded on jpreprocess-njd/src/njd_set/
// unvoiced_vowel/rule.rs's next_mora_list1/2/3.
var (
	kFamily = map[string]bool{"k": true, "ky": true}
	tFamily = map[string]bool{"t": true, "ty": true, "ch": true, "ts": true}
	hFamily = map[string]bool{"h": true, "f": true, "hy": true}
	pFamily = map[string]bool{"p": true, "py": true}
	sFamily = map[string]bool{"s": true, "sh": true}
)

func union(sets ...map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for _, s := range sets {
		for k := range s {
			out[k] = true
		}
	}
	return out
}

// nextMoraList1: カ行/タ行/ハ行/パ行.
var nextMoraList1 = union(kFamily, tFamily, hFamily, pFamily)

// nextMoraList2: カ行/サ行/タ行/パ行.
var nextMoraList2 = union(kFamily, sFamily, tFamily, pFamily)

// nextMoraList3: カ行/サ行/タ行/ハ行/パ行 (the union of all families).
var nextMoraList3 = union(kFamily, sFamily, tFamily, hFamily, pFamily)

type moraRef struct {
	node *njd.Node
	idx  int
}

// UnvoicedVowelPass implements spec §4.6: traverses every Mora in the
// utterance marking vowels as unvoiced. Rule 0 is checked first and has
// highest priority; rules 3 and 4 are filters applied to any candidate
// before it commits.
func UnvoicedVowelPass(n *njd.NJD) {
	refs := flattenMoras(n.Nodes)
	candidates := make([]bool, len(refs))

	for i, r := range refs {
		if r.node.IsFiller() { // Rule 0
			continue
		}
		m := r.node.Pron[r.idx]
		if !m.HasVowel() {
			continue
		}
		if rule1Devoices(r, refs, i) || rule2Devoices(r, refs, i) || rule5Devoices(refs, i) {
			candidates[i] = true
		}
	}

	for i := range candidates {
		if !candidates[i] {
			continue
		}
		if !passesFilters(refs, i) {
			candidates[i] = false
			continue
		}
		r := refs[i]
		r.node.Pron[r.idx].Unvoiced = true
	}
}

func flattenMoras(nodes []*njd.Node) []moraRef {
	var refs []moraRef
	for _, node := range nodes {
		for idx := range node.Pron {
			refs = append(refs, moraRef{node: node, idx: idx})
		}
	}
	return refs
}

// rule1Devoices: in 助動詞「です」「ます」 the final ス is unvoiced.
func rule1Devoices(r moraRef, refs []moraRef, i int) bool {
	if r.node.POS.Category != pos.Jodoushi {
		return false
	}
	if r.node.Surface != "です" && r.node.Surface != "ます" {
		return false
	}
	return r.idx == len(r.node.Pron)-1
}

// rule2Devoices: し in verb/aux-verb/particle is devoiced with high
// preference.
func rule2Devoices(r moraRef, refs []moraRef, i int) bool {
	switch r.node.POS.Category {
	case pos.Doushi, pos.Jodoushi, pos.Joshi:
	default:
		return false
	}
	m := r.node.Pron[r.idx]
	return m.Consonant == "sh" && m.Vowel == "i"
}

// rule5Devoices: an i/u mora preceded and followed by unvoiced-consonant
// moras (per the family-dependent LUT) is devoiced.
func rule5Devoices(refs []moraRef, i int) bool {
	if i == 0 || i == len(refs)-1 {
		return false
	}
	cur := refs[i].node.Pron[refs[i].idx]
	if cur.Vowel != "i" && cur.Vowel != "u" {
		return false
	}
	prev := refs[i-1].node.Pron[refs[i-1].idx]
	next := refs[i+1].node.Pron[refs[i+1].idx]
	prevCons := string(prev.Consonant)

	if !nextMoraList3[prevCons] {
		return false
	}
	var table map[string]bool
	switch {
	case sFamily[prevCons]:
		table = nextMoraList2
	case nextMoraList1[prevCons]:
		table = nextMoraList1
	default:
		table = nextMoraList3
	}
	return table[string(next.Consonant)]
}

// passesFilters applies rules 3 and 4: never devoice two Moras in a row,
// and never devoice the node's accent-nucleus mora.
func passesFilters(refs []moraRef, i int) bool {
	r := refs[i]
	if r.node.Acc > 0 && r.node.Acc-1 == r.idx { // Rule 4
		return false
	}
	if i > 0 && refs[i-1].node.Pron[refs[i-1].idx].Unvoiced { // Rule 3: never two in a row
		return false
	}
	return true
}
