package njdset

import "github.com/jpreprocess-go/jpreprocess/pkg/njd"

// AccentTypePass implements spec §4.5: for each accent phrase produced
// by AccentPhrasePass, recompute the phrase's accent nucleus by
// iterating left to right and applying each node's chain-rule
// expression. The result is stored on the phrase's first node, which
// the label synthesizer treats as the phrase's accent nucleus (spec §3
// Utterance model: "AccentPhrase -> ... (accent position, mora count)").
func AccentTypePass(n *njd.NJD) {
	for _, phrase := range splitPhrases(n.Nodes) {
		recomputePhraseAccent(phrase)
	}
}

// splitPhrases groups the node vector into accent phrases using the
// ChainFlag set by AccentPhrasePass (spec §4.4): a StartNewPhrase node
// begins a new group, a ContinuePhrase node extends the current one.
func splitPhrases(nodes []*njd.Node) [][]*njd.Node {
	var phrases [][]*njd.Node
	for _, node := range nodes {
		if node.ChainFlag != njd.ChainContinuePhrase || len(phrases) == 0 {
			phrases = append(phrases, []*njd.Node{node})
			continue
		}
		last := len(phrases) - 1
		phrases[last] = append(phrases[last], node)
	}
	return phrases
}

// recomputePhraseAccent applies spec §4.5's expression evaluator.
func recomputePhraseAccent(phrase []*njd.Node) {
	if len(phrase) == 0 {
		return
	}
	totalMora := 0
	for _, node := range phrase {
		totalMora += len(node.Pron)
	}

	acc := phrase[0].Acc
	moraSoFar := len(phrase[0].Pron)
	for i := 1; i < len(phrase); i++ {
		prev, cur := phrase[i-1], phrase[i]
		if expr, ok := cur.ChainRule.Lookup(prev.POS.Category); ok {
			acc = expr.Apply(acc, moraSoFar)
		}
		// Else: fallback to accent-carry from the first content word
		// (spec §4.5) — acc is left unchanged.
		acc = clamp(acc, 0, totalMora)
		moraSoFar += len(cur.Pron)
	}
	phrase[0].Acc = acc
}
