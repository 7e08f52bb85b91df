package njdset

import (
	"github.com/jpreprocess-go/jpreprocess/pkg/mora"
	"github.com/jpreprocess-go/jpreprocess/pkg/njd"
)

// LongVowelPass implements spec §4.7: for each vowel-only Mora (no
// consonant), if the immediately preceding Mora within the same node is
// also vowel-only and has the same vowel (the "fixed same-POS/chain
// predicate" — a word never borrows a vowel match across a word
// boundary), the duplicate is folded into the preceding mora and
// dropped, so the pair of identical vowel moras becomes a single
// elongated one — this is what drives the mora-count decrease spec §8
// scenario 6 names. Moras with a consonant are never folded. Applied left to right,
// non-overlapping: once a pair folds, the retained mora is not matched
// again against what follows it in the same pass.
func LongVowelPass(n *njd.NJD) {
	for _, node := range n.Nodes {
		node.Pron = foldLongVowels(node.Pron)
		node.MoraSize = len(node.Pron)
	}
}

func foldLongVowels(pron []mora.Mora) []mora.Mora {
	if len(pron) < 2 {
		return pron
	}
	out := pron[:1]
	for i := 1; i < len(pron); i++ {
		prev := out[len(out)-1]
		cur := pron[i]
		if prev.HasVowel() && cur.HasVowel() && prev.Vowel == cur.Vowel &&
			prev.Consonant == "" && cur.Consonant == "" {
			continue // fold cur into prev: drop the duplicate
		}
		out = append(out, cur)
	}
	return out
}
