package jpcommon

import "github.com/jpreprocess-go/jpreprocess/pkg/njd"

// Utterance is the tree built once from the finalized node vector and
// consumed by feature emission (spec §3, §4.8).
type Utterance struct {
	BreathGroups []*BreathGroup
}

// MoraCount returns the total Mora count across the whole utterance.
func (u *Utterance) MoraCount() int {
	total := 0
	for _, bg := range u.BreathGroups {
		total += bg.MoraCount()
	}
	return total
}

// Build constructs an Utterance from a finalized NJD node vector (spec
// §4.8 "Tree construction"):
//   - a new BreathGroup starts at punctuation boundaries (`、`/`。`, or a
//     punctuation-subtype symbol);
//   - within a BreathGroup, AccentPhrases are delimited by the
//     ChainFlags AccentPhrasePass set;
//   - within an AccentPhrase, Words correspond one-to-one with
//     non-symbol Nodes.
func Build(nodes []*njd.Node) *Utterance {
	u := &Utterance{}
	var curBG *BreathGroup
	var curAP *AccentPhrase

	for _, node := range nodes {
		if node.IsPunctuationBoundary() {
			curBG = nil
			curAP = nil
			continue
		}
		if curBG == nil {
			curBG = &BreathGroup{}
			u.BreathGroups = append(u.BreathGroups, curBG)
			curAP = nil
		}
		if curAP == nil || node.ChainFlag == njd.ChainStartNewPhrase {
			curAP = &AccentPhrase{}
			curBG.AccentPhrases = append(curBG.AccentPhrases, curAP)
		}
		if node.IsSymbol() {
			continue
		}
		w := wordFromNode(node)
		if len(curAP.Words) == 0 {
			curAP.AccentNucleus = node.Acc
		}
		curAP.Words = append(curAP.Words, w)
		curAP.MoraCount += len(w.Moras)
	}
	for _, bg := range u.BreathGroups {
		for _, ap := range bg.AccentPhrases {
			ap.AccentNucleus = clampAccentNucleus(ap.AccentNucleus, ap.MoraCount)
		}
	}
	return u
}

func wordFromNode(node *njd.Node) *Word {
	posID, posOK := node.POS.Category.ID()
	ctypeID, ctypeOK := node.CType.ID()
	cformID, cformOK := node.CForm.ID()
	return &Word{
		POSID: posID, POSOK: posOK,
		CTypeID: ctypeID, CTypeOK: ctypeOK,
		CFormID: cformID, CFormOK: cformOK,
		Moras: node.Pron,
	}
}

func clampAccentNucleus(acc, moraSize int) int {
	if acc < 0 {
		return 0
	}
	if acc > moraSize {
		return moraSize
	}
	return acc
}
