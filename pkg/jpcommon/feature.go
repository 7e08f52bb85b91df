package jpcommon

import "github.com/jpreprocess-go/jpreprocess/pkg/mora"

// moraSlot is one flattened Mora together with everything String()
// needs to know about its position in the Utterance tree.
type moraSlot struct {
	m          mora.Mora
	word       *Word
	ap         *AccentPhrase
	bg         *BreathGroup
	moraIdxAP  int // 0-based index of this mora within ap
	apIdxBG    int // 0-based index of ap within bg
	bgIdxUtt   int // 0-based index of bg within the utterance
}

// Emit walks a built Utterance and returns one Label per Mora plus the
// two `sil` sentinels (spec §4.8, tested invariant in spec §8: returned
// length == total Mora count + 2).
func Emit(u *Utterance) []*Label {
	slots := flatten(u)

	phonemes := make([]string, 0, len(slots)+6)
	phonemes = append(phonemes, "xx", "xx", sil)
	for _, s := range slots {
		phonemes = append(phonemes, phonemeOf(s.m))
	}
	phonemes = append(phonemes, sil, "xx", "xx")

	words, apOrder, bgOrder, apBG := orderingIndexes(u)

	bgCount := len(u.BreathGroups)
	apCount := len(apOrder)
	moraCount := len(slots)

	labels := make([]*Label, 0, moraCount+2)
	labels = append(labels, sentinelLabel(phonemes, 0, bgCount, apCount, moraCount))
	for i, s := range slots {
		labels = append(labels, moraLabel(phonemes, i+1, s, words, apOrder, bgOrder, apBG, bgCount, apCount, moraCount))
	}
	labels = append(labels, sentinelLabel(phonemes, len(slots)+1, bgCount, apCount, moraCount))
	return labels
}

func flatten(u *Utterance) []moraSlot {
	var slots []moraSlot
	for bgIdx, bg := range u.BreathGroups {
		for apIdx, ap := range bg.AccentPhrases {
			moraIdx := 0
			for _, w := range ap.Words {
				for _, m := range w.Moras {
					slots = append(slots, moraSlot{
						m: m, word: w, ap: ap, bg: bg,
						moraIdxAP: moraIdx, apIdxBG: apIdx, bgIdxUtt: bgIdx,
					})
					moraIdx++
				}
			}
		}
	}
	return slots
}

// orderingIndexes returns the utterance-global Word and AccentPhrase
// order (used for B/C/D and E/F/G previous/next lookups), the
// BreathGroup order (used for H/I/J), and each AccentPhrase's owning
// BreathGroup (AccentPhrase does not back-reference it).
func orderingIndexes(u *Utterance) ([]*Word, []*AccentPhrase, []*BreathGroup, map[*AccentPhrase]*BreathGroup) {
	var words []*Word
	var aps []*AccentPhrase
	var bgs []*BreathGroup
	apBG := make(map[*AccentPhrase]*BreathGroup)
	for _, bg := range u.BreathGroups {
		bgs = append(bgs, bg)
		for _, ap := range bg.AccentPhrases {
			aps = append(aps, ap)
			apBG[ap] = bg
			words = append(words, ap.Words...)
		}
	}
	return words, aps, bgs, apBG
}

func sentinelLabel(phonemes []string, pos int, bgCount, apCount, moraCount int) *Label {
	return &Label{
		P1: phonemes[pos], P2: phonemes[pos+1], P3: phonemes[pos+2], P4: phonemes[pos+3], P5: phonemes[pos+4],
		A1: unknown, A2: unknown, A3: unknown,
		KBGCount: bgCount, KAPCount: apCount, KMoraCount: moraCount,
	}
}

func moraLabel(phonemes []string, pos int, s moraSlot, words []*Word, aps []*AccentPhrase, bgs []*BreathGroup, apBG map[*AccentPhrase]*BreathGroup, bgCount, apCount, moraCount int) *Label {
	l := &Label{
		P1: phonemes[pos], P2: phonemes[pos+1], P3: phonemes[pos+2], P4: phonemes[pos+3], P5: phonemes[pos+4],
		A1: known(s.moraIdxAP - s.ap.AccentNucleus),
		A2: known(s.ap.MoraCount),
		A3: known(s.ap.AccentNucleus),
		CWord: s.word,
		KBGCount: bgCount, KAPCount: apCount, KMoraCount: moraCount,
	}
	l.BWord, l.DWord = neighborWords(words, s.word)

	apIdx := indexOfAP(aps, s.ap)
	l.FCur = apStatsOf(s.ap, true)
	l.FCur.bgIndexFromStart = s.apIdxBG
	l.FCur.bgIndexFromEnd = len(s.bg.AccentPhrases) - 1 - s.apIdxBG
	if apIdx > 0 {
		prev := aps[apIdx-1]
		sameBG := apBG[prev] == s.bg
		st := apStatsOf(prev, true)
		st.sameBGAsNext = sameBG
		l.EPrev = st
		l.FCur.sameBGAsPrev = sameBG
	}
	if apIdx >= 0 && apIdx+1 < len(aps) {
		next := aps[apIdx+1]
		sameBG := apBG[next] == s.bg
		st := apStatsOf(next, true)
		st.sameBGAsPrev = sameBG
		l.GNext = st
		l.FCur.sameBGAsNext = sameBG
	}

	l.ICur = bgStatsOf(s.bg)
	l.ICur.bgIndexFromStart = s.bgIdxUtt
	l.ICur.bgIndexFromEnd = bgCount - 1 - s.bgIdxUtt
	if s.bgIdxUtt > 0 {
		l.HPrev = bgStatsOf(bgs[s.bgIdxUtt-1])
	}
	if s.bgIdxUtt+1 < bgCount {
		l.JNext = bgStatsOf(bgs[s.bgIdxUtt+1])
	}
	return l
}

func neighborWords(words []*Word, cur *Word) (prev, next *Word) {
	for i, w := range words {
		if w == cur {
			if i > 0 {
				prev = words[i-1]
			}
			if i+1 < len(words) {
				next = words[i+1]
			}
			return
		}
	}
	return
}

func indexOfAP(aps []*AccentPhrase, target *AccentPhrase) int {
	for i, ap := range aps {
		if ap == target {
			return i
		}
	}
	return -1
}

func apStatsOf(ap *AccentPhrase, present bool) apStats {
	return apStats{
		present:   present,
		moraCount: ap.MoraCount,
		nucleus:   ap.AccentNucleus,
		interrog:  ap.IsInterrogative,
		emphasis:  ap.IsEmphasis,
	}
}

func bgStatsOf(bg *BreathGroup) bgStats {
	return bgStats{
		present:   true,
		apCount:   len(bg.AccentPhrases),
		moraCount: bg.MoraCount(),
	}
}
