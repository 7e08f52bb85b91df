package njdset

import "github.com/jpreprocess-go/jpreprocess/pkg/njd"

// Preprocess runs every pass over the node vector in the fixed order
// spec §2 mandates: PronunciationPass → DigitPass → AccentPhrasePass →
// AccentTypePass → UnvoicedVowelPass → LongVowelPass. Each pass sees
// every mutation made by the passes before it and none from the ones
// after (spec §5 "Ordering guarantees").
func Preprocess(n *njd.NJD) {
	PronunciationPass(n)
	DigitPass(n)
	AccentPhrasePass(n)
	AccentTypePass(n)
	UnvoicedVowelPass(n)
	LongVowelPass(n)
}
