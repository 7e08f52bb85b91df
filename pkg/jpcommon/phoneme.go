package jpcommon

import "github.com/jpreprocess-go/jpreprocess/pkg/mora"

// sil is the boundary sentinel emitted before the first and after the
// last Mora of the utterance (spec §4.8 "plus two sentinel labels
// `sil`"). pau marks an internal breath-group pause.
const (
	sil = "sil"
	pau = "pau"
)

// phonemeOf renders one Mora's full-context phoneme slot. This port
// emits one Label per Mora rather than per IPA phoneme (spec §8's
// invariant ties label count to Mora count + 2, not phoneme count), so
// a mora's consonant and vowel are concatenated into a single token;
// EffectivePhoneme already carries the devoicing/pau handling, this
// just adds the consonant and gives the chouon mark its own token
// instead of EffectivePhoneme's empty string for it.
func phonemeOf(m mora.Mora) string {
	if m.Kind == mora.LongMark {
		return ":"
	}
	return string(m.Consonant) + m.EffectivePhoneme()
}
