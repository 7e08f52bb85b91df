package jpcommon

import "github.com/jpreprocess-go/jpreprocess/pkg/mora"

// AccentPhrase is an ordered list of Words sharing a single accent
// nucleus (spec §3 Utterance model). IsInterrogative/IsEmphasis are
// carried by the label grammar (spec §4.8 /E:/F:/G:) but nothing in
// this pipeline's upstream passes derives them from dictionary data;
// they are always false — see DESIGN.md.
type AccentPhrase struct {
	Words           []*Word
	MoraCount       int
	AccentNucleus   int
	IsInterrogative bool
	IsEmphasis      bool
}

// MoraAt returns the nth Mora of the phrase across all Words, and ok
// reports whether n is in range.
func (ap *AccentPhrase) MoraAt(n int) (mora.Mora, bool) {
	for _, w := range ap.Words {
		if n < len(w.Moras) {
			return w.Moras[n], true
		}
		n -= len(w.Moras)
	}
	return mora.Mora{}, false
}
