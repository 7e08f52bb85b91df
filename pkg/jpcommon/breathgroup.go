package jpcommon

// BreathGroup is an ordered list of AccentPhrases between
// pauses/punctuation (spec §3, glossary "BG").
type BreathGroup struct {
	AccentPhrases []*AccentPhrase
}

// MoraCount returns the total Mora count across all AccentPhrases.
func (bg *BreathGroup) MoraCount() int {
	total := 0
	for _, ap := range bg.AccentPhrases {
		total += ap.MoraCount
	}
	return total
}
