// Package njdset implements the ordered, in-place NJD preprocessing
// passes (spec §2, §4.2-§4.7): pronunciation, digit, accent-phrase
// chaining, accent-type recompute, unvoiced-vowel, and long-vowel.
package njdset

import (
	"github.com/jpreprocess-go/jpreprocess/pkg/mora"
	"github.com/jpreprocess-go/jpreprocess/pkg/njd"
)

// canonicalPron maps ambiguous orthographic surfaces to their canonical
// pronunciation text (spec §4.2 responsibility 2), e.g. prolonged ASCII
// quote/dash forms that dictionaries sometimes emit verbatim instead of
// as a proper chouon mark.
var canonicalPron = map[string]string{
	"\"": "",
	"'":  "",
	"―":  "ー",
	"˗":  "ー",
	"–":  "ー",
	"—":  "ー",
	"─":  "ー",
}

// PronunciationPass implements spec §4.2: it marks runs of フィラー
// nodes as one breath unit, rewrites ambiguous surfaces to their
// canonical pronunciation, and removes nodes left with an empty pron.
// It never alters Mora content otherwise, only node boundaries and
// silence.
func PronunciationPass(n *njd.NJD) {
	markFillerRuns(n)
	canonicalizeAmbiguousSpellings(n)
	n.RemoveSilentNodes()
}

func markFillerRuns(n *njd.NJD) {
	for _, node := range n.Nodes {
		if node.IsFiller() {
			node.FillerGroup = true
		}
	}
}

// ApplyReadingExceptions rewrites each node's Read/Pron/MoraSize from a
// surface-keyed reading-exception table (spec §4.2 responsibility 2:
// "Dictionary-driven reading exceptions"), loaded by pkg/dictionary from
// a source external to the NJD/njdset pipeline. It is a separate,
// explicitly-invoked step rather than folded into PronunciationPass so
// callers that have no exception table (e.g. a pipeline run entirely off
// kagome's IPADic, which has no accent/reading-exception data) can skip
// it without threading an always-empty map through Preprocess.
func ApplyReadingExceptions(n *njd.NJD, exceptions map[string]string) {
	if len(exceptions) == 0 {
		return
	}
	for _, node := range n.Nodes {
		reading, ok := exceptions[node.Surface]
		if !ok {
			continue
		}
		pron, tokenizeOK := mora.Tokenize(reading)
		if !tokenizeOK {
			continue
		}
		node.Read = reading
		node.Pron = pron
		node.MoraSize = len(pron)
	}
}

func canonicalizeAmbiguousSpellings(n *njd.NJD) {
	for _, node := range n.Nodes {
		canon, ok := canonicalPron[node.Surface]
		if !ok {
			continue
		}
		if canon == "" {
			node.Pron = nil
			node.MoraSize = 0
			continue
		}
		pron, tokenizeOK := mora.Tokenize(canon)
		if !tokenizeOK {
			continue
		}
		node.Pron = pron
		node.MoraSize = len(pron)
		node.Read = canon
	}
}
