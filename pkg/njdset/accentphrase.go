package njdset

import (
	"github.com/jpreprocess-go/jpreprocess/pkg/njd"
	"github.com/jpreprocess-go/jpreprocess/pkg/pos"
)

// AccentPhrasePass implements spec §4.4: walks the node vector setting
// each node's ChainFlag to StartNewPhrase or ContinuePhrase. decideChainFlag
// checks rules 14,15,16,17,11,12,18,10,13,09,08,07,06,05,04,03,02,01 in
// that order rather than the spec's literal 01→18 reading — see
// DESIGN.md for why this order is required. The first matching rule
// decides. The first node is always StartNewPhrase (spec §3 invariant:
// "never the first node" for ContinuePhrase).
func AccentPhrasePass(n *njd.NJD) {
	nodes := n.Nodes
	for i, cur := range nodes {
		if i == 0 {
			cur.ChainFlag = njd.ChainStartNewPhrase
			continue
		}
		cur.ChainFlag = decideChainFlag(nodes, i)
	}
}

func decideChainFlag(nodes []*njd.Node, i int) njd.ChainFlag {
	prev, cur := nodes[i-1], nodes[i]

	// Rule 14: an isolated symbol always starts a new phrase.
	if cur.IsSymbol() {
		return njd.ChainStartNewPhrase
	}

	// Rule 15: a prefix always starts a new phrase.
	if cur.POS.Category == pos.Settoushi {
		return njd.ChainStartNewPhrase
	}

	// Rule 16: ...,姓 (surname) followed by a noun starts a new phrase.
	if prev.POS.Category == pos.Meishi && prev.POS.Meishi == pos.MeishiKoyuumeishi && prev.POS.Name == pos.NameSei &&
		cur.POS.Category == pos.Meishi {
		return njd.ChainStartNewPhrase
	}

	// Rule 17: noun followed by ...,名 (given name) starts a new phrase.
	if prev.POS.Category == pos.Meishi && cur.POS.Category == pos.Meishi &&
		cur.POS.Meishi == pos.MeishiKoyuumeishi && cur.POS.Name == pos.NameMei {
		return njd.ChainStartNewPhrase
	}

	// Rule 11 (lookahead): 形容詞,非自立 following a verb/adjective Renyou
	// form or the particle て/で continues the phrase.
	if cur.POS.Category == pos.Keiyoushi && cur.POS.Keiyoushi == pos.KeiyoushiHijiritsu {
		if (prev.POS.Category == pos.Doushi || prev.POS.Category == pos.Keiyoushi) && prev.CForm.IsRenyou() {
			return njd.ChainContinuePhrase
		}
		if prev.POS.Category == pos.Joshi && (prev.Surface == "て" || prev.Surface == "で") {
			return njd.ChainContinuePhrase
		}
	}

	// Rule 12 (lookahead): 動詞,非自立 following a verb Renyou form or a
	// noun,サ変接続 continues the phrase.
	if cur.POS.Category == pos.Doushi && cur.POS.Doushi == pos.DoushiHijiritsu {
		if prev.POS.Category == pos.Doushi && prev.CForm.IsRenyou() {
			return njd.ChainContinuePhrase
		}
		if prev.POS.Category == pos.Meishi && prev.POS.Meishi == pos.MeishiSahenSetsuzoku {
			return njd.ChainContinuePhrase
		}
	}

	// Rule 18: cur = *,接尾 (any-category suffix) continues the phrase.
	if isSetsubi(cur) {
		return njd.ChainContinuePhrase
	}

	// Rule 10: *,接尾 (prev is a suffix) followed by a noun starts a new
	// phrase.
	if isSetsubi(prev) && cur.POS.Category == pos.Meishi {
		return njd.ChainStartNewPhrase
	}

	// Rule 13: noun followed by verb/adjective/形容動詞語幹 starts a new
	// phrase.
	if prev.POS.Category == pos.Meishi {
		if cur.POS.Category == pos.Doushi || cur.POS.Category == pos.Keiyoushi ||
			(cur.POS.Category == pos.Meishi && cur.POS.Meishi == pos.MeishiKeiyoudoushiGokan) {
			return njd.ChainStartNewPhrase
		}
	}

	// Rule 09: particle/aux-verb followed by a non-particle/aux-verb
	// starts a new phrase.
	if (prev.POS.Category == pos.Joshi || prev.POS.Category == pos.Jodoushi) &&
		!(cur.POS.Category == pos.Joshi || cur.POS.Category == pos.Jodoushi) {
		return njd.ChainStartNewPhrase
	}

	// Rule 08: a particle or aux-verb continues the phrase.
	if cur.POS.Category == pos.Joshi || cur.POS.Category == pos.Jodoushi {
		return njd.ChainContinuePhrase
	}

	// Rule 07: noun,副詞可能 starts a new phrase.
	if cur.POS.Category == pos.Meishi && cur.POS.Meishi == pos.MeishiFukushiKanou {
		return njd.ChainStartNewPhrase
	}

	// Rule 06: adverb, conjunction, or adnominal always starts a new
	// phrase.
	switch cur.POS.Category {
	case pos.Fukushi, pos.Setsuzokushi, pos.Rentaishi:
		return njd.ChainStartNewPhrase
	}

	// Rule 05: verb followed by adjective or noun starts a new phrase.
	if prev.POS.Category == pos.Doushi && (cur.POS.Category == pos.Keiyoushi || cur.POS.Category == pos.Meishi) {
		return njd.ChainStartNewPhrase
	}

	// Rule 04: noun,形容動詞語幹 followed by a noun starts a new phrase.
	if prev.POS.Category == pos.Meishi && prev.POS.Meishi == pos.MeishiKeiyoudoushiGokan && cur.POS.Category == pos.Meishi {
		return njd.ChainStartNewPhrase
	}

	// Rule 03: adjective followed by noun starts a new phrase.
	if prev.POS.Category == pos.Keiyoushi && cur.POS.Category == pos.Meishi {
		return njd.ChainStartNewPhrase
	}

	// Rule 02: noun followed by noun continues the phrase.
	if prev.POS.Category == pos.Meishi && cur.POS.Category == pos.Meishi {
		return njd.ChainContinuePhrase
	}

	// Rule 01: default.
	return njd.ChainContinuePhrase
}

// isSetsubi reports whether a node's sublevel-2 is 接尾 (suffix),
// regardless of its top-level category (spec §4.4 rules 10/18 use "*,
// 接尾" to mean any category).
func isSetsubi(n *njd.Node) bool {
	switch n.POS.Category {
	case pos.Meishi:
		return n.POS.Meishi == pos.MeishiSetsubi
	case pos.Doushi:
		return n.POS.Doushi == pos.DoushiSetsubi
	case pos.Keiyoushi:
		return n.POS.Keiyoushi == pos.KeiyoushiSetsubi
	}
	return false
}
