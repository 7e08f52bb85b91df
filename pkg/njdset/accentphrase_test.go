package njdset

import (
	"testing"

	"github.com/jpreprocess-go/jpreprocess/pkg/cform"
	"github.com/jpreprocess-go/jpreprocess/pkg/njd"
	"github.com/jpreprocess-go/jpreprocess/pkg/pos"
)

func nounNode(surface string) *njd.Node {
	return &njd.Node{Surface: surface, POS: pos.POS{Category: pos.Meishi, Meishi: pos.MeishiGeneral}}
}

func TestAccentPhrasePassFirstNodeAlwaysStarts(t *testing.T) {
	n := njd.New()
	n.Append(nounNode("犬"))
	AccentPhrasePass(n)
	if n.Nodes[0].ChainFlag != njd.ChainStartNewPhrase {
		t.Errorf("first node ChainFlag = %v, want StartNewPhrase", n.Nodes[0].ChainFlag)
	}
}

func TestAccentPhrasePassNounNounContinues(t *testing.T) {
	n := njd.New()
	n.Append(nounNode("犬"), nounNode("小屋"))
	AccentPhrasePass(n)
	if n.Nodes[1].ChainFlag != njd.ChainContinuePhrase {
		t.Errorf("noun->noun ChainFlag = %v, want ContinuePhrase", n.Nodes[1].ChainFlag)
	}
}

func TestAccentPhrasePassSymbolAlwaysStarts(t *testing.T) {
	n := njd.New()
	symbol := &njd.Node{Surface: "、", POS: pos.POS{Category: pos.Kigou, Kigou: pos.KigouTouten}}
	n.Append(nounNode("犬"), symbol)
	AccentPhrasePass(n)
	if n.Nodes[1].ChainFlag != njd.ChainStartNewPhrase {
		t.Errorf("symbol ChainFlag = %v, want StartNewPhrase", n.Nodes[1].ChainFlag)
	}
}

func TestAccentPhrasePassVerbThenNounStarts(t *testing.T) {
	n := njd.New()
	verb := &njd.Node{Surface: "食べる", POS: pos.POS{Category: pos.Doushi}}
	n.Append(verb, nounNode("犬"))
	AccentPhrasePass(n)
	if n.Nodes[1].ChainFlag != njd.ChainStartNewPhrase {
		t.Errorf("verb->noun ChainFlag = %v, want StartNewPhrase", n.Nodes[1].ChainFlag)
	}
}

func TestAccentPhrasePassParticleContinues(t *testing.T) {
	n := njd.New()
	particle := &njd.Node{Surface: "は", POS: pos.POS{Category: pos.Joshi}}
	n.Append(nounNode("犬"), particle)
	AccentPhrasePass(n)
	if n.Nodes[1].ChainFlag != njd.ChainContinuePhrase {
		t.Errorf("particle ChainFlag = %v, want ContinuePhrase", n.Nodes[1].ChainFlag)
	}
}

func TestAccentPhrasePassHijiritsuKeiyoushiLookahead(t *testing.T) {
	n := njd.New()
	verb := &njd.Node{Surface: "食べ", POS: pos.POS{Category: pos.Doushi}, CForm: cform.RenyouConjunctionTa}
	hijiritsu := &njd.Node{Surface: "たい", POS: pos.POS{Category: pos.Keiyoushi, Keiyoushi: pos.KeiyoushiHijiritsu}}
	n.Append(verb, hijiritsu)
	AccentPhrasePass(n)
	if n.Nodes[1].ChainFlag != njd.ChainContinuePhrase {
		t.Errorf("rule 11 ChainFlag = %v, want ContinuePhrase", n.Nodes[1].ChainFlag)
	}
}
