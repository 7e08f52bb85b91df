package jpcommon

import (
	"testing"

	"github.com/jpreprocess-go/jpreprocess/pkg/mora"
	"github.com/jpreprocess-go/jpreprocess/pkg/njd"
	"github.com/jpreprocess-go/jpreprocess/pkg/pos"
)

func node(surface string, cat pos.Category, pron string, acc int, chain njd.ChainFlag) *njd.Node {
	p, _ := mora.Tokenize(pron)
	return &njd.Node{
		Surface:   surface,
		POS:       pos.POS{Category: cat},
		Pron:      p,
		Acc:       acc,
		MoraSize:  len(p),
		ChainFlag: chain,
	}
}

func punct(surface string) *njd.Node {
	return &njd.Node{Surface: surface, POS: pos.POS{Category: pos.Kigou, Kigou: pos.KigouTouten}}
}

func TestBuildSingleBreathGroupSinglePhrase(t *testing.T) {
	nodes := []*njd.Node{
		node("今日", pos.Meishi, "キョー", 1, njd.ChainStartNewPhrase),
		node("は", pos.Joshi, "ワ", 0, njd.ChainContinuePhrase),
	}
	u := Build(nodes)
	if len(u.BreathGroups) != 1 {
		t.Fatalf("BreathGroups = %d, want 1", len(u.BreathGroups))
	}
	bg := u.BreathGroups[0]
	if len(bg.AccentPhrases) != 1 {
		t.Fatalf("AccentPhrases = %d, want 1", len(bg.AccentPhrases))
	}
	ap := bg.AccentPhrases[0]
	if len(ap.Words) != 2 {
		t.Fatalf("Words = %d, want 2", len(ap.Words))
	}
	if ap.AccentNucleus != 1 {
		t.Errorf("AccentNucleus = %d, want 1", ap.AccentNucleus)
	}
	wantMora := len(nodes[0].Pron) + len(nodes[1].Pron)
	if ap.MoraCount != wantMora {
		t.Errorf("MoraCount = %d, want %d", ap.MoraCount, wantMora)
	}
}

func TestBuildPunctuationStartsNewBreathGroup(t *testing.T) {
	nodes := []*njd.Node{
		node("雨", pos.Meishi, "アメ", 2, njd.ChainStartNewPhrase),
		punct("、"),
		node("雪", pos.Meishi, "ユキ", 2, njd.ChainStartNewPhrase),
	}
	u := Build(nodes)
	if len(u.BreathGroups) != 2 {
		t.Fatalf("BreathGroups = %d, want 2", len(u.BreathGroups))
	}
	for i, bg := range u.BreathGroups {
		if len(bg.AccentPhrases) != 1 || len(bg.AccentPhrases[0].Words) != 1 {
			t.Errorf("breath group %d malformed: %+v", i, bg)
		}
	}
}

func TestBuildChainStartNewPhraseSplitsAccentPhrases(t *testing.T) {
	nodes := []*njd.Node{
		node("赤い", pos.Keiyoushi, "アカイ", 0, njd.ChainStartNewPhrase),
		node("花", pos.Meishi, "ハナ", 2, njd.ChainStartNewPhrase),
	}
	u := Build(nodes)
	if len(u.BreathGroups) != 1 {
		t.Fatalf("BreathGroups = %d, want 1", len(u.BreathGroups))
	}
	if got := len(u.BreathGroups[0].AccentPhrases); got != 2 {
		t.Fatalf("AccentPhrases = %d, want 2", got)
	}
}

func TestUtteranceMoraCount(t *testing.T) {
	nodes := []*njd.Node{
		node("今日", pos.Meishi, "キョー", 1, njd.ChainStartNewPhrase),
		node("は", pos.Joshi, "ワ", 0, njd.ChainContinuePhrase),
	}
	u := Build(nodes)
	want := len(nodes[0].Pron) + len(nodes[1].Pron)
	if got := u.MoraCount(); got != want {
		t.Errorf("MoraCount() = %d, want %d", got, want)
	}
}
