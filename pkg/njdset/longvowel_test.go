package njdset

import (
	"testing"

	"github.com/jpreprocess-go/jpreprocess/pkg/njd"
)

func TestLongVowelPassFoldsDuplicateVowel(t *testing.T) {
	n := njd.New()
	pron, _ := tokenizeMoraHelper("オオキイ")
	node := &njd.Node{Surface: "おおきい", Pron: pron, MoraSize: len(pron)}
	n.Append(node)
	before := len(node.Pron)
	LongVowelPass(n)
	if len(node.Pron) != before-1 {
		t.Errorf("mora count = %d, want %d", len(node.Pron), before-1)
	}
	if node.MoraSize != len(node.Pron) {
		t.Errorf("MoraSize not kept in sync: %d vs %d", node.MoraSize, len(node.Pron))
	}
}

func TestLongVowelPassNoFoldAcrossDifferentVowels(t *testing.T) {
	n := njd.New()
	pron, _ := tokenizeMoraHelper("アイウ")
	node := &njd.Node{Surface: "あいう", Pron: pron, MoraSize: len(pron)}
	n.Append(node)
	before := len(node.Pron)
	LongVowelPass(n)
	if len(node.Pron) != before {
		t.Errorf("expected no folding across distinct vowels, got %d from %d", len(node.Pron), before)
	}
}
