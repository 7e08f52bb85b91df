package njdset

import (
	"testing"

	"github.com/jpreprocess-go/jpreprocess/pkg/njd"
	"github.com/jpreprocess-go/jpreprocess/pkg/pos"
)

func TestUnvoicedVowelPassDesuFinalSu(t *testing.T) {
	n := njd.New()
	pron, _ := tokenizeMoraHelper("デス")
	node := &njd.Node{Surface: "です", POS: pos.POS{Category: pos.Jodoushi}, Pron: pron}
	n.Append(node)
	UnvoicedVowelPass(n)
	if !node.Pron[1].Unvoiced {
		t.Errorf("expected final ス to be unvoiced")
	}
	if node.Pron[0].Unvoiced {
		t.Errorf("did not expect デ to be unvoiced")
	}
}

func TestUnvoicedVowelPassFillerSkipped(t *testing.T) {
	n := njd.New()
	pron, _ := tokenizeMoraHelper("デス")
	node := &njd.Node{Surface: "です", POS: pos.POS{Category: pos.Filler}, Pron: pron}
	n.Append(node)
	UnvoicedVowelPass(n)
	if node.Pron[1].Unvoiced {
		t.Errorf("filler node moras must never be devoiced")
	}
}

func TestUnvoicedVowelPassNeverDevoiceNucleus(t *testing.T) {
	n := njd.New()
	pron, _ := tokenizeMoraHelper("デス")
	node := &njd.Node{Surface: "です", POS: pos.POS{Category: pos.Jodoushi}, Pron: pron, Acc: 2}
	n.Append(node)
	UnvoicedVowelPass(n)
	if node.Pron[1].Unvoiced {
		t.Errorf("expected rule 4 to protect the accent nucleus mora from devoicing")
	}
}
