package njdset

import (
	"testing"

	"github.com/jpreprocess-go/jpreprocess/pkg/njd"
	"github.com/jpreprocess-go/jpreprocess/pkg/pos"
)

func TestPreprocessRunsAllPassesInOrder(t *testing.T) {
	n := njd.New()
	n.Append(
		&njd.Node{Surface: "犬", POS: pos.POS{Category: pos.Meishi}, Pron: mustMoras("イヌ"), Acc: 1},
		&njd.Node{Surface: "は", POS: pos.POS{Category: pos.Joshi}, Pron: mustMoras("ハ")},
		&njd.Node{Surface: "。", POS: pos.POS{Category: pos.Kigou, Kigou: pos.KigouKuten}},
	)

	Preprocess(n)

	for _, node := range n.Nodes {
		if node.MoraSize != len(node.Pron) {
			t.Errorf("invariant broken: MoraSize=%d len(Pron)=%d for %q", node.MoraSize, len(node.Pron), node.Surface)
		}
	}
	if n.Nodes[0].ChainFlag != njd.ChainStartNewPhrase {
		t.Errorf("expected first node to start a new phrase")
	}
}

func TestPreprocessIdempotentSurfaceWithNoDigitsNoFillers(t *testing.T) {
	n := njd.New()
	n.Append(
		&njd.Node{Surface: "犬", POS: pos.POS{Category: pos.Meishi}, Pron: mustMoras("イヌ")},
		&njd.Node{Surface: "小屋", POS: pos.POS{Category: pos.Meishi}, Pron: mustMoras("コヤ")},
	)
	want := n.String()
	Preprocess(n)
	if got := n.String(); got != want {
		t.Errorf("surface concatenation changed: got %q, want %q", got, want)
	}
}
