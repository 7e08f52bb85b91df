package njdset

import (
	"testing"

	"github.com/jpreprocess-go/jpreprocess/pkg/njd"
)

func kazuNode(surface, pron string, acc int) *njd.Node {
	moras, _ := tokenizeMoraHelper(pron)
	return &njd.Node{
		Surface: surface,
		POS:     kazuPOS(),
		Pron:    moras,
		MoraSize: len(moras),
		Read:    pron,
		Acc:     acc,
	}
}

func TestDigitPassNormalization(t *testing.T) {
	n := njd.New()
	n.Append(kazuNode("１", "", 0))
	DigitPass(n)
	if n.Nodes[0].Surface != "一" {
		t.Errorf("Surface = %q, want 一", n.Nodes[0].Surface)
	}
	if pronText(n.Nodes[0]) != "イチ" {
		t.Errorf("pron = %q, want イチ", pronText(n.Nodes[0]))
	}
}

func TestDigitPassContractionAndVoicingRoppyaku(t *testing.T) {
	n := njd.New()
	n.Append(kazuNode("六", "ロク", 0))
	n.Append(kazuNode("百", "ヒャク", 0))
	DigitPass(n)
	if len(n.Nodes) != 1 {
		t.Fatalf("expected digit run merged into 1 node, got %d", len(n.Nodes))
	}
	got := pronText(n.Nodes[0])
	if got != "ロッピャク" {
		t.Errorf("pron = %q, want ロッピャク", got)
	}
}

func TestDigitPassPeriodBoundaryKeepsGroup(t *testing.T) {
	n := njd.New()
	n.Append(kazuNode("三", "サン", 0))
	n.Append(&njd.Node{Surface: "．", POS: kazuPOS()})
	n.Append(kazuNode("一", "イチ", 0))
	DigitPass(n)
	if len(n.Nodes) != 1 {
		t.Fatalf("expected decimal group merged into 1 node, got %d", len(n.Nodes))
	}
}

func TestDigitPassNonDigitTerminatesGroup(t *testing.T) {
	n := njd.New()
	n.Append(kazuNode("三", "サン", 0))
	n.Append(&njd.Node{Surface: "犬", POS: nonKazuPOS()})
	n.Append(kazuNode("一", "イチ", 0))
	DigitPass(n)
	if len(n.Nodes) != 3 {
		t.Fatalf("expected non-digit to split the run, got %d nodes", len(n.Nodes))
	}
}
