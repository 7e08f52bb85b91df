package njdset

import (
	"testing"

	"github.com/jpreprocess-go/jpreprocess/pkg/njd"
	"github.com/jpreprocess-go/jpreprocess/pkg/pos"
)

func TestPronunciationPassMarksFillerRuns(t *testing.T) {
	n := njd.New()
	filler := &njd.Node{Surface: "えっと", POS: pos.POS{Category: pos.Filler}, Pron: mustMoras("エット")}
	n.Append(filler)
	PronunciationPass(n)
	if !filler.FillerGroup {
		t.Errorf("expected filler node to be marked FillerGroup")
	}
}

func TestPronunciationPassRemovesSilentNodes(t *testing.T) {
	n := njd.New()
	silent := &njd.Node{Surface: "​"}
	kept := &njd.Node{Surface: "犬", Pron: mustMoras("イヌ")}
	n.Append(silent, kept)
	PronunciationPass(n)
	if len(n.Nodes) != 1 || n.Nodes[0] != kept {
		t.Fatalf("expected only the non-silent node to remain")
	}
}

func TestApplyReadingExceptionsRewritesPron(t *testing.T) {
	n := njd.New()
	node := &njd.Node{Surface: "今日", Pron: mustMoras("コンニチ")}
	n.Append(node)
	ApplyReadingExceptions(n, map[string]string{"今日": "キョー"})
	if node.Read != "キョー" {
		t.Errorf("Read = %q, want キョー", node.Read)
	}
	if pronText(node) != "キョー" {
		t.Errorf("pron = %q, want キョー", pronText(node))
	}
}

func TestApplyReadingExceptionsIgnoresUnmatchedSurface(t *testing.T) {
	n := njd.New()
	node := &njd.Node{Surface: "明日", Pron: mustMoras("アシタ")}
	n.Append(node)
	ApplyReadingExceptions(n, map[string]string{"今日": "キョー"})
	if pronText(node) != "アシタ" {
		t.Errorf("pron = %q, want unchanged アシタ", pronText(node))
	}
}

func TestApplyReadingExceptionsNoopOnEmptyTable(t *testing.T) {
	n := njd.New()
	node := &njd.Node{Surface: "今日", Pron: mustMoras("コンニチ")}
	n.Append(node)
	ApplyReadingExceptions(n, nil)
	if pronText(node) != "コンニチ" {
		t.Errorf("pron = %q, want unchanged コンニチ", pronText(node))
	}
}

func TestPronunciationPassCanonicalizesDash(t *testing.T) {
	n := njd.New()
	node := &njd.Node{Surface: "―"}
	n.Append(node)
	PronunciationPass(n)
	if len(n.Nodes) != 1 {
		t.Fatalf("expected canonicalized node to survive (non-empty pron)")
	}
	if pronText(n.Nodes[0]) != "ー" {
		t.Errorf("pron = %q, want ー", pronText(n.Nodes[0]))
	}
}
