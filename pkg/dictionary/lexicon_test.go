package dictionary

import (
	"strings"
	"testing"
)

func TestParseLexiconCSV(t *testing.T) {
	csv := "今日,名詞,副詞可能,*,*,*,*,今日,,,キョウ,キョー,1/3,\n" +
		"は,助詞,係助詞,*,*,*,*,は,,,ハ,ワ,0/1,\n"
	entries, err := parseLexiconCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parseLexiconCSV: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Surface != "今日" {
		t.Errorf("Surface = %q, want 今日", entries[0].Surface)
	}
	if entries[0].Fields[0] != "名詞" {
		t.Errorf("Fields[0] (pos1) = %q, want 名詞", entries[0].Fields[0])
	}
	if entries[0].Fields[6] != "今日" {
		t.Errorf("Fields[6] (orig) = %q, want 今日", entries[0].Fields[6])
	}
	if entries[0].Fields[10] != "キョー" {
		t.Errorf("Fields[10] (pron) = %q, want キョー", entries[0].Fields[10])
	}
}

func TestLexiconLookup(t *testing.T) {
	entries, err := parseLexiconCSV(strings.NewReader(
		"橋,名詞,一般,*,*,*,*,橋,,,ハシ,ハシ,0/2,\n" +
			"箸,名詞,一般,*,*,*,*,箸,,,ハシ,ハシ,2/2,\n",
	))
	if err != nil {
		t.Fatalf("parseLexiconCSV: %v", err)
	}
	lex := NewLexicon(entries)
	got := lex.Lookup("橋")
	if len(got) != 1 || got[0].Fields[6] != "橋" {
		t.Fatalf("Lookup(橋) = %+v", got)
	}
	if none := lex.Lookup("存在しない"); none != nil {
		t.Errorf("Lookup(missing) = %+v, want nil", none)
	}
}

func TestEntryRawToken(t *testing.T) {
	entries, err := parseLexiconCSV(strings.NewReader(
		"今日,名詞,副詞可能,*,*,*,*,今日,,,キョウ,キョー,1/3,\n",
	))
	if err != nil {
		t.Fatalf("parseLexiconCSV: %v", err)
	}
	tok := entries[0].RawToken()
	if tok.Surface != "今日" {
		t.Errorf("Surface = %q, want 今日", tok.Surface)
	}
	if tok.Details[0] != "名詞" {
		t.Errorf("Details[0] = %q, want 名詞", tok.Details[0])
	}
}
