package tokenizer

import "testing"

func TestRawTokenFieldsUnkShortcut(t *testing.T) {
	tok := RawToken{Surface: "ペーン"}
	tok.Details[0] = "UNK"
	got := tok.Fields()
	if len(got) != 1 || got[0] != "UNK" {
		t.Fatalf("Fields() = %v, want [UNK]", got)
	}
}

func TestRawTokenFieldsFullRow(t *testing.T) {
	tok := RawToken{Surface: "今日"}
	tok.Details = [13]string{"名詞", "副詞可能", "*", "*", "*", "*", "今日", "", "", "キョウ", "キョー", "1/3", ""}
	got := tok.Fields()
	if len(got) != 13 {
		t.Fatalf("Fields() len = %d, want 13", len(got))
	}
	if got[0] != "名詞" {
		t.Errorf("Fields()[0] = %q, want 名詞", got[0])
	}
}
