package mora

import "testing"

func TestTokenizeBasic(t *testing.T) {
	moras, ok := Tokenize("コンニチハ")
	if !ok {
		t.Fatalf("Tokenize failed unexpectedly")
	}
	want := []string{"コ", "ン", "ニ", "チ", "ハ"}
	if len(moras) != len(want) {
		t.Fatalf("got %d moras, want %d", len(moras), len(want))
	}
	for i, m := range moras {
		if m.Symbol != want[i] {
			t.Errorf("mora %d: got %q, want %q", i, m.Symbol, want[i])
		}
	}
}

func TestTokenizeYouonLongestMatch(t *testing.T) {
	moras, ok := Tokenize("キャット")
	if !ok {
		t.Fatalf("Tokenize failed unexpectedly")
	}
	if moras[0].Symbol != "キャ" {
		t.Errorf("expected youon キャ to win over キ, got %q", moras[0].Symbol)
	}
	if moras[1].Kind != Geminate {
		t.Errorf("expected ッ after キャ, got kind %v", moras[1].Kind)
	}
}

func TestTokenizeLongVowelMark(t *testing.T) {
	moras, ok := Tokenize("コーヒー")
	if !ok {
		t.Fatalf("Tokenize failed unexpectedly")
	}
	var longCount int
	for _, m := range moras {
		if m.Kind == LongMark {
			longCount++
		}
	}
	if longCount != 2 {
		t.Errorf("expected 2 long marks, got %d", longCount)
	}
}

func TestTokenizeUnrecognised(t *testing.T) {
	if _, ok := Tokenize("コンABC"); ok {
		t.Errorf("expected Tokenize to fail on latin runes")
	}
}

func TestHasVowel(t *testing.T) {
	if !Table["カ"].HasVowel() {
		t.Errorf("カ should have a devoiceable vowel")
	}
	if Table["ン"].HasVowel() {
		t.Errorf("ン should not have a devoiceable vowel")
	}
	if Table["ッ"].HasVowel() {
		t.Errorf("ッ should not have a devoiceable vowel")
	}
}

func TestEffectivePhonemeUnvoiced(t *testing.T) {
	m := Table["シ"]
	m.Unvoiced = true
	if got := m.EffectivePhoneme(); got != "I" {
		t.Errorf("expected unvoiced シ to report %q, got %q", "I", got)
	}
}
