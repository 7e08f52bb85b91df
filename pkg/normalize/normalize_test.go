package normalize

import "testing"

func TestNormalizeFullWidthDigitsAndLetters(t *testing.T) {
	got := Normalize("０１２ＡＢＣ")
	want := "012ABC"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeFullWidthPunctuation(t *testing.T) {
	got := Normalize("こんにちは！　元気？")
	want := "こんにちは! 元気?"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizePassesThroughUnmatchedText(t *testing.T) {
	s := "今日は晴れです"
	if got := Normalize(s); got != s {
		t.Errorf("Normalize() = %q, want unchanged %q", got, s)
	}
}

func TestNormalizeEllipsisVariant(t *testing.T) {
	got := Normalize("待って...")
	want := "待って…"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}
