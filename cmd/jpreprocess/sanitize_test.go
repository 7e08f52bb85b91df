package main

import (
	"strings"
	"testing"
)

func TestSanitizeRubyRemovesAnnotations(t *testing.T) {
	in := []byte(`<p>漢字<rt>かんじ</rt>と<rp>（</rp><rt>かんじ</rt><rp>）</rp></p>`)
	out := string(sanitizeRuby(in))
	if strings.Contains(out, "かんじ") {
		t.Errorf("sanitizeRuby left furigana in output: %q", out)
	}
	if !strings.Contains(out, "漢字") {
		t.Errorf("sanitizeRuby removed the annotated text itself: %q", out)
	}
}
