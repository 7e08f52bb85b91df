package main_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestCLI_OfflineServer builds the jpreprocess binary and runs it
// against a local HTTP fixture, mirroring the teacher CLI's offline
// smoke test so a URL fetch, article extraction, and label synthesis
// all run together without depending on the live network.
func TestCLI_OfflineServer(t *testing.T) {
	tmp := t.TempDir()

	body := []byte(`<html><body><article><p>` +
		`こんにちは。今日は晴れです。` +
		`</p></article></body></html>`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(body)
	}))
	defer srv.Close()

	bin := filepath.Join(tmp, "jpreprocess.bin")
	build := exec.Command("go", "build", "-o", bin, "github.com/jpreprocess-go/jpreprocess/cmd/jpreprocess")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("failed to build CLI: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	cmd := exec.CommandContext(ctx, bin, "-url", srv.URL, "-workers", "2")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("CLI run failed: %v\noutput: %s", err, out)
	}

	if !strings.Contains(string(out), "# sentence 1") {
		t.Errorf("expected at least one sentence header in output, got:\n%s", out)
	}
}

func TestCLI_TextFlagProducesLabels(t *testing.T) {
	tmp := t.TempDir()
	bin := filepath.Join(tmp, "jpreprocess.bin")
	build := exec.Command("go", "build", "-o", bin, "github.com/jpreprocess-go/jpreprocess/cmd/jpreprocess")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("failed to build CLI: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cmd := exec.CommandContext(ctx, bin, "-text", "犬")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("CLI run failed: %v\noutput: %s", err, out)
	}
	if !strings.Contains(string(out), "sil") {
		t.Errorf("expected label output containing sil, got:\n%s", out)
	}
}
