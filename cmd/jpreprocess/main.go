package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"regexp"
	"syscall"
	"time"

	"github.com/go-shiori/go-readability"

	"github.com/jpreprocess-go/jpreprocess/pkg/jpreprocess"
)

func main() {
	urlFlag := flag.String("url", "", "URL of an article to fetch and convert")
	textFlag := flag.String("text", "", "Literal text to convert (reads stdin if neither -url nor -text is set)")
	dictFlag := flag.String("exceptions", "", "Path to a JSON reading-exception table")
	cacheFlag := flag.String("cache", "", "Path to a SQLite label cache (disabled if empty)")
	workersFlag := flag.Int("workers", 4, "Number of sentences to convert concurrently")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pipeline, err := jpreprocess.New(jpreprocess.Config{
		ExceptionsPath: *dictFlag,
		CachePath:      *cacheFlag,
		Workers:        *workersFlag,
		Logger:         log.Default(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize pipeline: %v", err)
	}
	defer pipeline.Close()

	text, err := inputText(ctx, *urlFlag, *textFlag)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	results, err := pipeline.ConvertDocument(ctx, text)
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	for i, labels := range results {
		fmt.Printf("# sentence %d\n", i+1)
		for _, l := range labels {
			fmt.Println(l)
		}
	}
}

// inputText resolves the text to convert: a fetched article, literal
// text, or stdin, in that priority order (mirrors the teacher CLI's
// -url-then-fallback flag handling).
func inputText(ctx context.Context, urlFlag, textFlag string) (string, error) {
	if urlFlag != "" {
		return fetchArticleText(ctx, urlFlag)
	}
	if textFlag != "" {
		return textFlag, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

const maxBodySize = 10 * 1024 * 1024 // 10 MB limit for HTML content

// fetchArticleText downloads urlStr and extracts its main article text,
// the same readability-based flow the teacher CLI used for ingestion.
func fetchArticleText(ctx context.Context, urlStr string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; jpreprocess/1.0)")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: status %d", urlStr, resp.StatusCode)
	}
	if resp.ContentLength > int64(maxBodySize) {
		return "", fmt.Errorf("content-length %d exceeds limit of %d bytes", resp.ContentLength, maxBodySize)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	if int64(len(body)) >= int64(maxBodySize) {
		return "", fmt.Errorf("response body exceeded %d byte limit", maxBodySize)
	}

	body = sanitizeRuby(body)

	parsedURL, _ := url.Parse(urlStr)
	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		return "", fmt.Errorf("extracting article: %w", err)
	}
	return article.TextContent, nil
}

var (
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// sanitizeRuby strips ruby annotation tags (<rt>/<rp>) from fetched HTML
// before article extraction. Readability otherwise flattens furigana
// into the body text alongside the kanji it annotates, duplicating
// every annotated word (e.g. "漢字" becomes "漢字かんじ") and feeding the
// tokenizer two surface readings for one word. Safe on Shift_JIS-encoded
// pages too: every byte these patterns match is ASCII, and ASCII '<' is
// never a trailing byte of a Shift_JIS multi-byte sequence.
func sanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, []byte{})
	cleaned = reRP.ReplaceAll(cleaned, []byte{})
	return cleaned
}
