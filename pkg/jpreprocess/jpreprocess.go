// Package jpreprocess wires the collaborator implementations
// (tokenizer, normalizer, dictionary) to the core pipeline
// (pkg/njd, pkg/njdset, pkg/jpcommon) and exposes the single
// Convert entry point spec.md §6 describes. It keeps no persisted
// state of its own; internal/labelcache is optional ambient plumbing
// layered on top, never a dependency of Convert's result.
package jpreprocess

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"github.com/jpreprocess-go/jpreprocess/internal/labelcache"
	"github.com/jpreprocess-go/jpreprocess/internal/workerpool"
	"github.com/jpreprocess-go/jpreprocess/pkg/dictionary"
	"github.com/jpreprocess-go/jpreprocess/pkg/jpcommon"
	"github.com/jpreprocess-go/jpreprocess/pkg/njd"
	"github.com/jpreprocess-go/jpreprocess/pkg/njdset"
	"github.com/jpreprocess-go/jpreprocess/pkg/normalize"
	"github.com/jpreprocess-go/jpreprocess/pkg/tokenizer"
)

// Config configures a Pipeline. Zero value is valid: no cache, no
// reading exceptions, one worker.
type Config struct {
	// ExceptionsPath, if set, is a JSON reading-exception table loaded
	// once at New and consulted by every Convert call.
	ExceptionsPath string
	// CachePath, if set, opens a SQLite label cache at this path.
	CachePath string
	// Workers bounds the worker pool ConvertDocument uses to process a
	// document's sentences concurrently. Non-positive means 1.
	Workers int
	// Logger receives informational messages; nil means silent.
	Logger *log.Logger
}

// Pipeline runs the full tokenize→NJD→passes→utterance→label chain for
// one or many sentences.
type Pipeline struct {
	tok        tokenizer.Tokenizer
	exceptions map[string]string
	cache      *labelcache.Cache
	workers    int
	logger     *log.Logger
}

// New constructs a Pipeline, loading its optional collaborators.
func New(cfg Config) (*Pipeline, error) {
	tok, err := tokenizer.NewKagomeTokenizer()
	if err != nil {
		return nil, fmt.Errorf("jpreprocess: tokenizer: %w", err)
	}
	return newWithTokenizer(tok, cfg)
}

// newWithTokenizer builds a Pipeline around an already-constructed
// Tokenizer, letting tests substitute a stub for KagomeTokenizer's
// dictionary-backed implementation.
func newWithTokenizer(tok tokenizer.Tokenizer, cfg Config) (*Pipeline, error) {
	var exceptions map[string]string
	var err error
	if cfg.ExceptionsPath != "" {
		exceptions, err = dictionary.LoadReadingExceptions(cfg.ExceptionsPath)
		if err != nil {
			return nil, fmt.Errorf("jpreprocess: reading exceptions: %w", err)
		}
	}

	var cache *labelcache.Cache
	if cfg.CachePath != "" {
		cache, err = labelcache.Open(cfg.CachePath)
		if err != nil {
			return nil, fmt.Errorf("jpreprocess: label cache: %w", err)
		}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	return &Pipeline{
		tok:        tok,
		exceptions: exceptions,
		cache:      cache,
		workers:    workers,
		logger:     cfg.Logger,
	}, nil
}

// Close releases the label cache, if one was opened.
func (p *Pipeline) Close() error {
	if p.cache == nil {
		return nil
	}
	return p.cache.Close()
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}

// Convert runs one sentence through the full pipeline and returns its
// full-context label strings, consulting and populating the label
// cache (if configured) around the pure pipeline run.
func (p *Pipeline) Convert(ctx context.Context, text string) ([]string, error) {
	normalized := normalize.Normalize(text)
	key := cacheKey(normalized)

	if p.cache != nil {
		if labels, ok, err := p.cache.Get(key); err != nil {
			p.logf("jpreprocess: cache lookup failed: %v", err)
		} else if ok {
			return labels, nil
		}
	}

	labels, err := p.convertUncached(normalized)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.Put(key, labels); err != nil {
			p.logf("jpreprocess: cache store failed: %v", err)
		}
	}
	return labels, nil
}

func (p *Pipeline) convertUncached(normalized string) ([]string, error) {
	rows, err := p.tok.Tokenize(normalized)
	if err != nil {
		return nil, fmt.Errorf("jpreprocess: tokenize: %w", err)
	}

	n := njd.New()
	for _, row := range rows {
		if err := n.AppendFromRow(row.Surface, row.Fields()); err != nil {
			return nil, fmt.Errorf("jpreprocess: decode row %q: %w", row.Surface, err)
		}
	}

	njdset.Preprocess(n)
	if len(p.exceptions) > 0 {
		njdset.ApplyReadingExceptions(n, p.exceptions)
	}
	n.RemoveSilentNodes()

	utt := jpcommon.Build(n.Nodes)
	labels := jpcommon.Emit(utt)

	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = l.String()
	}
	return out, nil
}

// ConvertDocument splits text into sentences and runs each one through
// Convert concurrently across the configured worker pool, returning one
// label-string slice per sentence in document order (SPEC_FULL §5).
func (p *Pipeline) ConvertDocument(ctx context.Context, text string) ([][]string, error) {
	sentences := SplitSentences(text)
	results, errs := workerpool.Run(ctx, p.workers, sentences, func(ctx context.Context, sentence string) ([]string, error) {
		return p.Convert(ctx, sentence)
	})
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("jpreprocess: sentence %d: %w", i, err)
		}
	}
	return results, nil
}

// SplitSentences breaks text on Japanese sentence delimiters and
// newlines, discarding blank segments.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '。' || r == '！' || r == '？' || r == '\n' {
			if s := current.String(); strings.TrimSpace(s) != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := current.String(); strings.TrimSpace(s) != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func cacheKey(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
