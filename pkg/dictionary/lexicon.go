// Package dictionary loads the collaborator data the core NJD pipeline
// treats as black boxes (SPEC_FULL §6 "Dictionary loading"): a
// NAIST-JDIC-style CSV lexicon and a JSON reading-exception table. It
// never defines or versions a dictionary binary format — spec.md §1
// scopes that out — it only parses a plain CSV/JSON source into the
// in-memory tables pkg/tokenizer and pkg/njdset consume.
package dictionary

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/jpreprocess-go/jpreprocess/pkg/tokenizer"
)

// Entry is one parsed lexicon row: a surface plus the 13-field row
// pkg/njd.NewNodesFromRow expects (pos1..4,ctype,cform,orig, two
// uninterpreted fields, read,pron,acc/mora,chain_rule — spec §3/§4.1).
type Entry struct {
	Surface string
	Fields  [13]string
}

// RawToken renders this entry as a tokenizer.RawToken, so a Lexicon can
// stand in for pkg/tokenizer's dictionary-driven user-word lookups.
func (e Entry) RawToken() tokenizer.RawToken {
	return tokenizer.RawToken{Surface: e.Surface, Details: e.Fields}
}

// Lexicon is an in-memory, surface-indexed view of a loaded CSV lexicon,
// grounded on pkg/dictionary's original JMdict Importer index+mutex
// shape (index map[string][]Entry guarded for concurrent reads), here
// repurposed from "definition lookup" to "dictionary row lookup".
type Lexicon struct {
	mu    sync.RWMutex
	index map[string][]Entry
}

// NewLexicon builds a Lexicon from already-parsed entries.
func NewLexicon(entries []Entry) *Lexicon {
	idx := make(map[string][]Entry, len(entries))
	for _, e := range entries {
		idx[e.Surface] = append(idx[e.Surface], e)
	}
	return &Lexicon{index: idx}
}

// Lookup returns every entry for a surface, sorted by orig (field 7,
// the base form) for deterministic output when a surface is ambiguous.
func (l *Lexicon) Lookup(surface string) []Entry {
	l.mu.RLock()
	entries := l.index[surface]
	l.mu.RUnlock()
	if len(entries) == 0 {
		return nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Fields[6] < out[j].Fields[6] })
	return out
}

// LoadLexiconCSV parses a NAIST-JDIC-style CSV file: each row is
// surface followed by the 13 dictionary fields (14 columns total).
func LoadLexiconCSV(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseLexiconCSV(f)
}

func parseLexiconCSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 14
	var entries []Entry
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dictionary: parse lexicon row: %w", err)
		}
		var e Entry
		e.Surface = record[0]
		copy(e.Fields[:], record[1:])
		entries = append(entries, e)
	}
	return entries, nil
}
