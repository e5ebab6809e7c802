// Package lexicon loads the Portuguese word lists and the Portuguese to English gloss
// from the embedded lexicon.json, or from an override file with the same layout
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"sentilex/internal/core/normalize"
	"sentilex/internal/core/sentiment"
)

//go:embed lexicon.json
var embedded []byte

type rawPack struct {
	Version  int               `json:"version"`
	Meta     map[string]any    `json:"meta"`
	Positive []string          `json:"positive"`
	Negative []string          `json:"negative"`
	Gloss    map[string]string `json:"gloss"`
}

// Pack is a parsed and normalized lexicon pack
type Pack struct {
	Version  int
	Meta     map[string]any
	Positive []string // normalized, deduplicated, input order
	Negative []string
	Gloss    sentiment.Gloss
}

// Load returns the pack from the embedded lexicon.json
func Load() (*Pack, error) {
	return Parse(embedded)
}

// LoadFile reads and parses a pack from path
func LoadFile(path string) (*Pack, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes a pack and normalizes every entry with the scorer's normalizer,
// so lists written with capitals or decomposed accents still match input tokens
func Parse(b []byte) (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(b, &rp); err != nil {
		return nil, fmt.Errorf("lexicon: parse: %w", err)
	}

	pos, err := words("positive", rp.Positive)
	if err != nil {
		return nil, err
	}
	neg, err := words("negative", rp.Negative)
	if err != nil {
		return nil, err
	}

	gloss := make(sentiment.Gloss, len(rp.Gloss))
	for k, v := range rp.Gloss {
		nk := normalize.String(k)
		if nk == "" {
			return nil, fmt.Errorf("lexicon: gloss key %q normalizes to empty", k)
		}
		gloss[nk] = v
	}

	p := &Pack{
		Version:  rp.Version,
		Meta:     rp.Meta,
		Positive: pos,
		Negative: neg,
		Gloss:    gloss,
	}
	// fail at load rather than at first request
	if _, err := p.Lexicon(); err != nil {
		return nil, err
	}
	return p, nil
}

func words(kind string, in []string) ([]string, error) {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for i, w := range in {
		nw := normalize.String(w)
		if nw == "" {
			return nil, fmt.Errorf("lexicon: %s entry %d (%q) normalizes to empty", kind, i, w)
		}
		if _, dup := seen[nw]; dup {
			continue
		}
		seen[nw] = struct{}{}
		out = append(out, nw)
	}
	return out, nil
}

// Lexicon builds the scorer lexicon, failing when the sets intersect
func (p *Pack) Lexicon() (*sentiment.Lexicon, error) {
	return sentiment.NewLexicon(p.Positive, p.Negative)
}

// GlossTargets returns the distinct English glosses, sorted
func (p *Pack) GlossTargets() []string {
	seen := make(map[string]struct{}, len(p.Gloss))
	out := make([]string, 0, len(p.Gloss))
	for _, v := range p.Gloss {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
