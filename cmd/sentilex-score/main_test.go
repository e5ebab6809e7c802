package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"sentilex/internal/core/lexicon"
	"sentilex/internal/core/sentiment"
)

func TestScoreLines_SkipsBlankAndEncodesEach(t *testing.T) {
	pack, err := lexicon.Load()
	if err != nil {
		t.Fatal(err)
	}
	s, err := pack.NewScorer(lexicon.ScorerOptions{Mode: sentiment.ModeLexiconOnly})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	n, err := scoreLines(strings.NewReader("bom\n\n   \nruim\n"), json.NewEncoder(&out), s)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("scored = %d, want 2", n)
	}

	dec := json.NewDecoder(&out)
	var got []line
	for dec.More() {
		var l line
		if err := dec.Decode(&l); err != nil {
			t.Fatal(err)
		}
		got = append(got, l)
	}
	if len(got) != 2 || got[0].Result.Sentiment != sentiment.Positive || got[1].Result.Sentiment != sentiment.Negative {
		t.Fatalf("lines = %+v", got)
	}
}
