package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"io"
	"os"
	"strings"

	"sentilex/internal/core/lexicon"
	"sentilex/internal/core/sentiment"
	"sentilex/internal/platform/logger"
)

type line struct {
	Text   string           `json:"text"`
	Result sentiment.Result `json:"result"`
}

func main() {
	var (
		fText     = flag.String("text", "", "text to score; stdin lines are scored when empty")
		fMode     = flag.String("mode", string(sentiment.ModeBlended), "scoring mode: blended | lexicon-only")
		fNegation = flag.Bool("negation", true, "let the polarity scorer flip after negators")
		fLexicon  = flag.String("lexicon", "", "lexicon.json override (embedded pack when empty)")
	)
	flag.Parse()

	l := logger.Named("score")

	mode, err := sentiment.ParseMode(*fMode)
	if err != nil {
		l.Fatal().Err(err).Msg("bad -mode")
	}

	var pack *lexicon.Pack
	if *fLexicon != "" {
		pack, err = lexicon.LoadFile(*fLexicon)
	} else {
		pack, err = lexicon.Load()
	}
	if err != nil {
		l.Fatal().Err(err).Msg("lexicon load failed")
	}

	scorer, err := pack.NewScorer(lexicon.ScorerOptions{Mode: mode, Negation: *fNegation, Logger: l})
	if err != nil {
		l.Fatal().Err(err).Msg("scorer setup failed")
	}

	enc := json.NewEncoder(os.Stdout)
	if *fText != "" {
		if err := enc.Encode(line{Text: *fText, Result: scorer.Analyze(*fText)}); err != nil {
			l.Fatal().Err(err).Msg("write failed")
		}
		return
	}

	n, err := scoreLines(os.Stdin, enc, scorer)
	if err != nil {
		l.Fatal().Err(err).Int("scored", n).Msg("scoring stdin failed")
	}
	l.Debug().Int("scored", n).Msg("done")
}

// scoreLines scores each non-blank line of r and encodes one JSON object per line
func scoreLines(r io.Reader, enc *json.Encoder, s *sentiment.Scorer) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	n := 0
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if err := enc.Encode(line{Text: text, Result: s.Analyze(text)}); err != nil {
			return n, err
		}
		n++
	}
	return n, sc.Err()
}
