package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"sentilex/internal/core/sentiment"
	perr "sentilex/internal/platform/errors"
	"sentilex/internal/platform/testkit"
	"sentilex/internal/services/api/analyze/domain"
	histdomain "sentilex/internal/services/api/history/domain"
)

type fakeRecorder struct {
	texts []string
	err   error
}

func (f *fakeRecorder) Record(_ context.Context, text string, res sentiment.Result) (histdomain.Record, error) {
	if f.err != nil {
		return histdomain.Record{}, f.err
	}
	f.texts = append(f.texts, text)
	return histdomain.Record{ID: "rec-1", Text: text, Result: res}, nil
}

func newScorer(t *testing.T) *sentiment.Scorer {
	t.Helper()
	lex, err := sentiment.NewLexicon([]string{"bom", "ótimo"}, []string{"péssimo", "erro"})
	if err != nil {
		t.Fatal(err)
	}
	sc, err := sentiment.New(sentiment.Config{Mode: sentiment.ModeLexiconOnly, Lexicon: lex})
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

func raw(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}

func TestAnalyze_ScoresAndRecords(t *testing.T) {
	rec := &fakeRecorder{}
	s := New(newScorer(t), rec, Options{})

	out, err := s.Analyze(context.Background(), domain.AnalyzeInput{Text: raw("o produto é bom e o atendimento foi ótimo")})
	if err != nil {
		t.Fatal(err)
	}
	if out.ID != "rec-1" {
		t.Fatalf("ID = %q", out.ID)
	}
	if out.Result.Sentiment != sentiment.Positive || out.Result.Score != 0.22 || out.Result.Confidence != 100 {
		t.Fatalf("result = %+v", out.Result)
	}
	if len(rec.texts) != 1 || rec.texts[0] != "o produto é bom e o atendimento foi ótimo" {
		t.Fatalf("recorded = %v", rec.texts)
	}
}

func TestAnalyze_RejectsBadText(t *testing.T) {
	s := New(newScorer(t), &fakeRecorder{}, Options{MaxText: 5})

	tests := []struct {
		name string
		text json.RawMessage
		want string
	}{
		{"number", raw(42), MsgTextRequired},
		{"object", raw(map[string]string{"a": "b"}), MsgTextRequired},
		{"null", json.RawMessage("null"), MsgTextRequired},
		{"empty string", raw(""), MsgTextRequired},
		{"too long", raw("ótimoo"), "Texto muito longo. Máximo 5 caracteres."},
	}
	for _, tc := range tests {
		_, err := s.Analyze(context.Background(), domain.AnalyzeInput{Text: tc.text})
		if perr.CodeOf(err) != perr.ErrorCodeValidation {
			t.Fatalf("%s: code = %v (%v)", tc.name, perr.CodeOf(err), err)
		}
		if w := perr.WireFrom(err); w.Message != tc.want || w.Field != "text" {
			t.Fatalf("%s: wire = %+v", tc.name, w)
		}
	}
}

func TestAnalyze_LimitCountsRunes(t *testing.T) {
	s := New(newScorer(t), &fakeRecorder{}, Options{MaxText: 5})
	// five runes, ten bytes
	if _, err := s.Analyze(context.Background(), domain.AnalyzeInput{Text: raw("ééééé")}); err != nil {
		t.Fatalf("unexpected %v", err)
	}
}

func TestAnalyze_Markdown(t *testing.T) {
	s := New(newScorer(t), &fakeRecorder{}, Options{})
	out, err := s.Analyze(context.Background(), domain.AnalyzeInput{
		Text:   raw("# Review\n\n**ótimo** produto, [link](http://example.com)"),
		Format: domain.FormatMarkdown,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, tok := range out.Result.Analysis.Tokens {
		if tok == "http" || tok == "example" {
			t.Fatalf("link target leaked into tokens %v", out.Result.Analysis.Tokens)
		}
	}
	if out.Result.PositiveWords != 1 {
		t.Fatalf("positive = %d", out.Result.PositiveWords)
	}
}

func TestAnalyze_RecorderFailure(t *testing.T) {
	s := New(newScorer(t), &fakeRecorder{err: perr.Unavailablef("valkey down")}, Options{})
	_, err := s.Analyze(context.Background(), domain.AnalyzeInput{Text: raw("bom")})
	if perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}
	if perr.WireFrom(err).Message != MsgInternal {
		t.Fatalf("message = %q", perr.WireFrom(err).Message)
	}
}

func TestBatch_MixedItems(t *testing.T) {
	rec := &fakeRecorder{}
	s := New(newScorer(t), rec, Options{MaxText: 100})

	long := strings.Repeat("a", 101)
	items, err := s.Batch(context.Background(), domain.BatchInput{
		Texts: raw([]any{"péssimo atendimento, erro no pedido", 7, long, ""}),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 4 {
		t.Fatalf("len = %d", len(items))
	}

	first := items[0]
	if first.Index != 0 || first.Result == nil || first.Error != "" {
		t.Fatalf("first = %+v", first)
	}
	if first.Result.Sentiment != sentiment.Negative || first.Result.Score != -0.4 {
		t.Fatalf("first result = %+v", *first.Result)
	}
	if first.Text != "péssimo atendimento, erro no pedido..." {
		t.Fatalf("preview = %q", first.Text)
	}

	if items[1].Index != 1 || items[1].Error != MsgTextNotStr || items[1].Result != nil {
		t.Fatalf("non-string item = %+v", items[1])
	}
	if items[2].Error != "Texto muito longo. Máximo 100 caracteres." {
		t.Fatalf("long item = %+v", items[2])
	}
	// empty strings are scored, like any other string
	if items[3].Result == nil || items[3].Result.WordCount != 0 || items[3].Text != "..." {
		t.Fatalf("empty item = %+v", items[3])
	}

	if len(rec.texts) != 0 {
		t.Fatal("batch must not record history")
	}
}

func TestBatch_PreviewIsFiftyRunes(t *testing.T) {
	s := New(newScorer(t), &fakeRecorder{}, Options{})
	items, err := s.Batch(context.Background(), domain.BatchInput{Texts: raw([]string{strings.Repeat("ç", 60)})})
	if err != nil {
		t.Fatal(err)
	}
	if items[0].Text != strings.Repeat("ç", 50)+"..." {
		t.Fatalf("preview = %q", items[0].Text)
	}
}

func TestBatch_Rejects(t *testing.T) {
	s := New(newScorer(t), &fakeRecorder{}, Options{MaxBatch: 2})

	_, err := s.Batch(context.Background(), domain.BatchInput{Texts: raw("bom")})
	if perr.WireFrom(err).Message != MsgTextsArray {
		t.Fatalf("not array: %v", err)
	}
	_, err = s.Batch(context.Background(), domain.BatchInput{Texts: json.RawMessage("null")})
	if perr.WireFrom(err).Message != MsgTextsArray {
		t.Fatalf("null: %v", err)
	}
	_, err = s.Batch(context.Background(), domain.BatchInput{Texts: raw([]string{"a", "b", "c"})})
	if perr.CodeOf(err) != perr.ErrorCodeValidation || perr.WireFrom(err).Message != "Máximo 2 textos por vez" {
		t.Fatalf("too many: %v", err)
	}

	items, err := s.Batch(context.Background(), domain.BatchInput{Texts: raw([]string{})})
	if err != nil || len(items) != 0 {
		t.Fatalf("empty batch = %v, %v", items, err)
	}
}

func TestNew_RequiresCollaborators(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil, &fakeRecorder{}, Options{}) })
	testkit.MustPanic(t, func() { New(newScorer(t), nil, Options{}) })
}
