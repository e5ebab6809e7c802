package polarity

import (
	"errors"
	"math"
	"testing"
)

func stems(s *Scorer, words ...string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = s.Stem(w)
	}
	return out
}

func TestScore_Signs(t *testing.T) {
	s := New(Options{})

	tests := []struct {
		words []string
		sign  int
	}{
		{[]string{"good"}, 1},
		{[]string{"great", "service"}, 1},
		{[]string{"terrible"}, -1},
		{[]string{"hate", "this", "product"}, -1},
		{[]string{"product", "delivery"}, 0},
	}
	for _, tc := range tests {
		got, err := s.Score(stems(s, tc.words...))
		if err != nil {
			t.Fatalf("Score(%q) err = %v", tc.words, err)
		}
		switch {
		case tc.sign > 0 && got <= 0, tc.sign < 0 && got >= 0, tc.sign == 0 && got != 0:
			t.Fatalf("Score(%q) = %v, want sign %d", tc.words, got, tc.sign)
		}
		if got < -1 || got > 1 {
			t.Fatalf("Score(%q) = %v out of range", tc.words, got)
		}
	}
}

func TestScore_AveragesOverAllStems(t *testing.T) {
	s := New(Options{})
	one, _ := s.Score(stems(s, "good"))
	two, _ := s.Score(stems(s, "good", "product"))
	if math.Abs(two-one/2) > 1e-12 {
		t.Fatalf("Score(good product) = %v, want %v", two, one/2)
	}
}

func TestScore_Empty(t *testing.T) {
	s := New(Options{})
	if _, err := s.Score(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Score(nil) err = %v, want ErrEmpty", err)
	}
}

func TestScore_Negation(t *testing.T) {
	plain := New(Options{})
	neg := New(Options{Negation: true})

	p, _ := plain.Score(stems(plain, "not", "good"))
	n, _ := neg.Score(stems(neg, "not", "good"))
	if p <= 0 {
		t.Fatalf("without negation Score(not good) = %v, want > 0", p)
	}
	if n >= 0 {
		t.Fatalf("with negation Score(not good) = %v, want < 0", n)
	}

	bad, _ := neg.Valence(neg.Stem("bad"))
	good, _ := neg.Valence(neg.Stem("good"))
	tests := []struct {
		words []string
		want  float64
	}{
		// an unvalued stem between negator and word absorbs the flip
		{[]string{"never", "product", "bad", "good"}, (bad + good) / 4},
		{[]string{"never", "bad", "good"}, (-bad + good) / 3},
		{[]string{"not", "not", "good"}, good / 3},
		{[]string{"not", "never", "no", "bad"}, -bad / 4},
	}
	for _, tc := range tests {
		got, _ := neg.Score(stems(neg, tc.words...))
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("Score(%v) = %v, want %v", tc.words, got, tc.want)
		}
	}
}

func TestNew_VocabularyAndStems(t *testing.T) {
	s := New(Options{Vocabulary: []string{"marvellous", "thank you"}})
	if s.Size() == 0 {
		t.Fatal("Size() = 0")
	}
	if _, ok := s.Valence(s.Stem("loved")); !ok {
		t.Fatal("stem of loved has no valence")
	}
	if s.Stem("loved") != s.Stem("love") {
		t.Fatalf("Stem(loved) = %q, Stem(love) = %q", s.Stem("loved"), s.Stem("love"))
	}
	if got := s.Stem(""); got != "" {
		t.Fatalf("Stem(\"\") = %q", got)
	}
}
