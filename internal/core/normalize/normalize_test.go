package normalize

import (
	"testing"
)

// Test table covers each stage and combined pipelines.
func TestNormalize_Table(t *testing.T) {
	n := New()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "identity ascii",
			in:   "o produto chegou",
			out:  "o produto chegou",
		},
		{
			name: "empty",
			in:   "",
			out:  "",
		},
		{
			name: "only punctuation",
			in:   "!!! ... ???",
			out:  "",
		},
		{
			name: "utf8 repair drops invalid bytes",
			in:   string([]byte{0xff, 'b', 'o', 'm', 0x80, ' ', 'd', 'i', 'a'}),
			out:  "bom dia",
		},
		{
			name: "lower case keeps accents",
			in:   "ÓTIMO Serviço",
			out:  "ótimo serviço",
		},
		{
			name: "decomposed accent composes",
			in:   "pe\u0301ssimo", // "péssimo" using combining acute accent
			out:  "péssimo",
		},
		{
			name: "punctuation becomes space",
			in:   "péssimo atendimento, erro no pedido",
			out:  "péssimo atendimento erro no pedido",
		},
		{
			name: "apostrophes and hyphens split",
			in:   "d'água bem-vindo",
			out:  "d água bem vindo",
		},
		{
			name: "emoji and symbols dropped",
			in:   "amei 😍 3×2 ÷",
			out:  "amei 3 2",
		},
		{
			name: "underscore and digits kept",
			in:   "nota_10 de 10",
			out:  "nota_10 de 10",
		},
		{
			name: "collapse whitespace",
			in:   "  a\t\tb\nc   d \r\n ",
			out:  "a b c d",
		},
		{
			name: "non latin letters dropped",
			in:   "bom Привет",
			out:  "bom",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.in)
			if got != tc.out {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.out)
			}
			// Idempotence check: normalize again should be identical
			got2 := n.Normalize(got)
			if got2 != got {
				t.Fatalf("Normalize not idempotent: %q -> %q", got, got2)
			}
		})
	}
}

// Accented lexicon words must come out of the normalizer unchanged,
// otherwise they can never match the lexicon.
func TestNormalize_PreservesPortugueseAccents(t *testing.T) {
	for _, w := range []string{"péssimo", "ótimo", "não", "serviço", "incrível", "horrível", "fantástico", "útil", "preço"} {
		if got := String(w); got != w {
			t.Fatalf("String(%q) = %q, want unchanged", w, got)
		}
	}
}

func TestKeep(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', true},
		{'Z', true},
		{'7', true},
		{'_', true},
		{'-', false},
		{'\'', false},
		{' ', false},
		{'À', true},
		{'ç', true},
		{'ſ', true},
		{'×', false},
		{'÷', false},
		{'Ā', true},
		{'ƀ', false},
		{'ж', false},
	}
	for _, tc := range tests {
		if got := Keep(tc.r); got != tc.want {
			t.Fatalf("Keep(%q) = %v, want %v", tc.r, got, tc.want)
		}
	}
}
