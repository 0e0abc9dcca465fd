package lz78

import (
	"bytes"
	"math/rand"
	"slices"
	"testing"
)

const (
	abba        = "AABABBBABAABABBBABBABB"
	abbaNewline = abba + "\n"
)

func TestTokenizeABBA(t *testing.T) {
	d := Tokenize([]byte(abba))
	want := []string{"A", "AB", "ABB", "B", "ABA", "ABAB", "BB", "ABBA", "BB"}
	if got := d.Strings(); !slices.Equal(got, want) {
		t.Fatalf("phrases = %q, want %q", got, want)
	}
	if got := d.Alphabet.Symbols(); !bytes.Equal(got, []byte("AB")) {
		t.Fatalf("alphabet = %q", got)
	}

	last := d.Phrases[d.Len()-1]
	if !last.Repeat || last.Ref != 7 {
		t.Fatalf("last phrase = %+v, want repeat of entry 6", last)
	}
}

func TestTokenizeABBANewline(t *testing.T) {
	d := Tokenize([]byte(abbaNewline))
	want := []string{"A", "AB", "ABB", "B", "ABA", "ABAB", "BB", "ABBA", "BB\n"}
	if got := d.Strings(); !slices.Equal(got, want) {
		t.Fatalf("phrases = %q, want %q", got, want)
	}
	if got := d.Alphabet.Symbols(); !bytes.Equal(got, []byte("AB\n")) {
		t.Fatalf("alphabet = %q", got)
	}
	if d.Phrases[d.Len()-1].Repeat {
		t.Fatal("last phrase should not be a repeat")
	}
}

func TestTokenizeEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		phrases  []string
		alphabet string
	}{
		{"empty", "", []string{}, ""},
		{"single", "x", []string{"x"}, "x"},
		{"pair repeat", "AA", []string{"A", "A"}, "A"},
		{"repeated char", "aaaaaaaaaa", []string{"a", "aa", "aaa", "aaaa"}, "a"},
		{"repeated char tail", "aaaaaaaa", []string{"a", "aa", "aaa", "aa"}, "a"},
		{"no repeats", "abcd", []string{"a", "b", "c", "d"}, "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Tokenize([]byte(tt.in))
			if got := d.Strings(); !slices.Equal(got, tt.phrases) {
				t.Fatalf("phrases = %q, want %q", got, tt.phrases)
			}
			if got := string(d.Alphabet.Symbols()); got != tt.alphabet {
				t.Fatalf("alphabet = %q, want %q", got, tt.alphabet)
			}
		})
	}
}

func TestTokenizePrefixClosure(t *testing.T) {
	rng := rand.New(rand.NewSource(7<<32 | 78))
	for round := 0; round < 50; round++ {
		in := make([]byte, rng.Intn(2000))
		for i := range in {
			in[i] = "abc\n "[rng.Intn(5)]
		}

		d := Tokenize(in)
		var joined []byte
		for i, p := range d.Phrases {
			text := d.Phrase(i)
			joined = append(joined, text...)
			if len(text) != p.Len {
				t.Fatalf("round %d phrase %d: len %d, Len %d", round, i, len(text), p.Len)
			}
			if p.Repeat {
				if i != d.Len()-1 {
					t.Fatalf("round %d: repeat phrase at %d of %d", round, i, d.Len())
				}
				continue
			}
			if p.Len > 1 {
				if p.Ref-1 >= i {
					t.Fatalf("round %d phrase %d: prefix %d is not earlier", round, i, p.Ref-1)
				}
				if !bytes.Equal(d.Phrase(p.Ref-1), text[:len(text)-1]) {
					t.Fatalf("round %d phrase %d: prefix mismatch", round, i)
				}
			}
		}

		if !bytes.Equal(joined, in) {
			t.Fatalf("round %d: phrases do not concatenate to the input", round)
		}

		seen := map[byte]bool{}
		var order []byte
		for _, c := range in {
			if !seen[c] {
				seen[c] = true
				order = append(order, c)
			}
		}
		if !bytes.Equal(d.Alphabet.Symbols(), order) {
			t.Fatalf("round %d: alphabet %q, want %q", round, d.Alphabet.Symbols(), order)
		}
	}
}
