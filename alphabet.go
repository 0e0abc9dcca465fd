package lz78

import "fmt"

// Alphabet is the symbol table: distinct symbols in order of first appearance,
// each coded by its position in Width() bits.
type Alphabet struct {
	symbols []byte
	index   [MaxAlphabet]int16 // symbol -> position, -1 when absent
}

// NewAlphabet builds an alphabet from symbols in the given order.
// Repeated symbols are rejected, they would make codes ambiguous.
func NewAlphabet(symbols []byte) (*Alphabet, error) {
	a := newAlphabet()
	for _, s := range symbols {
		if a.index[s] >= 0 {
			return nil, fmt.Errorf("%w: symbol 0x%02x listed twice", ErrInvalidContainer, s)
		}
		a.add(s)
	}

	return a, nil
}

func newAlphabet() *Alphabet {
	a := &Alphabet{}
	for i := range a.index {
		a.index[i] = -1
	}

	return a
}

// add records s if it has not been seen yet.
func (a *Alphabet) add(s byte) {
	if a.index[s] >= 0 {
		return
	}
	a.index[s] = int16(len(a.symbols)) // #nosec G115 -- at most 256 entries
	a.symbols = append(a.symbols, s)
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Width returns the fixed symbol code width in bits.
func (a *Alphabet) Width() int { return SymbolWidth(len(a.symbols)) }

// Symbols returns a copy of the symbols in first-appearance order.
func (a *Alphabet) Symbols() []byte {
	return append([]byte(nil), a.symbols...)
}

// Index returns the code of s.
func (a *Alphabet) Index(s byte) (int, bool) {
	i := a.index[s]
	return int(i), i >= 0
}

// Symbol returns the symbol coded by i.
func (a *Alphabet) Symbol(i int) (byte, bool) {
	if i < 0 || i >= len(a.symbols) {
		return 0, false
	}

	return a.symbols[i], true
}
