package lz78

// Phrase is one dictionary entry, stored as a back-reference plus its last symbol.
type Phrase struct {
	Ref    int  // 0 = no prefix; k = dictionary entry k-1
	Symbol byte // Last symbol; unused when Repeat is set.
	Repeat bool // Final phrase repeating entry Ref-1 verbatim (input ended mid-match).
	Len    int  // Phrase length in symbols.
}

// Dictionary is the ordered phrase list and alphabet built from one input.
type Dictionary struct {
	Phrases  []Phrase
	Alphabet *Alphabet
}

// trieEdge keys the implicit trie: the phrase at position parent extended by sym.
// parent -1 is the empty accumulator.
type trieEdge struct {
	parent int32
	sym    byte
}

// Tokenize scans text once and returns its LZ78 phrases and alphabet.
// All phrases are distinct and prefix-closed except a final Repeat phrase,
// which is emitted when the input ends inside an already known phrase.
func Tokenize(text []byte) *Dictionary {
	d := &Dictionary{Alphabet: newAlphabet()}
	trie := make(map[trieEdge]int32)
	node := int32(-1) // position of the phrase equal to the accumulator
	accLen := 0

	for _, c := range text {
		d.Alphabet.add(c)

		key := trieEdge{parent: node, sym: c}
		if next, ok := trie[key]; ok {
			node = next
			accLen++
			continue
		}

		trie[key] = int32(len(d.Phrases)) // #nosec G115 -- phrase count is bounded by input length
		d.Phrases = append(d.Phrases, Phrase{Ref: int(node) + 1, Symbol: c, Len: accLen + 1})
		node = -1
		accLen = 0
	}

	if node >= 0 {
		last := d.Phrases[node]
		d.Phrases = append(d.Phrases, Phrase{Ref: int(node) + 1, Symbol: last.Symbol, Repeat: true, Len: accLen})
	}

	return d
}

// Len returns the number of phrases.
func (d *Dictionary) Len() int { return len(d.Phrases) }

// Phrase returns the text of phrase i.
func (d *Dictionary) Phrase(i int) []byte {
	p := d.Phrases[i]
	if p.Repeat {
		return d.Phrase(p.Ref - 1)
	}

	out := make([]byte, p.Len)
	for pos := p.Len - 1; pos >= 0; pos-- {
		out[pos] = p.Symbol
		if p.Ref == 0 {
			break
		}
		p = d.Phrases[p.Ref-1]
	}

	return out
}

// Strings returns every phrase as a string, in dictionary order.
func (d *Dictionary) Strings() []string {
	out := make([]string, len(d.Phrases))
	for i := range d.Phrases {
		out[i] = string(d.Phrase(i))
	}

	return out
}
