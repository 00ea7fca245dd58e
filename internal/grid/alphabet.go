package grid

import (
	"fmt"
	"strings"
)

// DotSeparator marks the right-hand (dotted) label family. It is never an
// alphabet symbol.
const DotSeparator = '.'

// DefaultSymbols is the stock label alphabet: lowercase letters then digits.
const DefaultSymbols = "abcdefghijklmnopqrstuvwxyz0123456789"

// MinPoolSize is the smallest usable pool (a..f with the default alphabet).
const MinPoolSize = 6

// Alphabet is an ordered set of distinct label symbols.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet validates symbols and builds the lookup table.
func NewAlphabet(symbols string) (Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) == 0 {
		return Alphabet{}, fmt.Errorf("alphabet must not be empty")
	}
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if r == DotSeparator {
			return Alphabet{}, fmt.Errorf("alphabet must not contain %q", DotSeparator)
		}
		if _, dup := index[r]; dup {
			return Alphabet{}, fmt.Errorf("alphabet symbol %q repeated", r)
		}
		index[r] = i
	}
	return Alphabet{symbols: runes, index: index}, nil
}

// DefaultAlphabet returns the stock 36-symbol alphabet.
func DefaultAlphabet() Alphabet {
	a, err := NewAlphabet(DefaultSymbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Len reports the number of symbols.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// Symbol returns the symbol at position i.
func (a Alphabet) Symbol(i int) rune {
	return a.symbols[i]
}

// Index returns the position of r, or -1 when r is not a symbol.
func (a Alphabet) Index(r rune) int {
	if i, ok := a.index[r]; ok {
		return i
	}
	return -1
}

// Contains reports whether r is one of the symbols.
func (a Alphabet) Contains(r rune) bool {
	return a.Index(r) >= 0
}

// String returns the symbols in order.
func (a Alphabet) String() string {
	return string(a.symbols)
}

// Prefix returns the first n symbols as a string.
func (a Alphabet) Prefix(n int) string {
	if n > len(a.symbols) {
		n = len(a.symbols)
	}
	if n < 0 {
		n = 0
	}
	var b strings.Builder
	for _, r := range a.symbols[:n] {
		b.WriteRune(r)
	}
	return b.String()
}

// ClampPoolSize forces n into [MinPoolSize, a.Len()]. Alphabets shorter than
// MinPoolSize clamp to their own length.
func ClampPoolSize(n int, a Alphabet) int {
	upper := a.Len()
	if upper < 1 {
		return 1
	}
	lower := MinPoolSize
	if lower > upper {
		lower = upper
	}
	if n < lower {
		return lower
	}
	if n > upper {
		return upper
	}
	return n
}
