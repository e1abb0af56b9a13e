package wordtoy

import (
	"fmt"
	"strings"
)

// Word is a packed toy display: letter i (0 = leftmost) occupies bits
// [i·LetterBits, (i+1)·LetterBits) and holds a value in [0, Alphabet).
// Every valid Word is below StateSpace.
type Word uint32

// root marks the start word in a predecessor map. It lies outside the packed key space.
const root Word = StateSpace

// Pack encodes a 4-letter lowercase word.
// Returns ErrWordLength or ErrWordLetter for anything else.
func Pack(s string) (Word, error) {
	if len(s) != Letters {
		return 0, fmt.Errorf("%w: %q", ErrWordLength, s)
	}
	var letters [Letters]byte
	for i := 0; i < Letters; i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return 0, fmt.Errorf("%w: %q at %d", ErrWordLetter, c, i)
		}
		letters[i] = c - 'a'
	}

	return PackLetters(letters), nil
}

// MustPack is like Pack but panics on malformed input. Intended for literals.
func MustPack(s string) Word {
	w, err := Pack(s)
	if err != nil {
		panic(err)
	}

	return w
}

// PackLetters encodes letter values (0 for 'a' … 25 for 'z').
// Values must be below Alphabet; larger values are a caller error.
func PackLetters(letters [Letters]byte) Word {
	var w Word
	for i := Letters - 1; i >= 0; i-- {
		w = w<<LetterBits | Word(letters[i])
	}

	return w
}

// Letter returns the value (0..25) at position i.
func (w Word) Letter(i int) byte {
	return byte(w >> (uint(i) * LetterBits) & letterMask)
}

// Letters decodes w into its letter values.
func (w Word) Letters() [Letters]byte {
	var out [Letters]byte
	for i := range out {
		out[i] = w.Letter(i)
	}

	return out
}

// String renders w as lowercase letters, e.g. "aaaa".
func (w Word) String() string {
	var b strings.Builder
	b.Grow(Letters)
	for i := 0; i < Letters; i++ {
		b.WriteByte('a' + w.Letter(i))
	}

	return b.String()
}

// Neighbors returns the words one click away: for each position, the previous
// letter then the next letter, wrapping around the alphabet.
func (w Word) Neighbors() [2 * Letters]Word {
	var out [2 * Letters]Word
	for i := 0; i < Letters; i++ {
		shift := uint(i) * LetterBits
		mask := Word(letterMask) << shift
		digit := (w & mask) >> shift
		rest := w &^ mask
		down := (digit + Alphabet - 1) % Alphabet
		up := (digit + 1) % Alphabet
		out[2*i] = rest | down<<shift
		out[2*i+1] = rest | up<<shift
	}

	return out
}

// Distance is the click count between w and other when nothing is forbidden:
// the sum of per-position circular distances. It is a lower bound otherwise.
func (w Word) Distance(other Word) int {
	total := 0
	for i := 0; i < Letters; i++ {
		d := int(w.Letter(i)) - int(other.Letter(i))
		if d < 0 {
			d = -d
		}
		if Alphabet-d < d {
			d = Alphabet - d
		}
		total += d
	}

	return total
}
