package protparam

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrEmptySequence is returned for a sequence with no residues at all. It is
// the only condition that fails a record.
var ErrEmptySequence = errors.New("empty sequence")

// Sequence is one peptide to analyse, keyed by ID.
type Sequence struct {
	ID       string
	Residues string
}

// Composition holds residue counts for one sequence. Counts are indexed in
// Alphabet order. Symbols outside the alphabet (X, B, Z, U, '*', ...) are
// tallied in Unrecognized and Unknown but still count toward Length.
type Composition struct {
	Counts       [NumResidues]int
	Unrecognized int
	Unknown      map[rune]int
	Length       int
}

// Count tallies the residues of seq in a single pass.
func Count(seq Sequence) (Composition, error) {
	var c Composition
	if len(seq.Residues) == 0 {
		return c, fmt.Errorf("sequence %q: %w", seq.ID, ErrEmptySequence)
	}

	for _, r := range seq.Residues {
		c.Length++
		if idx, ok := ResidueIndex(r); ok {
			c.Counts[idx]++
			continue
		}
		c.Unrecognized++
		if c.Unknown == nil {
			c.Unknown = make(map[rune]int)
		}
		c.Unknown[unicode.ToUpper(r)]++
	}
	return c, nil
}

// Recognized is the number of residues in the standard alphabet.
func (c Composition) Recognized() int {
	return c.Length - c.Unrecognized
}

// Of returns the count of symbol r (case-insensitive). Symbols outside the
// alphabet report their Unknown tally.
func (c Composition) Of(r rune) int {
	idx, ok := ResidueIndex(r)
	if !ok {
		return c.Unknown[unicode.ToUpper(r)]
	}
	return c.Counts[idx]
}

// vector returns the counts as float64 for use with the table columns.
func (c Composition) vector() []float64 {
	v := make([]float64, NumResidues)
	for i, n := range c.Counts {
		v[i] = float64(n)
	}
	return v
}
