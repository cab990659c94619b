package protparam

import (
	"math"
	"testing"
)

func TestResidueIndex(t *testing.T) {
	cases := []struct {
		in   rune
		want int
		ok   bool
	}{
		{'A', 0, true},
		{'Y', 19, true},
		{'k', 8, true},
		{'X', -1, false},
		{'*', -1, false},
		{'λ', -1, false},
	}
	for _, c := range cases {
		got, ok := ResidueIndex(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ResidueIndex(%q) = %d,%v; want %d,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestTablesCoverAlphabet(t *testing.T) {
	for i, r := range Alphabet {
		if residues[i].Code != byte(r) {
			t.Fatalf("residue %d is %c, want %c", i, residues[i].Code, r)
		}
		if avgResidueMass[i] <= 0 || monoResidueMass[i] <= 0 {
			t.Errorf("%c: residue mass must be positive", r)
		}
		if ResidueName(r) == "" {
			t.Errorf("%c: missing name", r)
		}
	}
	rows, cols := instabilityMatrix.Dims()
	if rows != NumResidues || cols != NumResidues {
		t.Fatalf("instability matrix is %dx%d", rows, cols)
	}
}

func TestDipeptideWeight(t *testing.T) {
	cases := []struct {
		a, b rune
		want float64
	}{
		{'A', 'C', 44.94},
		{'C', 'A', 1.0},
		{'K', 'L', -7.49},
		{'L', 'W', 24.68},
		{'R', 'R', 58.28},
		{'Y', 'R', -15.91},
		{'A', 'X', 0},
		{'X', 'A', 0},
	}
	for _, c := range cases {
		if got := DipeptideWeight(c.a, c.b); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("DipeptideWeight(%c,%c) = %v; want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestHydropathyOf(t *testing.T) {
	if v, ok := HydropathyOf('I'); !ok || v != 4.5 {
		t.Errorf("I: got %v,%v", v, ok)
	}
	if _, ok := HydropathyOf('B'); ok {
		t.Error("B should not have a hydropathy value")
	}
}
