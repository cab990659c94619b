package protparam

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MolecularWeight returns the average mass (Da) of the chain: the sum of
// residue masses plus one water. Unrecognized symbols add nothing.
func MolecularWeight(c Composition) float64 {
	return floats.Dot(c.vector(), avgResidueMass) + WaterMass
}

// MonoisotopicWeight is MolecularWeight using monoisotopic masses.
func MonoisotopicWeight(c Composition) float64 {
	return floats.Dot(c.vector(), monoResidueMass) + WaterMassMonoisotopic
}

// Aromaticity is the fraction of F, W and Y among recognized residues.
func Aromaticity(c Composition) float64 {
	aromatic := c.Of('F') + c.Of('W') + c.Of('Y')
	return ratio(float64(aromatic), c.Recognized())
}

// Gravy is the grand average of hydropathicity (Kyte-Doolittle) over the
// recognized residues.
func Gravy(c Composition) float64 {
	return ratio(floats.Dot(c.vector(), hydropathy), c.Recognized())
}

// InstabilityIndex sums the dipeptide instability weights of every adjacent
// pair and scales by 10/recognized length. Pairs touching an unrecognized
// symbol score 0. Fewer than two recognized residues give 0.
func InstabilityIndex(seq Sequence) float64 {
	var (
		sum        float64
		recognized int
		prev       = -1
	)
	for _, r := range seq.Residues {
		idx, ok := ResidueIndex(r)
		if !ok {
			prev = -1
			continue
		}
		recognized++
		if prev >= 0 {
			sum += instabilityMatrix.At(prev, idx)
		}
		prev = idx
	}
	if recognized < 2 {
		return 0
	}
	return ratio(sum*10, recognized)
}

// StructureFractions are independent propensity scores in [0,1]. They are
// not a partition and need not sum to 1.
type StructureFractions struct {
	Helix float64
	Turn  float64
	Sheet float64
}

// SecondaryStructure averages the per-residue helix, turn and sheet weights
// over the recognized residues.
func SecondaryStructure(c Composition) StructureFractions {
	v := c.vector()
	n := c.Recognized()
	return StructureFractions{
		Helix: clamp01(ratio(floats.Dot(v, helixWeight), n)),
		Turn:  clamp01(ratio(floats.Dot(v, turnWeight), n)),
		Sheet: clamp01(ratio(floats.Dot(v, sheetWeight), n)),
	}
}

// ratio divides num by den, returning 0 for an empty denominator or any
// non-finite result.
func ratio(num float64, den int) float64 {
	if den <= 0 {
		return 0
	}
	return finite(num / float64(den))
}

func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
