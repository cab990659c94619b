package protparam

import (
	"gonum.org/v1/gonum/mat"
)

// Alphabet is the standard 20 letter amino acid alphabet. Residue tables and
// composition vectors are indexed in this order.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

// NumResidues is the size of the standard alphabet.
const NumResidues = len(Alphabet)

// Water masses (Da) added once per chain.
const (
	WaterMass             = 18.0153
	WaterMassMonoisotopic = 18.010565
)

// Terminal group pKa values.
const (
	PKaNTerminus = 9.69
	PKaCTerminus = 2.34
)

type residue struct {
	Code       byte
	Name       string
	AvgMass    float64 // free amino acid, average isotopes
	MonoMass   float64 // free amino acid, monoisotopic
	Hydropathy float64 // Kyte-Doolittle
	Helix      float64
	Turn       float64
	Sheet      float64
}

// Free amino acid masses follow the IUPAC protein weight tables. Structure
// weights mark membership of the helix (VIYFWL), turn (NPGS) and sheet (EMAL)
// former sets.
var residues = [NumResidues]residue{
	{'A', "Alanine", 89.0932, 89.047678, 1.8, 0, 0, 1},
	{'C', "Cysteine", 121.1582, 121.019749, 2.5, 0, 0, 0},
	{'D', "Aspartic acid", 133.1027, 133.037508, -3.5, 0, 0, 0},
	{'E', "Glutamic acid", 147.1293, 147.053158, -3.5, 0, 0, 1},
	{'F', "Phenylalanine", 165.1891, 165.078979, 2.8, 1, 0, 0},
	{'G', "Glycine", 75.0666, 75.032028, -0.4, 0, 1, 0},
	{'H', "Histidine", 155.1546, 155.069477, -3.2, 0, 0, 0},
	{'I', "Isoleucine", 131.1729, 131.094629, 4.5, 1, 0, 0},
	{'K', "Lysine", 146.1876, 146.105528, -3.9, 0, 0, 0},
	{'L', "Leucine", 131.1729, 131.094629, 3.8, 1, 0, 1},
	{'M', "Methionine", 149.2113, 149.051049, 1.9, 0, 0, 1},
	{'N', "Asparagine", 132.1179, 132.053492, -3.5, 0, 1, 0},
	{'P', "Proline", 115.1305, 115.063329, -1.6, 0, 1, 0},
	{'Q', "Glutamine", 146.1445, 146.069142, -3.5, 0, 0, 0},
	{'R', "Arginine", 174.2010, 174.111676, -4.5, 0, 0, 0},
	{'S', "Serine", 105.0926, 105.042593, -0.8, 0, 1, 0},
	{'T', "Threonine", 119.1192, 119.058243, -0.7, 0, 0, 0},
	{'V', "Valine", 117.1463, 117.078979, 4.2, 1, 0, 0},
	{'W', "Tryptophan", 204.2252, 204.089878, -0.9, 1, 0, 0},
	{'Y', "Tyrosine", 181.1885, 181.073893, -1.3, 1, 0, 0},
}

// ionizableGroup is a side chain that carries charge. Sign is +1 for bases
// (charged when protonated) and -1 for acids.
type ionizableGroup struct {
	Code byte
	PKa  float64
	Sign float64
}

var sideChains = []ionizableGroup{
	{'D', 3.65, -1},
	{'E', 4.25, -1},
	{'C', 8.18, -1},
	{'Y', 10.07, -1},
	{'H', 6.00, +1},
	{'K', 10.53, +1},
	{'R', 12.48, +1},
}

// Guruprasad dipeptide instability weight values (DIWV). Row is the first
// residue of the pair, column the second, both in Alphabet order.
var diwv = []float64{
	//  A      C      D      E      F      G      H      I      K      L      M      N      P      Q      R      S      T      V      W      Y
	1.0, 44.94, -7.49, 1.0, 1.0, 1.0, -7.49, 1.0, 1.0, 1.0, 1.0, 1.0, 20.26, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, // A
	1.0, 1.0, 20.26, 1.0, 1.0, 1.0, 33.60, 1.0, 1.0, 20.26, 33.60, 1.0, 20.26, -6.54, 1.0, 1.0, 33.60, -6.54, 24.68, 1.0, // C
	1.0, 1.0, 1.0, 1.0, -6.54, 1.0, 1.0, 1.0, -7.49, 1.0, 1.0, 1.0, 1.0, 1.0, -6.54, 20.26, -14.03, 1.0, 1.0, 1.0, // D
	1.0, 44.94, 20.26, 33.60, 1.0, 1.0, -6.54, 20.26, 1.0, 1.0, 1.0, 1.0, 20.26, 20.26, 1.0, 20.26, 1.0, 1.0, -14.03, 1.0, // E
	1.0, 1.0, 13.34, 1.0, 1.0, 1.0, 1.0, 1.0, -14.03, 1.0, 1.0, 1.0, 20.26, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 33.601, // F
	-7.49, 1.0, 1.0, -6.54, 1.0, 13.34, 1.0, -7.49, -7.49, 1.0, 1.0, -7.49, 1.0, 1.0, 1.0, 1.0, -7.49, 1.0, 13.34, -7.49, // G
	1.0, 1.0, 1.0, 1.0, -9.37, -9.37, 1.0, 44.94, 24.68, 1.0, 1.0, 24.68, -1.88, 1.0, 1.0, 1.0, -6.54, 1.0, -1.88, 44.94, // H
	1.0, 1.0, 1.0, 44.94, 1.0, 1.0, 13.34, 1.0, -7.49, 20.26, 1.0, 1.0, -1.88, 1.0, 1.0, 1.0, 1.0, -7.49, 1.0, 1.0, // I
	1.0, 1.0, 1.0, 1.0, 1.0, -7.49, 1.0, -7.49, 1.0, -7.49, 33.60, 1.0, -6.54, 24.64, 33.60, 1.0, 1.0, -7.49, 1.0, 1.0, // K
	1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, -7.49, 1.0, 1.0, 1.0, 20.26, 33.60, 20.26, 1.0, 1.0, 1.0, 24.68, 1.0, // L
	13.34, 1.0, 1.0, 1.0, 1.0, 1.0, 58.28, 1.0, 1.0, 1.0, -1.88, 1.0, 44.94, -6.54, -6.54, 44.94, -1.88, 1.0, 1.0, 24.68, // M
	1.0, -1.88, 1.0, 1.0, -14.03, -14.03, 1.0, 44.94, 24.68, 1.0, 1.0, 1.0, -1.88, -6.54, 1.0, 1.0, -7.49, 1.0, -9.37, 1.0, // N
	20.26, -6.54, -6.54, 18.38, 20.26, 1.0, 1.0, 1.0, 1.0, 1.0, -6.54, 1.0, 20.26, 20.26, -6.54, 20.26, 1.0, 20.26, -1.88, 1.0, // P
	1.0, -6.54, 20.26, 20.26, -6.54, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 20.26, 20.26, 1.0, 44.94, 1.0, -6.54, 1.0, -6.54, // Q
	1.0, 1.0, 1.0, 1.0, 1.0, -7.49, 20.26, 1.0, 1.0, 1.0, 1.0, 13.34, 20.26, 20.26, 58.28, 44.94, 1.0, 1.0, 58.28, -6.54, // R
	1.0, 33.60, 1.0, 20.26, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 44.94, 20.26, 20.26, 20.26, 1.0, 1.0, 1.0, 1.0, // S
	1.0, 1.0, 1.0, 20.26, 13.34, -7.49, 1.0, 1.0, 1.0, 1.0, 1.0, -14.03, 1.0, -6.54, 1.0, 1.0, 1.0, 1.0, -14.03, 1.0, // T
	1.0, 1.0, -14.03, 1.0, 1.0, -7.49, 1.0, 1.0, -1.88, 1.0, 1.0, 1.0, 20.26, 1.0, 1.0, 1.0, -7.49, 1.0, 1.0, -6.54, // V
	-14.03, 1.0, 1.0, 1.0, 1.0, -9.37, 24.68, 1.0, 1.0, 13.34, 24.68, 13.34, 1.0, 1.0, 1.0, 1.0, -14.03, -7.49, 1.0, 1.0, // W
	24.68, 1.0, 24.68, -6.54, 1.0, -7.49, 13.34, 1.0, 1.0, 1.0, 44.94, 1.0, 13.34, 1.0, -15.91, 1.0, -7.49, 1.0, -9.37, 13.34, // Y
}

// Column vectors over Alphabet, built once at init and never written again.
var (
	avgResidueMass  []float64 // free acid mass minus one water
	monoResidueMass []float64
	hydropathy      []float64
	helixWeight     []float64
	turnWeight      []float64
	sheetWeight     []float64

	instabilityMatrix *mat.Dense

	residueLookup [256]int8
)

func init() {
	avgResidueMass = make([]float64, NumResidues)
	monoResidueMass = make([]float64, NumResidues)
	hydropathy = make([]float64, NumResidues)
	helixWeight = make([]float64, NumResidues)
	turnWeight = make([]float64, NumResidues)
	sheetWeight = make([]float64, NumResidues)

	for i := range residueLookup {
		residueLookup[i] = -1
	}
	for i, r := range residues {
		residueLookup[r.Code] = int8(i)
		residueLookup[r.Code+('a'-'A')] = int8(i)

		avgResidueMass[i] = r.AvgMass - WaterMass
		monoResidueMass[i] = r.MonoMass - WaterMassMonoisotopic
		hydropathy[i] = r.Hydropathy
		helixWeight[i] = r.Helix
		turnWeight[i] = r.Turn
		sheetWeight[i] = r.Sheet
	}

	instabilityMatrix = mat.NewDense(NumResidues, NumResidues, diwv)
}

// ResidueIndex returns the position of r in Alphabet. Lower case letters map
// to their upper case residue.
func ResidueIndex(r rune) (int, bool) {
	if r < 0 || r > 255 {
		return -1, false
	}
	idx := residueLookup[r]
	return int(idx), idx >= 0
}

// ResidueName returns the full name of a standard residue, or "" when r is
// not in the alphabet.
func ResidueName(r rune) string {
	idx, ok := ResidueIndex(r)
	if !ok {
		return ""
	}
	return residues[idx].Name
}

// HydropathyOf returns the Kyte-Doolittle value of r.
func HydropathyOf(r rune) (float64, bool) {
	idx, ok := ResidueIndex(r)
	if !ok {
		return 0, false
	}
	return hydropathy[idx], true
}

// DipeptideWeight returns the instability weight of the ordered pair (a, b),
// or 0 when either residue is outside the alphabet.
func DipeptideWeight(a, b rune) float64 {
	i, ok := ResidueIndex(a)
	if !ok {
		return 0
	}
	j, ok := ResidueIndex(b)
	if !ok {
		return 0
	}
	return instabilityMatrix.At(i, j)
}
