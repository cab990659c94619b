package protparam

import (
	"math"
)

// Charge returns the net charge of the peptide at the given pH using the
// Henderson-Hasselbalch equation over both termini and every ionizable side
// chain. Each terminus is counted once. The result strictly decreases as pH
// rises.
func Charge(c Composition, pH float64) float64 {
	net := positiveFraction(pH, PKaNTerminus) - negativeFraction(pH, PKaCTerminus)

	for _, g := range sideChains {
		n := c.Of(rune(g.Code))
		if n == 0 {
			continue
		}
		if g.Sign > 0 {
			net += float64(n) * positiveFraction(pH, g.PKa)
		} else {
			net -= float64(n) * negativeFraction(pH, g.PKa)
		}
	}
	return net
}

// positiveFraction is the protonated (charged) fraction of a basic group.
func positiveFraction(pH, pKa float64) float64 {
	return 1 / (1 + math.Pow(10, pH-pKa))
}

// negativeFraction is the deprotonated (charged) fraction of an acidic group.
func negativeFraction(pH, pKa float64) float64 {
	return 1 / (1 + math.Pow(10, pKa-pH))
}
