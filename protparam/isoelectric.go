package protparam

import (
	"math"
)

// Solver defaults.
const (
	PHMin           = 0.0
	PHMax           = 14.0
	PHTolerance     = 1e-12
	ChargeTolerance = 1e-4
	MaxIterations   = 100
)

// SolverConfig bounds the isoelectric point bisection.
type SolverConfig struct {
	Low, High       float64
	PHTolerance     float64
	ChargeTolerance float64
	MaxIterations   int
}

// DefaultSolverConfig searches [0, 14].
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		Low:             PHMin,
		High:            PHMax,
		PHTolerance:     PHTolerance,
		ChargeTolerance: ChargeTolerance,
		MaxIterations:   MaxIterations,
	}
}

// Solution is the outcome of a bisection run. Converged means |Charge| at PH
// is within the charge tolerance. Otherwise PH is the best midpoint reached
// before the bracket width or the iteration budget ran out.
type Solution struct {
	PH         float64
	Charge     float64
	Iterations int
	Converged  bool
}

// IsoelectricPoint returns the pH at which the net charge is zero.
func IsoelectricPoint(c Composition) float64 {
	return SolveIsoelectric(c, DefaultSolverConfig()).PH
}

// SolveIsoelectric bisects [cfg.Low, cfg.High] for the zero crossing of
// Charge. It never fails; a missing sign change collapses the search onto the
// bound whose charge is closer to zero.
func SolveIsoelectric(c Composition, cfg SolverConfig) Solution {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = MaxIterations
	}
	if cfg.High <= cfg.Low {
		cfg.Low, cfg.High = PHMin, PHMax
	}

	low, high := cfg.Low, cfg.High
	var sol Solution

	for sol.Iterations < cfg.MaxIterations {
		sol.Iterations++
		mid := (low + high) / 2
		q := Charge(c, mid)
		sol.PH, sol.Charge = mid, q

		if math.Abs(q) <= cfg.ChargeTolerance {
			sol.Converged = true
			return sol
		}
		// bracket exhausted without meeting the charge tolerance
		if high-low < cfg.PHTolerance {
			return sol
		}
		// charge falls with pH: still positive means the root is above mid
		if q > 0 {
			low = mid
		} else {
			high = mid
		}
	}
	return sol
}
