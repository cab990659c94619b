package protparam

import (
	"gonum.org/v1/gonum/floats/scalar"
)

// ReferencePH is the pH used for the reported charge.
const ReferencePH = 7.0

// State tracks a record through the assembler.
type State int

const (
	Pending State = iota
	Computing
	Complete
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Computing:
		return "computing"
	case Complete:
		return "complete"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// PropertyRecord is the reported descriptor set for one sequence. Values are
// rounded for reporting: masses, instability, pI and charge to 2 decimals,
// the averages and fractions to 4.
type PropertyRecord struct {
	ID               string
	Length           int
	MolecularWeight  float64
	Aromaticity      float64
	InstabilityIndex float64
	IsoelectricPoint float64
	Gravy            float64
	ChargeAtPH7      float64
	HelixFraction    float64
	TurnFraction     float64
	SheetFraction    float64
}

// Result is the tagged outcome for one sequence. Record is only meaningful
// when State is Complete; Err is set when State is Failed.
type Result struct {
	Index  int
	ID     string
	State  State
	Record PropertyRecord
	Err    error

	// Diagnostics that do not appear in the report.
	Unrecognized int
	PIConverged  bool
}

// OK reports whether the record completed.
func (r Result) OK() bool { return r.State == Complete }

// Compute runs every calculator on seq and returns the rounded record.
func Compute(seq Sequence) (PropertyRecord, error) {
	res := Assemble(seq)
	if res.State != Complete {
		return PropertyRecord{}, res.Err
	}
	return res.Record, nil
}

// Assemble drives one sequence from Pending to Complete or Failed.
func Assemble(seq Sequence) Result {
	res := Result{ID: seq.ID, State: Pending}

	comp, err := Count(seq)
	if err != nil {
		res.State = Failed
		res.Err = err
		return res
	}
	res.State = Computing
	res.Unrecognized = comp.Unrecognized

	structure := SecondaryStructure(comp)
	pi := SolveIsoelectric(comp, DefaultSolverConfig())
	res.PIConverged = pi.Converged

	res.Record = PropertyRecord{
		ID:               seq.ID,
		Length:           comp.Length,
		MolecularWeight:  round(MolecularWeight(comp), 2),
		Aromaticity:      round(Aromaticity(comp), 4),
		InstabilityIndex: round(InstabilityIndex(seq), 2),
		IsoelectricPoint: round(pi.PH, 2),
		Gravy:            round(Gravy(comp), 4),
		ChargeAtPH7:      round(Charge(comp, ReferencePH), 2),
		HelixFraction:    round(structure.Helix, 4),
		TurnFraction:     round(structure.Turn, 4),
		SheetFraction:    round(structure.Sheet, 4),
	}
	res.State = Complete
	return res
}

func round(x float64, prec int) float64 {
	r := scalar.Round(finite(x), prec)
	if r == 0 {
		return 0 // no "-0" in reports
	}
	return r
}
