package check

import (
	"fmt"
	"math"
	"os"

	version_control "ampscan_go/config" // Version control file
	"ampscan_go/protparam"
)

// Reference is the peptide the diagnostic run computes.
const Reference = "KLLKLLLKLWKKLLK"

// expected holds the known property values for Reference.
var expected = protparam.PropertyRecord{
	ID:               "reference",
	Length:           15,
	MolecularWeight:  1878.52,
	Aromaticity:      0.0667,
	InstabilityIndex: -14.5,
	IsoelectricPoint: 11.24,
	Gravy:            0.4067,
	ChargeAtPH7:      6.0,
	HelixFraction:    0.6,
	TurnFraction:     0,
	SheetFraction:    0.5333,
}

// SelfTest computes the reference peptide and compares every property with
// the known values. It returns the computed record alongside any mismatch.
func SelfTest() (protparam.PropertyRecord, error) {
	rec, err := protparam.Compute(protparam.Sequence{ID: expected.ID, Residues: Reference})
	if err != nil {
		return rec, err
	}
	if rec.Length != expected.Length {
		return rec, fmt.Errorf("length: got %d, want %d", rec.Length, expected.Length)
	}
	fields := []struct {
		name      string
		got, want float64
	}{
		{"molecular_weight", rec.MolecularWeight, expected.MolecularWeight},
		{"aromaticity", rec.Aromaticity, expected.Aromaticity},
		{"instability_index", rec.InstabilityIndex, expected.InstabilityIndex},
		{"isoelectric_point", rec.IsoelectricPoint, expected.IsoelectricPoint},
		{"gravy", rec.Gravy, expected.Gravy},
		{"charge_at_pH7", rec.ChargeAtPH7, expected.ChargeAtPH7},
		{"helix_fraction", rec.HelixFraction, expected.HelixFraction},
		{"turn_fraction", rec.TurnFraction, expected.TurnFraction},
		{"sheet_fraction", rec.SheetFraction, expected.SheetFraction},
	}
	for _, f := range fields {
		if math.Abs(f.got-f.want) > 1e-9 {
			return rec, fmt.Errorf("%s: got %v, want %v", f.name, f.got, f.want)
		}
	}
	return rec, nil
}

// Run performs a diagnostic check that AMPscan is installed and that the
// property engine reproduces the reference values.
func Run(args []string) {
	fmt.Printf("Successfully running AMPscan! (%s)\n", version_control.Main_version)

	rec, err := SelfTest()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Property engine check failed:", err)
		os.Exit(1)
	}
	fmt.Printf("Property engine OK: %s (%d aa, %.2f Da, pI %.2f)\n",
		Reference, rec.Length, rec.MolecularWeight, rec.IsoelectricPoint)
}
