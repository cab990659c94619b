package protparam

import (
	"errors"
	"testing"
)

func TestAssemble_ReferencePeptide(t *testing.T) {
	res := Assemble(Sequence{ID: "amp1", Residues: "KLLKLLLKLWKKLLK"})
	if res.State != Complete {
		t.Fatalf("state = %v, err = %v", res.State, res.Err)
	}
	r := res.Record
	want := PropertyRecord{
		ID:               "amp1",
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
	if r != want {
		t.Errorf("record mismatch\n got: %+v\nwant: %+v", r, want)
	}
	if r.ChargeAtPH7 <= 0 || r.Gravy <= 0 {
		t.Error("expected a cationic, hydrophobic peptide")
	}
}

func TestAssemble_AcidicPeptide(t *testing.T) {
	r, err := Compute(Sequence{ID: "acid", Residues: "DEDEDEDEDE"})
	if err != nil {
		t.Fatal(err)
	}
	if r.IsoelectricPoint >= 4 {
		t.Errorf("pI = %v, want < 4", r.IsoelectricPoint)
	}
	if r.ChargeAtPH7 >= 0 {
		t.Errorf("charge at pH 7 = %v, want negative", r.ChargeAtPH7)
	}
}

func TestAssemble_Empty(t *testing.T) {
	res := Assemble(Sequence{ID: "empty"})
	if res.State != Failed {
		t.Fatalf("state = %v, want failed", res.State)
	}
	if !errors.Is(res.Err, ErrEmptySequence) {
		t.Errorf("err = %v", res.Err)
	}
	if res.OK() {
		t.Error("failed result reported OK")
	}
	if _, err := Compute(Sequence{ID: "empty"}); err == nil {
		t.Error("Compute should return an error")
	}
}

func TestAssemble_UnknownResidue(t *testing.T) {
	res := Assemble(Sequence{ID: "x", Residues: "KLLKXLLLKLWKKLLK"})
	if res.State != Complete {
		t.Fatalf("state = %v", res.State)
	}
	r := res.Record
	if r.Length != 16 {
		t.Errorf("Length = %d, want 16", r.Length)
	}
	if res.Unrecognized != 1 {
		t.Errorf("Unrecognized = %d", res.Unrecognized)
	}
	// Denominators use the 15 recognized residues.
	if r.Aromaticity != 0.0667 || r.Gravy != 0.4067 || r.MolecularWeight != 1878.52 {
		t.Errorf("unexpected averages: %+v", r)
	}
	if r.InstabilityIndex != -9.51 {
		t.Errorf("InstabilityIndex = %v, want -9.51", r.InstabilityIndex)
	}
}

func TestAssemble_SingleResidue(t *testing.T) {
	r, err := Compute(Sequence{ID: "g", Residues: "G"})
	if err != nil {
		t.Fatal(err)
	}
	if r.InstabilityIndex != 0 {
		t.Errorf("InstabilityIndex = %v", r.InstabilityIndex)
	}
	if r.ChargeAtPH7 != 0 {
		t.Errorf("ChargeAtPH7 = %v, want 0 (no negative zero)", r.ChargeAtPH7)
	}
}

func TestAssemble_Idempotent(t *testing.T) {
	seq := Sequence{ID: "m", Residues: "GIGKFLHSAKKFGKAFVGEIMNS"}
	a, err := Compute(seq)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Compute(seq)
	if a != b {
		t.Errorf("results differ:\n%+v\n%+v", a, b)
	}
}

func TestState_String(t *testing.T) {
	for s, want := range map[State]string{Pending: "pending", Computing: "computing", Complete: "complete", Failed: "failed"} {
		if s.String() != want {
			t.Errorf("%d.String() = %q", s, s.String())
		}
	}
}
