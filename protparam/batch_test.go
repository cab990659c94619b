package protparam

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func TestRunBatch_OrderAndSummary(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var seqs []Sequence
	for i := 0; i < 500; i++ {
		res := randomPeptide(rng, 1+rng.Intn(40))
		if i%50 == 0 {
			res = ""
		}
		seqs = append(seqs, Sequence{ID: fmt.Sprintf("seq%03d", i), Residues: res})
	}

	results, sum, err := RunBatch(context.Background(), seqs, BatchConfig{Workers: 8})
	if err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	if len(results) != len(seqs) {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r.Index != i || r.ID != seqs[i].ID {
			t.Fatalf("result %d is %s (index %d)", i, r.ID, r.Index)
		}
		if r.State == Complete && r.Record.ID != seqs[i].ID {
			t.Fatalf("record %d carries id %s", i, r.Record.ID)
		}
	}
	if sum.Total != 500 || sum.Failed != 10 || sum.Complete != 490 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestRunBatch_MatchesSerial(t *testing.T) {
	seqs := []Sequence{
		{ID: "a", Residues: "KLLKLLLKLWKKLLK"},
		{ID: "b", Residues: "DEDEDEDEDE"},
		{ID: "c", Residues: "GIGKFLHSAKKFGKAFVGEIMNS"},
	}
	results, _, err := RunBatch(context.Background(), seqs, BatchConfig{})
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range seqs {
		want, _ := Compute(s)
		if results[i].Record != want {
			t.Errorf("%s: parallel %+v != serial %+v", s.ID, results[i].Record, want)
		}
	}
}

func TestRunBatch_Cancelled(t *testing.T) {
	seqs := make([]Sequence, 1000)
	for i := range seqs {
		seqs[i] = Sequence{ID: fmt.Sprint(i), Residues: "KLLK"}
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, sum, err := RunBatch(ctx, seqs, BatchConfig{Workers: 2})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(results) != len(seqs) {
		t.Fatalf("got %d results", len(results))
	}
	if sum.Complete == len(seqs) {
		t.Error("a cancelled batch should not finish every record")
	}
	for _, r := range results {
		if r.State != Pending && r.State != Complete {
			t.Fatalf("unexpected state %v", r.State)
		}
	}
}
