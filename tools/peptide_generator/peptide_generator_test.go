package peptide_generator

import (
	"bytes"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ampscan_go/protparam"
	"ampscan_go/tools/peptide_properties"
)

func TestGeneratePeptide(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := GeneratePeptide(rng, 200)
	if len(p) != 200 {
		t.Fatalf("length = %d", len(p))
	}
	for _, r := range p {
		if _, ok := protparam.ResidueIndex(r); !ok {
			t.Fatalf("non-standard residue %q", r)
		}
	}
}

func TestRequests(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	reqs := Requests(rng, "pep", 50, 5, 8)
	if len(reqs) != 50 || reqs[0].ID != "pep_1" || reqs[49].ID != "pep_50" {
		t.Fatalf("requests = %+v", reqs)
	}
	for _, r := range reqs {
		if r.Length < 5 || r.Length > 8 {
			t.Errorf("%s length %d out of range", r.ID, r.Length)
		}
	}
}

func TestMultiSeqFlag(t *testing.T) {
	var m MultiSeqFlag
	if err := m.Set("a,12"); err != nil {
		t.Fatal(err)
	}
	for _, bad := range []string{"a", "a,x", "a,0", "a,1,2"} {
		if err := m.Set(bad); err == nil {
			t.Errorf("Set(%q) accepted", bad)
		}
	}
	if len(m) != 1 || m[0] != (PeptideRequest{ID: "a", Length: 12}) {
		t.Errorf("flag = %+v", m)
	}
}

func TestWrapFasta(t *testing.T) {
	if got := WrapFasta("ABCDE", 2); got != "AB\nCD\nE\n" {
		t.Errorf("got %q", got)
	}
}

// Generated files must round-trip through the property tool's readers.
func TestWrite_ReadBack(t *testing.T) {
	reqs := []PeptideRequest{{"x", 70}, {"y", 12}}
	for _, mode := range []string{"fasta", "macrel"} {
		t.Run(mode, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, rand.New(rand.NewSource(3)), reqs, mode); err != nil {
				t.Fatal(err)
			}
			var seqs []protparam.Sequence
			var err error
			if mode == "fasta" {
				seqs, err = peptide_properties.ReadFasta(&buf)
			} else {
				seqs, err = peptide_properties.ReadMacrel(&buf)
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(seqs) != 2 || seqs[0].ID != "x" || len(seqs[0].Residues) != 70 || len(seqs[1].Residues) != 12 {
				t.Errorf("read back %+v", seqs)
			}
		})
	}
}

func TestWrite_UnknownMode(t *testing.T) {
	if err := Write(&bytes.Buffer{}, rand.New(rand.NewSource(1)), nil, "genbank"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestWriteFile_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peps.fasta.gz")
	reqs := []PeptideRequest{{"g", 30}}
	err := writeFile(path, true, func(w io.Writer) error {
		return Write(w, rand.New(rand.NewSource(5)), reqs, "fasta")
	})
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte{0x1F, 0x8B}) {
		t.Fatal("output is not gzip")
	}
	seqs, err := peptide_properties.LoadSequences(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(seqs) != 1 || !strings.HasPrefix(seqs[0].ID, "g") {
		t.Errorf("seqs = %+v", seqs)
	}
}
