package visualize

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ampscan_go/protparam"
	"ampscan_go/tools/peptide_properties"
)

// writeProperties runs the engine on peptides and stores the table in dir.
func writeProperties(t *testing.T, dir string, peptides ...string) string {
	t.Helper()
	var results []protparam.Result
	for i, p := range peptides {
		results = append(results, protparam.Assemble(protparam.Sequence{ID: string(rune('a' + i)), Residues: p}))
	}
	fn := filepath.Join(dir, "props.tsv")
	if err := peptide_properties.WriteTSVFile(fn, results); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestReadProperties(t *testing.T) {
	fn := writeProperties(t, t.TempDir(), "KLLKLLLKLWKKLLK", "DEDEDEDEDE")
	recs, err := LoadProperties(fn)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records", len(recs))
	}
	want, _ := protparam.Compute(protparam.Sequence{ID: "a", Residues: "KLLKLLLKLWKKLLK"})
	if recs[0] != want {
		t.Errorf("round trip mismatch\n got %+v\nwant %+v", recs[0], want)
	}
}

func TestReadProperties_MissingColumn(t *testing.T) {
	_, err := ReadProperties(strings.NewReader("sequence_id\tlength\na\t3\n"))
	if err == nil || !strings.Contains(err.Error(), "missing column") {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestReadProperties_BadNumber(t *testing.T) {
	in := strings.Join(peptide_properties.Columns, "\t") + "\n" +
		"a\t3\tx\t0\t0\t7\t0\t0\t0\t0\t0\n"
	if _, err := ReadProperties(strings.NewReader(in)); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestReadProperties_BadOptionalNumber(t *testing.T) {
	for _, row := range []string{
		"a\t3\t300.1\tabc\t0\t7\t0\t0\t0\t0\t0\n",
		"a\t3\t300.1\t0\t1..2\t7\t0\t0\t0\t0\t0\n",
	} {
		in := strings.Join(peptide_properties.Columns, "\t") + "\n" + row
		if _, err := ReadProperties(strings.NewReader(in)); err == nil {
			t.Errorf("row %q: expected a parse error", row)
		}
	}
}

func TestSummarize(t *testing.T) {
	recs := []protparam.PropertyRecord{
		{Length: 10, MolecularWeight: 1000, IsoelectricPoint: 4, HelixFraction: 0.5},
		{Length: 20, MolecularWeight: 2000, IsoelectricPoint: 10, HelixFraction: 0.1},
		{Length: 30, MolecularWeight: 3000, IsoelectricPoint: 11, HelixFraction: 0.3},
	}
	stats := Summarize(recs)
	got := map[string]float64{}
	for _, s := range stats {
		got[s.Name] = s.Value
	}
	if got["Total AMPs"] != 3 || got["Mean Length (aa)"] != 20 || got["Mean Molecular Weight (Da)"] != 2000 {
		t.Errorf("stats = %+v", stats)
	}
	var names []string
	for _, s := range stats {
		names = append(names, s.Name)
	}
	wantNames := []string{
		"Total AMPs", "Mean Length (aa)", "Mean Molecular Weight (Da)", "Mean pI", "Median pI",
		"Mean Charge at pH7", "Mean GRAVY", "Mean α-Helix Fraction", "Mean Turn Fraction", "Mean β-Sheet Fraction",
	}
	if strings.Join(names, "|") != strings.Join(wantNames, "|") {
		t.Errorf("summary keys = %v", names)
	}
	if got["Median pI"] != 10 {
		t.Errorf("median pI = %v", got["Median pI"])
	}

	var buf bytes.Buffer
	if err := WriteSummary(&buf, stats); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "# AMPscan Summary Statistics\n\n") {
		t.Errorf("missing title: %q", out)
	}
	if !strings.Contains(out, "Total AMPs: 3\n") || !strings.Contains(out, "Mean pI: 8.33\n") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}

func TestExecute(t *testing.T) {
	dir := t.TempDir()
	fn := writeProperties(t, dir, "KLLKLLLKLWKKLLK", "DEDEDEDEDE", "GIGKFLHSAKKFGKAFVGEIMNS", "G")
	outDir := filepath.Join(dir, "plots")

	written, err := Execute(Options{Properties: fn, OutDir: outDir, Format: "svg", HTML: true})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, name := range []string{
		"amp_properties_distribution.svg",
		"secondary_structure.svg",
		"charge_vs_hydrophobicity.svg",
		"summary_stats.txt",
		"report.html",
	} {
		info, err := os.Stat(filepath.Join(outDir, name))
		if err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if len(written) != 5 {
		t.Errorf("written = %v", written)
	}
}

func TestExecute_PNG(t *testing.T) {
	dir := t.TempDir()
	fn := writeProperties(t, dir, "KLLKLLLKLWKKLLK", "DEDEDEDEDE")
	outDir := filepath.Join(dir, "plots")
	if _, err := Execute(Options{Properties: fn, OutDir: outDir}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(outDir, "amp_properties_distribution.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Error("not a PNG file")
	}
}

func TestWriteHTMLReport(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "report.html")
	stats := []SummaryStat{{Name: "Total AMPs", Value: 2, Integer: true}}
	if err := WriteHTMLReport(fn, stats, []string{"A & B"}, []string{"<svg></svg>"}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<td>Total AMPs</td><td>2</td>", "<h2>A &amp; B</h2>", "<svg></svg>"} {
		if !strings.Contains(string(b), want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWriteHTMLReport_BadPath(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing", "report.html")
	if err := WriteHTMLReport(fn, nil, nil, nil); err == nil {
		t.Fatal("expected an error")
	}
}

func TestExecute_BadFormat(t *testing.T) {
	if _, err := Execute(Options{Properties: "x", OutDir: t.TempDir(), Format: "gif"}); err == nil {
		t.Fatal("expected an error")
	}
}
