package visualize

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"ampscan_go/protparam"
)

// SummaryStat is one line of the summary report.
type SummaryStat struct {
	Name    string
	Value   float64
	Integer bool
}

// Summarize computes the cohort statistics in report order.
func Summarize(records []protparam.PropertyRecord) []SummaryStat {
	column := func(get func(protparam.PropertyRecord) float64) []float64 {
		v := make([]float64, len(records))
		for i, r := range records {
			v[i] = get(r)
		}
		return v
	}
	mean := func(get func(protparam.PropertyRecord) float64) float64 {
		if len(records) == 0 {
			return 0
		}
		return stat.Mean(column(get), nil)
	}

	pis := column(func(r protparam.PropertyRecord) float64 { return r.IsoelectricPoint })
	sort.Float64s(pis)
	medianPI := 0.0
	if len(pis) > 0 {
		medianPI = stat.Quantile(0.5, stat.Empirical, pis, nil)
	}

	return []SummaryStat{
		{Name: "Total AMPs", Value: float64(len(records)), Integer: true},
		{Name: "Mean Length (aa)", Value: mean(func(r protparam.PropertyRecord) float64 { return float64(r.Length) })},
		{Name: "Mean Molecular Weight (Da)", Value: mean(func(r protparam.PropertyRecord) float64 { return r.MolecularWeight })},
		{Name: "Mean pI", Value: mean(func(r protparam.PropertyRecord) float64 { return r.IsoelectricPoint })},
		{Name: "Median pI", Value: medianPI},
		{Name: "Mean Charge at pH7", Value: mean(func(r protparam.PropertyRecord) float64 { return r.ChargeAtPH7 })},
		{Name: "Mean GRAVY", Value: mean(func(r protparam.PropertyRecord) float64 { return r.Gravy })},
		{Name: "Mean α-Helix Fraction", Value: mean(func(r protparam.PropertyRecord) float64 { return r.HelixFraction })},
		{Name: "Mean Turn Fraction", Value: mean(func(r protparam.PropertyRecord) float64 { return r.TurnFraction })},
		{Name: "Mean β-Sheet Fraction", Value: mean(func(r protparam.PropertyRecord) float64 { return r.SheetFraction })},
	}
}

func (s SummaryStat) format() string {
	if s.Integer {
		return fmt.Sprintf("%d", int(s.Value))
	}
	return fmt.Sprintf("%.2f", s.Value)
}

// WriteSummary writes the summary_stats.txt report.
func WriteSummary(w io.Writer, stats []SummaryStat) error {
	if _, err := fmt.Fprint(w, "# AMPscan Summary Statistics\n\n"); err != nil {
		return err
	}
	for _, s := range stats {
		if _, err := fmt.Fprintf(w, "%s: %s\n", s.Name, s.format()); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummaryFile creates filename and writes the summary into it.
func WriteSummaryFile(filename string, stats []SummaryStat) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteSummary(f, stats); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// PrintSummary shows the summary as a dotted key/value table.
func PrintSummary(w io.Writer, stats []SummaryStat) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", 50))
	fmt.Fprintln(w, "SUMMARY STATISTICS")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	for _, s := range stats {
		name := s.Name
		if pad := 40 - len([]rune(name)); pad > 0 {
			name += strings.Repeat(".", pad)
		}
		fmt.Fprintf(w, "%s %s\n", name, s.format())
	}
	fmt.Fprintln(w, strings.Repeat("=", 50))
}
