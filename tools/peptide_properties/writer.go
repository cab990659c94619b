package peptide_properties

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"ampscan_go/protparam"
)

// Columns is the header of the property table.
var Columns = []string{
	"sequence_id",
	"length",
	"molecular_weight",
	"aromaticity",
	"instability_index",
	"isoelectric_point",
	"gravy",
	"charge_at_pH7",
	"helix_fraction",
	"turn_fraction",
	"sheet_fraction",
}

// WriteTSVFile creates filename and writes the property table to it.
func WriteTSVFile(filename string, results []protparam.Result) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteTSV(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTSV writes one row per completed result, in result order. Failed and
// unfinished results are left out.
func WriteTSV(w io.Writer, results []protparam.Result) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'

	if err := writer.Write(Columns); err != nil {
		return err
	}
	for _, res := range results {
		if !res.OK() {
			continue
		}
		if err := writer.Write(Row(res.Record)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Row renders a record in column order.
func Row(r protparam.PropertyRecord) []string {
	return []string{
		r.ID,
		strconv.Itoa(r.Length),
		formatFloat(r.MolecularWeight),
		formatFloat(r.Aromaticity),
		formatFloat(r.InstabilityIndex),
		formatFloat(r.IsoelectricPoint),
		formatFloat(r.Gravy),
		formatFloat(r.ChargeAtPH7),
		formatFloat(r.HelixFraction),
		formatFloat(r.TurnFraction),
		formatFloat(r.SheetFraction),
	}
}

// formatFloat prints the shortest exact form, always with a decimal point
// (6 -> "6.0"), so whole numbers still read as reals downstream.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
