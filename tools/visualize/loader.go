package visualize

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"ampscan_go/protparam"
	common "ampscan_go/utils"
)

var requiredColumns = []string{
	"length", "molecular_weight", "isoelectric_point", "gravy",
	"charge_at_pH7", "helix_fraction", "turn_fraction", "sheet_fraction",
}

// LoadProperties reads a property table written by peptide_properties.
func LoadProperties(path string) ([]protparam.PropertyRecord, error) {
	rc, err := common.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadProperties(rc)
}

// ReadProperties parses a tab separated property table. Columns are found
// by header name, so extra or reordered columns are fine.
func ReadProperties(r io.Reader) ([]protparam.PropertyRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var records []protparam.PropertyRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		var parseErr error
		num := func(name string) float64 {
			i := col[name]
			if i >= len(row) {
				if parseErr == nil {
					parseErr = fmt.Errorf("line %d: missing %s", line, name)
				}
				return 0
			}
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil && parseErr == nil {
				parseErr = fmt.Errorf("line %d: %s: %w", line, name, err)
			}
			return v
		}

		rec := protparam.PropertyRecord{
			Length:           int(num("length")),
			MolecularWeight:  num("molecular_weight"),
			IsoelectricPoint: num("isoelectric_point"),
			Gravy:            num("gravy"),
			ChargeAtPH7:      num("charge_at_pH7"),
			HelixFraction:    num("helix_fraction"),
			TurnFraction:     num("turn_fraction"),
			SheetFraction:    num("sheet_fraction"),
		}
		if i, ok := col["sequence_id"]; ok && i < len(row) {
			rec.ID = row[i]
		}
		// optional columns go through the same parser when present
		if _, ok := col["aromaticity"]; ok {
			rec.Aromaticity = num("aromaticity")
		}
		if _, ok := col["instability_index"]; ok {
			rec.InstabilityIndex = num("instability_index")
		}
		if parseErr != nil {
			return nil, parseErr
		}
		records = append(records, rec)
	}
	return records, nil
}
