package samplesheet_check

import (
	"bufio"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	common "ampscan_go/utils"
)

// ValidFormats are the accepted FASTA file extensions.
var ValidFormats = []string{".fasta", ".fa", ".fna"}

// RowError is a validation failure tied to a line of the input sheet.
type RowError struct {
	Line int
	Msg  string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s On line %d.", e.Msg, e.Line)
}

// ErrMissingColumns is returned when the header lacks sample or fasta.
var ErrMissingColumns = errors.New("the sample sheet must contain these column headers: sample, fasta")

// RowChecker validates rows and remembers the samples seen so far.
type RowChecker struct {
	SampleCol string
	FastaCol  string
	seen      map[string]bool
}

func NewRowChecker() *RowChecker {
	return &RowChecker{SampleCol: "sample", FastaCol: "fasta", seen: make(map[string]bool)}
}

// Validate checks one row in place: spaces in the sample name become
// underscores, samples must be unique and FASTA paths need a known extension.
func (rc *RowChecker) Validate(row map[string]string) error {
	sample := row[rc.SampleCol]
	if len(sample) == 0 {
		return errors.New("Sample input is required.")
	}
	sample = strings.ReplaceAll(sample, " ", "_")
	row[rc.SampleCol] = sample
	if rc.seen[sample] {
		return fmt.Errorf("Duplicate sample name: %s", sample)
	}
	rc.seen[sample] = true

	fasta := row[rc.FastaCol]
	if len(fasta) == 0 {
		return errors.New("FASTA file is required.")
	}
	if !common.HasFastaExtension(fasta, ValidFormats) {
		return fmt.Errorf("FASTA file has an unrecognized extension: %s\nSupported extensions: %s",
			fasta, strings.Join(ValidFormats, ", "))
	}
	return nil
}

// SniffDelimiter picks comma, tab or semicolon, whichever splits the header
// line into the most fields.
func SniffDelimiter(header string) rune {
	best, bestCount := ',', 0
	for _, d := range []rune{',', '\t', ';'} {
		if n := strings.Count(header, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// Check validates every row of in and writes the transformed sheet to out as
// comma separated values.
func Check(in io.Reader, out io.Writer) error {
	br := bufio.NewReader(in)
	first, err := br.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return err
	}
	headerLine, _, _ := strings.Cut(string(first), "\n")

	reader := csv.NewReader(br)
	reader.Comma = SniffDelimiter(headerLine)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if !contains(header, "sample") || !contains(header, "fasta") {
		return ErrMissingColumns
	}

	writer := csv.NewWriter(out)
	if err := writer.Write(header); err != nil {
		return err
	}

	checker := NewRowChecker()
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		if err := checker.Validate(row); err != nil {
			return &RowError{Line: line, Msg: err.Error()}
		}

		values := make([]string, len(header))
		for i, name := range header {
			values[i] = row[name]
		}
		if err := writer.Write(values); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

var logLevels = map[string]int{"DEBUG": 0, "INFO": 1, "WARNING": 2, "ERROR": 3, "CRITICAL": 4}

func Run(args []string) {
	fs := flag.NewFlagSet("samplesheet_check", flag.ExitOnError)
	inFile := fs.String("in_file", "", "Tabular input samplesheet in CSV format")
	outFile := fs.String("out_file", "", "Transformed output samplesheet in CSV format")
	logLevel := fs.String("log_level", "WARNING", "Log level: CRITICAL, ERROR, WARNING, INFO or DEBUG")
	err := fs.Parse(args)
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}

	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	level, ok := logLevels[strings.ToUpper(*logLevel)]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unsupported log level: %s\n", *logLevel)
		os.Exit(1)
	}

	if *inFile == "" || *outFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -in_file and -out_file are required")
		fs.Usage()
		os.Exit(1)
	}

	if info, err := os.Stat(*inFile); err != nil || info.IsDir() {
		fmt.Fprintf(os.Stderr, "[ERROR] The given input file %s was not found!\n", *inFile)
		os.Exit(2)
	}
	if err := os.MkdirAll(filepath.Dir(*outFile), 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "[ERROR]", err)
		os.Exit(1)
	}

	in, err := os.Open(*inFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "[ERROR]", err)
		os.Exit(1)
	}
	defer in.Close()
	out, err := os.Create(*outFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "[ERROR]", err)
		os.Exit(1)
	}

	if err := Check(in, out); err != nil {
		out.Close()
		fmt.Fprintln(os.Stderr, "[CRITICAL]", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "[ERROR]", err)
		os.Exit(1)
	}
	if level <= logLevels["INFO"] {
		fmt.Printf("[INFO] Validated samplesheet written to %s\n", *outFile)
	}
}
