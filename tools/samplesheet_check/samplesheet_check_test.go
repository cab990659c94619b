package samplesheet_check

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSniffDelimiter(t *testing.T) {
	cases := map[string]rune{
		"sample,fasta":       ',',
		"sample\tfasta":      '\t',
		"sample;fasta;notes": ';',
		"sample":             ',',
	}
	for header, want := range cases {
		if got := SniffDelimiter(header); got != want {
			t.Errorf("SniffDelimiter(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"comma", "sample,fasta\nS1,a.fasta\nS2,b.fa\n", "sample,fasta\nS1,a.fasta\nS2,b.fa\n"},
		{"tab", "sample\tfasta\nS1\ta.fna\n", "sample,fasta\nS1,a.fna\n"},
		{"spaces", "sample,fasta\nmy sample,a.fa\n", "sample,fasta\nmy_sample,a.fa\n"},
		{"extra column", "fasta,sample,notes\na.fa,S1,x\n", "fasta,sample,notes\na.fa,S1,x\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := Check(strings.NewReader(tc.in), &out); err != nil {
				t.Fatalf("Check: %v", err)
			}
			if out.String() != tc.want {
				t.Errorf("got %q, want %q", out.String(), tc.want)
			}
		})
	}
}

func TestCheck_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		msg  string
		line int
	}{
		{"empty sample", "sample,fasta\n,a.fa\n", "Sample input is required.", 2},
		{"empty fasta", "sample,fasta\nS1,\n", "FASTA file is required.", 2},
		{"bad extension", "sample,fasta\nS1,a.fasta\nS2,b.txt\n", "unrecognized extension", 3},
		{"duplicate", "sample,fasta\nS 1,a.fa\nS_1,b.fa\n", "Duplicate sample name: S_1", 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Check(strings.NewReader(tc.in), &bytes.Buffer{})
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("expected a RowError, got %v", err)
			}
			if rowErr.Line != tc.line || !strings.Contains(rowErr.Msg, tc.msg) {
				t.Errorf("got %v", rowErr)
			}
			if !strings.HasSuffix(err.Error(), "On line "+string(rune('0'+tc.line))+".") {
				t.Errorf("message %q lacks line suffix", err.Error())
			}
		})
	}
}

func TestCheck_MissingColumns(t *testing.T) {
	err := Check(strings.NewReader("name,file\nS1,a.fa\n"), &bytes.Buffer{})
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("expected ErrMissingColumns, got %v", err)
	}
}

func TestRowChecker(t *testing.T) {
	rc := NewRowChecker()
	row := map[string]string{"sample": "a b c", "fasta": "x.fasta"}
	if err := rc.Validate(row); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if row["sample"] != "a_b_c" {
		t.Errorf("sample = %q", row["sample"])
	}
}
