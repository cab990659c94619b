package peptide_properties

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"ampscan_go/protparam"
)

// Options for one property run.
type Options struct {
	InFile  string
	OutFile string
	Format  string // auto, macrel or fasta
	Threads int
}

// Execute loads the input, analyses every sequence and writes the table.
// Failed records are reported on stderr and skipped.
func Execute(ctx context.Context, opts Options) (protparam.Summary, error) {
	seqs, err := LoadSequences(opts.InFile, opts.Format)
	if err != nil {
		return protparam.Summary{}, err
	}

	results, summary, err := protparam.RunBatch(ctx, seqs, protparam.BatchConfig{Workers: opts.Threads})
	if err != nil {
		return summary, err
	}
	for _, res := range results {
		if res.State == protparam.Failed {
			fmt.Fprintf(os.Stderr, "Error calculating properties for sequence: %v\n", res.Err)
		}
	}

	if err := WriteTSVFile(opts.OutFile, results); err != nil {
		return summary, fmt.Errorf("failed to write %s: %w", opts.OutFile, err)
	}
	return summary, nil
}

func Run(args []string) {
	fs := flag.NewFlagSet("peptide_properties", flag.ExitOnError)
	inFile := fs.String("in_file", "", "Input peptide predictions (Macrel table or FASTA, optionally gzipped)")
	outFile := fs.String("out_file", "", "Output TSV file with calculated properties")
	format := fs.String("format", "auto", "Input format: 'auto', 'macrel' or 'fasta'")
	threads := fs.Int("threads", runtime.NumCPU(), "Worker goroutines")
	err := fs.Parse(args)										// Parse inputs
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		os.Exit(1)
	}

	if len(fs.Args()) > 0 {										// If unparsed arguments remain:
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())	// Flag the error and report it
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if *inFile == "" || *outFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -in_file and -out_file are required")
		fs.Usage()
		os.Exit(1)
	}

	// Ctrl-C stops the batch between records
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := Execute(ctx, Options{
		InFile:  *inFile,
		OutFile: *outFile,
		Format:  *format,
		Threads: *threads,
	})
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "Interrupted")
		os.Exit(130)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Printf("Properties calculated for %d sequences\n", summary.Total)
	if summary.Failed > 0 {
		fmt.Printf("Sequences skipped after errors: %d\n", summary.Failed)
	}
	fmt.Printf("Results written to %s\n", *outFile)
}
