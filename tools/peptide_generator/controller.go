package peptide_generator

import (
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"
)

func Run(args []string) {
	fs := flag.NewFlagSet("peptide_generator", flag.ExitOnError)

	mode := fs.String("mode", "fasta", "Output type: fasta or macrel")
	name := fs.String("name", "random_peptide", "Sequence name prefix")
	count := fs.Int("count", 1, "Number of random peptides")
	minLen := fs.Int("min_length", 10, "Minimum peptide length")
	maxLen := fs.Int("max_length", 50, "Maximum peptide length")
	seed := fs.Int64("seed", 0, "Random seed")
	outFile := fs.String("out_file", "", "Output file")
	gzipOut := fs.Bool("gzip", false, "Compress output with gzip")

	var multiSeq MultiSeqFlag
	fs.Var(&multiSeq, "seq", "Use format name,length (repeatable)")

	err := fs.Parse(args)										// Parse inputs
	if err != nil {
		fmt.Println("Error parsing flags:", err)				// Check for outright input failures
		os.Exit(1)												// E.g., expected int by recieved str
	}

	if len(fs.Args()) > 0 {										// If unparsed arguments remain:
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())	// Flag the error and report it
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if *count < 1 || *minLen < 1 || *maxLen < 1 {
		fmt.Fprintln(os.Stderr, "Error: -count, -min_length and -max_length must be positive.")
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	reqs := []PeptideRequest(multiSeq)
	if len(reqs) == 0 {
		reqs = Requests(rng, *name, *count, *minLen, *maxLen)
	}

	if *outFile == "" {
		if *gzipOut {
			fmt.Fprintln(os.Stderr, "Cannot gzip to stdout. Specify -out_file.")
			os.Exit(1)
		}
		if err := Write(os.Stdout, rng, reqs, *mode); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}

	path := *outFile
	if *gzipOut {
		path += ".gz"
	}
	if err := writeFile(path, *gzipOut, func(w io.Writer) error {
		return Write(w, rng, reqs, *mode)
	}); err != nil {
		fmt.Println("Error writing file:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d peptides to %s\n", len(reqs), path)
}

func writeFile(path string, compress bool, fill func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	var w io.Writer = file
	var gz *gzip.Writer
	if compress {
		gz = gzip.NewWriter(file)
		w = gz
	}
	if err := fill(w); err != nil {
		file.Close()
		return err
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			file.Close()
			return err
		}
	}
	return file.Close()
}
