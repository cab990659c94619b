package visualize

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"ampscan_go/tools/peptide_properties"
	common "ampscan_go/utils"
)

// Options for one visualization run.
type Options struct {
	Properties  string
	Predictions string
	OutDir      string
	Format      string // png or svg
	HTML        bool
}

// Execute renders every figure and the summary into opts.OutDir and returns
// the paths written.
func Execute(opts Options) ([]string, error) {
	if opts.Format == "" {
		opts.Format = "png"
	}
	if opts.Format != "png" && opts.Format != "svg" {
		return nil, fmt.Errorf("unsupported image format %q", opts.Format)
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, err
	}

	fmt.Printf("Loading data from %s...\n", opts.Properties)
	records, err := LoadProperties(opts.Properties)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("no peptides to visualize")
	}
	fmt.Printf("Loaded %d peptides\n", len(records))

	if opts.Predictions != "" {
		preds, err := peptide_properties.LoadSequences(opts.Predictions, common.FormatMacrel)
		if err != nil {
			return nil, fmt.Errorf("predictions: %w", err)
		}
		fmt.Printf("Loaded %d predictions from %s\n", len(preds), opts.Predictions)
	}

	builders := []func() (Figure, error){
		func() (Figure, error) { return DistributionFigure(records) },
		func() (Figure, error) { return StructureFigure(records) },
		func() (Figure, error) { return ChargeFigure(records) },
	}
	titles := []string{"Property Distributions", "Secondary Structure", "Charge vs Hydrophobicity"}

	formats := []string{opts.Format}
	if opts.HTML && opts.Format != "svg" {
		formats = append(formats, "svg")
	}

	// Render figures concurrently; each goroutine owns its slot.
	type rendered struct {
		name string
		out  map[string][]byte
		err  error
	}
	results := make([]rendered, len(builders))
	var wg sync.WaitGroup
	wg.Add(len(builders))
	for i, build := range builders {
		go func(i int, build func() (Figure, error)) {
			defer wg.Done()
			fig, err := build()
			if err != nil {
				results[i].err = err
				return
			}
			results[i].name = fig.Name
			results[i].out = make(map[string][]byte)
			for _, format := range formats {
				b, err := fig.Render(format)
				if err != nil {
					results[i].err = fmt.Errorf("%s: %w", fig.Name, err)
					return
				}
				results[i].out[format] = b
			}
		}(i, build)
	}
	wg.Wait()

	var written []string
	var svgs []string
	for _, r := range results {
		if r.err != nil {
			return written, r.err
		}
		path := filepath.Join(opts.OutDir, r.name+"."+opts.Format)
		if err := os.WriteFile(path, r.out[opts.Format], 0o644); err != nil {
			return written, err
		}
		fmt.Println("Saved:", path)
		written = append(written, path)
		svgs = append(svgs, string(r.out["svg"]))
	}

	stats := Summarize(records)
	summaryPath := filepath.Join(opts.OutDir, "summary_stats.txt")
	if err := WriteSummaryFile(summaryPath, stats); err != nil {
		return written, err
	}
	fmt.Println("Saved:", summaryPath)
	written = append(written, summaryPath)
	PrintSummary(os.Stdout, stats)

	if opts.HTML {
		htmlPath := filepath.Join(opts.OutDir, "report.html")
		if err := WriteHTMLReport(htmlPath, stats, titles, svgs); err != nil {
			return written, err
		}
		fmt.Println("Saved:", htmlPath)
		written = append(written, htmlPath)
	}
	return written, nil
}

func Run(args []string) {
	fs := flag.NewFlagSet("visualize", flag.ExitOnError)
	properties := fs.String("properties", "", "Peptide properties TSV file")
	predictions := fs.String("predictions", "", "Macrel predictions file (optional)")
	outDir := fs.String("outdir", "plots", "Output directory for plots")
	format := fs.String("format", "png", "Image format: 'png' or 'svg'")
	htmlOut := fs.Bool("html", false, "Also write an HTML report with embedded plots")
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

	if *properties == "" {
		fmt.Fprintln(os.Stderr, "Error: -properties is required")
		fs.Usage()
		os.Exit(1)
	}

	written, err := Execute(Options{
		Properties:  *properties,
		Predictions: *predictions,
		OutDir:      *outDir,
		Format:      *format,
		HTML:        *htmlOut,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Printf("\nAll visualizations saved to: %s/\n", *outDir)
	fmt.Println("\nGenerated files:")
	for _, path := range written {
		fmt.Println("  -", filepath.Base(path))
	}
}
