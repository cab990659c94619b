package main

import (
	"fmt"
	"os"
	"strings"

	"ampscan_go/benchmark"
	version_control "ampscan_go/config"
	"ampscan_go/tools/check"
	"ampscan_go/tools/peptide_generator"
	"ampscan_go/tools/peptide_properties"
	"ampscan_go/tools/samplesheet_check"
	"ampscan_go/tools/visualize"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`AMPscan - Custom Help Menu
Usage:
  ampscan <tool> [options]

Tools:
  peptide_properties	Calculate physicochemical properties of peptides
  visualize		Plot property distributions and summary statistics
  samplesheet_check	Validate and normalize an input samplesheet
  peptide_generator	Generate random peptides (FASTA or Macrel table)
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in associtation with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("AMPscan - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tAMPscan:\t\t%s\n", version_control.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tPeptide Properties:\t%s\n", version_control.Peptide_Properties)
	fmt.Printf("\tVisualize:\t\t%s\n", version_control.Visualize)
	fmt.Printf("\tSamplesheet Check:\t%s\n", version_control.Samplesheet_Check)
	fmt.Printf("\tPeptide Generator:\t%s\n", version_control.Peptide_Generator)
	fmt.Printf("\tSanity Check:\t\t%s\n", version_control.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", version_control.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executible-specific help flags
	if len(os.Args) == 2 && (os.Args[1] == "-h" || os.Args[1] == "-help") {
		printCustomHelp()
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "peptide_properties":
			peptide_properties.Run(cleanedArgs)
		case "visualize":
			visualize.Run(cleanedArgs)
		case "samplesheet_check":
			samplesheet_check.Run(cleanedArgs)
		case "peptide_generator":
			peptide_generator.Run(cleanedArgs)
		case "check":
			check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("ampscan %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
