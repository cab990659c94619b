package version_control

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.1.0"

	// Modular tools
	Benchmark          = "v1.1.0"
	Peptide_Properties = "v1.0.0"
	Visualize          = "v1.0.0"
	Samplesheet_Check  = "v1.0.0"
	Peptide_Generator  = "v2.1.0" // Formerly "Seq_Generator"
	Sanity_check       = "v1.1.0"
)
