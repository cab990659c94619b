package peptide_generator

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"ampscan_go/protparam"
)

// For repeated -seq arguments
type PeptideRequest struct {
	ID     string
	Length int
}

type MultiSeqFlag []PeptideRequest

func (m *MultiSeqFlag) String() string { return fmt.Sprint(*m) }
func (m *MultiSeqFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return fmt.Errorf("expected format: name,length")
	}
	length, err := strconv.Atoi(parts[1])
	if err != nil || length < 1 {
		return fmt.Errorf("invalid length")
	}
	*m = append(*m, PeptideRequest{ID: parts[0], Length: length})
	return nil
}

// GeneratePeptide draws length residues uniformly from the 20 standard
// amino acids.
func GeneratePeptide(rng *rand.Rand, length int) string {
	seq := make([]byte, length)
	for i := range seq {
		seq[i] = protparam.Alphabet[rng.Intn(protparam.NumResidues)]
	}
	return string(seq)
}

// Requests builds count requests named prefix_1..prefix_count with lengths
// drawn from [minLen, maxLen].
func Requests(rng *rand.Rand, prefix string, count, minLen, maxLen int) []PeptideRequest {
	if maxLen < minLen {
		minLen, maxLen = maxLen, minLen
	}
	reqs := make([]PeptideRequest, count)
	for i := range reqs {
		reqs[i] = PeptideRequest{
			ID:     fmt.Sprintf("%s_%d", prefix, i+1),
			Length: minLen + rng.Intn(maxLen-minLen+1),
		}
	}
	return reqs
}

// WrapFasta breaks seq into lines of at most width residues, each ending in
// a newline.
func WrapFasta(seq string, width int) string {
	var out strings.Builder
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		out.WriteString(seq[i:end] + "\n")
	}
	return out.String()
}

// macrelHeader mirrors the columns of a Macrel prediction table.
const macrelHeader = "Access\tSequence\tAMP_family\tAMP_probability\tHemolytic\tHemolytic_probability\n"

// Write emits the peptides as FASTA or as a Macrel-style table.
func Write(w io.Writer, rng *rand.Rand, reqs []PeptideRequest, mode string) error {
	switch mode {
	case "fasta":
		for _, req := range reqs {
			if _, err := fmt.Fprintf(w, ">%s\n%s", req.ID, WrapFasta(GeneratePeptide(rng, req.Length), 60)); err != nil {
				return err
			}
		}
	case "macrel":
		if _, err := io.WriteString(w, "# Random peptides from ampscan peptide_generator\n"+macrelHeader); err != nil {
			return err
		}
		for _, req := range reqs {
			_, err := fmt.Fprintf(w, "%s\t%s\tCLP\t%.3f\tNonHemo\t%.3f\n",
				req.ID, GeneratePeptide(rng, req.Length), rng.Float64(), rng.Float64())
			if err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown mode: %s", mode)
	}
	return nil
}
