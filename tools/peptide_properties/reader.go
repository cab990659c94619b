package peptide_properties

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"ampscan_go/protparam"
	common "ampscan_go/utils"
)

// LoadSequences opens path (plain or gzip) and parses it in the given format.
// An empty format is detected from the file name.
func LoadSequences(path, format string) ([]protparam.Sequence, error) {
	if format == "" || format == "auto" {
		format = common.DetectFormat(path)
	}

	rc, err := common.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	switch format {
	case common.FormatMacrel:
		return ReadMacrel(rc)
	case common.FormatFasta:
		return ReadFasta(rc)
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
}

// ReadMacrel parses a Macrel prediction table. Lines starting with '#' are
// comments and the first remaining line is the column header. Column 0 is
// the sequence id and column 1 the peptide. A repeated id replaces the
// earlier peptide but keeps its original position.
func ReadMacrel(r io.Reader) ([]protparam.Sequence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var seqs []protparam.Sequence
	position := make(map[string]int)
	headerSeen := false

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.HasPrefix(line, "#") {
			continue
		}
		if !headerSeen {
			headerSeen = true
			continue
		}
		parts := strings.Split(strings.TrimSpace(line), "\t")
		if len(parts) < 2 {
			continue
		}
		id, peptide := parts[0], parts[1]

		if i, dup := position[id]; dup {
			seqs[i].Residues = peptide
			continue
		}
		position[id] = len(seqs)
		seqs = append(seqs, protparam.Sequence{ID: id, Residues: peptide})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return seqs, nil
}

// ReadFasta parses protein FASTA records. The id is the first word of the
// header line.
func ReadFasta(r io.Reader) ([]protparam.Sequence, error) {
	template := linear.NewSeq("", nil, alphabet.Protein)
	sc := seqio.NewScanner(fasta.NewReader(r, template))

	var seqs []protparam.Sequence
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("unexpected sequence type %T", sc.Seq())
		}
		var b strings.Builder
		b.Grow(len(s.Seq))
		for _, l := range s.Seq {
			b.WriteByte(byte(l))
		}
		seqs = append(seqs, protparam.Sequence{ID: s.ID, Residues: b.String()})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("failed during read: %w", err)
	}
	return seqs, nil
}
