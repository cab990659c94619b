// Common package contains input helpers shared by the AMPscan tools.
// Exporting these functions from the Common package reduces redundant code
package common

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// gzipReadCloser closes both the gzip stream and the file under it.
type gzipReadCloser struct {
	*gzip.Reader
	file io.Closer
}

func (g gzipReadCloser) Close() error {
	gzErr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return gzErr
}

// OpenInput opens a plain or gzip-compressed file. Compression is detected
// from the magic bytes (0x1F 0x8B), not the file name. "-" reads stdin.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return wrapReader(io.NopCloser(os.Stdin))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	rc, err := wrapReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return rc, nil
}

// wrapReader peeks at the first two bytes and layers a gzip reader on top
// when they carry the gzip magic number.
func wrapReader(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	magic, _ := br.Peek(2)
	if len(magic) == 2 && magic[0] == 0x1F && magic[1] == 0x8B {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return gzipReadCloser{Reader: gr, file: rc}, nil
	}
	return struct {
		io.Reader
		io.Closer
	}{br, rc}, nil
}

// Input formats understood by the peptide tools.
const (
	FormatMacrel = "macrel"
	FormatFasta  = "fasta"
)

var fastaExtensions = []string{".fasta", ".fa", ".faa", ".fna"}

// DetectFormat guesses the input format from the file name, ignoring a
// trailing .gz. Anything that is not a FASTA extension is read as a Macrel
// prediction table.
func DetectFormat(path string) string {
	name := strings.ToLower(path)
	name = strings.TrimSuffix(name, ".gz")
	ext := filepath.Ext(name)
	for _, fe := range fastaExtensions {
		if ext == fe {
			return FormatFasta
		}
	}
	return FormatMacrel
}

// HasFastaExtension reports whether name ends in one of exts.
func HasFastaExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
