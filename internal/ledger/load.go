package ledger

import (
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/klauspost/pgzip"
	"gopkg.in/yaml.v3"
)

// Open opens a ledger file for reading. Files ending in ".gz" are
// transparently decompressed.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open ledger")
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	gz, err := pgzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "create gzip reader")
	}
	return &gzipFile{Reader: gz, f: f}, nil
}

// gzipFile closes both the gzip stream and the underlying file.
type gzipFile struct {
	*pgzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	gzErr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return errors.Wrap(err, "close ledger")
	}
	if gzErr != nil {
		return errors.Wrap(gzErr, "close gzip reader")
	}
	return nil
}

// Decode parses a YAML ledger. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, errors.Wrap(err, "decode ledger")
	}
	return &doc, nil
}

// Load opens and decodes the ledger at path.
func Load(path string) (_ *Document, rerr error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rc.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()
	return Decode(rc)
}
