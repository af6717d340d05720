package scanner

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Source is re-opened from the start for every window size.
type Source interface {
	Open() (io.ReadCloser, error)
	Name() string
}

type FileSource struct {
	Path string
}

func (s FileSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.Wrap(err, "open source")
	}
	return f, nil
}

func (s FileSource) Name() string {
	return s.Path
}

// BytesSource replays an in-memory buffer, used for stdin which can only be read once.
type BytesSource struct {
	Label string
	Data  []byte
}

// ReadAllSource drains r into a BytesSource.
func ReadAllSource(label string, r io.Reader) (*BytesSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", label)
	}
	return &BytesSource{Label: label, Data: data}, nil
}

func (s *BytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.Data)), nil
}

func (s *BytesSource) Name() string {
	return s.Label
}
