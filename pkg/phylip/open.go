// pkg/phylip/open.go
package phylip

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens path for reading ("-" is stdin, which is never closed)
// and transparently decompresses gzip or zstd input.
func openReader(path string) (io.ReadCloser, error) {
	var fh io.ReadCloser
	if path == "-" {
		fh = io.NopCloser(os.Stdin)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		fh = f
	}
	rc, err := decompress(fh)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return rc, nil
}

// decompress sniffs the first bytes of src and wraps it in the matching
// decoder. The returned closer also closes src.
func decompress(src io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(src)
	sig, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.HasPrefix(sig, gzipMagic):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, src}}, nil
	case bytes.HasPrefix(sig, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		zrc := zr.IOReadCloser()
		return &multiReadCloser{Reader: zrc, closers: []io.Closer{zrc, src}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{src}}, nil
}

func openWriter(path string, appendTo bool) (*os.File, error) {
	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if appendTo {
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	return os.OpenFile(path, flag, 0o644)
}
