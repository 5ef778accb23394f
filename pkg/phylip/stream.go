// pkg/phylip/stream.go
package phylip

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Stream reads or writes one PHYLIP alignment.
//
// Reading parses the whole body on first access and then hands out entries
// in file order. Writing buffers entries in memory; nothing reaches the
// underlying file until Close, which emits the header and an interleaved
// body. A Stream is not safe for concurrent use.
type Stream struct {
	mode   Mode
	closed bool

	r io.ReadCloser  // read modes
	w io.WriteCloser // write modes

	header   Header
	parsed   bool
	parseErr error
	entries  []Entry
	cursor   int

	format Format
	log    *slog.Logger
}

// Open constructs a Stream over src.
func Open(src Source, opts ...Option) (*Stream, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.format.Wrap <= 0 {
		return nil, ErrInvalidWrap
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidMode)
	}

	s := &Stream{mode: src.Mode(), format: cfg.format, log: cfg.log}
	switch v := src.(type) {
	case ReadPath:
		rc, err := openReader(v.Path)
		if err != nil {
			return nil, fmt.Errorf("phylip open %s: %w", v.Path, err)
		}
		s.r = rc
	case WritePath:
		f, err := openWriter(v.Path, false)
		if err != nil {
			return nil, fmt.Errorf("phylip open %s: %w", v.Path, err)
		}
		s.w = f
	case AppendPath:
		f, err := openWriter(v.Path, true)
		if err != nil {
			return nil, fmt.Errorf("phylip open %s: %w", v.Path, err)
		}
		s.w = f
	case Handle:
		if v.R == nil {
			return nil, fmt.Errorf("%w: nil handle", ErrInvalidMode)
		}
		s.r = handleCloser{v.R}
	case Text:
		s.r = io.NopCloser(strings.NewReader(v.Data))
	default:
		return nil, fmt.Errorf("%w: unsupported source %T", ErrInvalidMode, src)
	}
	return s, nil
}

// With opens src, runs fn and always closes the stream. The first error
// wins.
func With(src Source, fn func(*Stream) error, opts ...Option) (err error) {
	s, err := Open(src, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(s)
}

// handleCloser closes the wrapped reader only if it can be closed.
type handleCloser struct{ io.Reader }

func (h handleCloser) Close() error {
	if c, ok := h.Reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *Stream) Mode() Mode     { return s.mode }
func (s *Stream) Closed() bool   { return s.closed }
func (s *Stream) NTax() int      { return s.header.NTax }
func (s *Stream) NChar() int     { return s.header.NChar }
func (s *Stream) Header() Header { return s.header }

func (s *Stream) parse() error {
	if s.parsed {
		return s.parseErr
	}
	s.parsed = true
	h, entries, err := Decode(s.r)
	if err != nil {
		s.parseErr = err
		return err
	}
	s.header, s.entries = h, entries
	s.log.Debug("phylip parsed", "mode", s.mode, "ntax", h.NTax, "nchar", h.NChar)
	return nil
}

// ReadEntry returns the next entry. After the last one it returns io.EOF,
// and keeps doing so; the cursor is never rewound.
func (s *Stream) ReadEntry() (Entry, error) {
	if s.closed {
		return Entry{}, ErrClosed
	}
	if s.mode.Writable() {
		return Entry{}, ErrNotReadable
	}
	if err := s.parse(); err != nil {
		return Entry{}, err
	}
	if s.cursor >= len(s.entries) {
		return Entry{}, io.EOF
	}
	e := s.entries[s.cursor]
	s.cursor++
	return e, nil
}

// ReadAll returns every remaining entry.
func (s *Stream) ReadAll() ([]Entry, error) {
	var out []Entry
	for e, err := range s.All() {
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, nil
}

// All iterates the remaining entries. It shares the ReadEntry cursor, so a
// second range over an exhausted stream yields nothing. A non-nil error is
// yielded once and ends the iteration.
func (s *Stream) All() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for {
			e, err := s.ReadEntry()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(e, err) || err != nil {
				return
			}
		}
	}
}

// WriteEntry buffers e for output at Close. The first successful call fixes
// nchar and the session format (stream options overridden by opts); later
// calls must match nchar and cannot change the format. A failing call leaves
// the buffer unchanged.
func (s *Stream) WriteEntry(e Entry, opts ...WriteOption) error {
	if s.closed {
		return ErrClosed
	}
	if !s.mode.Writable() {
		return ErrNotWritable
	}
	f := s.format
	for _, o := range opts {
		o(&f)
	}
	if f.Wrap <= 0 {
		return ErrInvalidWrap
	}
	if e.Name == "" || e.Sequence == "" {
		return ErrMissingField
	}

	n := utf8.RuneCountInString(e.Sequence)
	if len(s.entries) == 0 {
		s.header.NChar = n
		s.format = f
	} else {
		if n != s.header.NChar {
			return &LengthMismatchError{Name: e.Name, Want: s.header.NChar, Got: n}
		}
		if f != s.format {
			s.log.Warn("phylip: format is fixed by the first write; ignoring",
				"wrap", f.Wrap, "term", f.Term, "session_wrap", s.format.Wrap)
		}
	}
	s.entries = append(s.entries, e)
	s.header.NTax++
	return nil
}

// WriteAll writes entries in order and stops at the first failure. Entries
// written before the failure stay buffered.
func (s *Stream) WriteAll(entries []Entry) error {
	for i, e := range entries {
		if err := s.WriteEntry(e); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}

// Flush delegates to the underlying stream when it can be flushed. Buffered
// entries are only written by Close.
func (s *Stream) Flush() error {
	if s.closed {
		return ErrClosed
	}
	var under any = s.r
	if s.w != nil {
		under = s.w
	}
	if h, ok := under.(handleCloser); ok {
		under = h.Reader
	}
	if f, ok := under.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close emits buffered output for write and append modes and releases the
// underlying stream. Closing twice is a no-op.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	var err error
	if s.mode.Writable() {
		err = Encode(s.w, s.entries, s.format)
		if cerr := s.w.Close(); err == nil {
			err = cerr
		}
		s.log.Debug("phylip written", "mode", s.mode, "ntax", s.header.NTax, "nchar", s.header.NChar)
	} else {
		err = s.r.Close()
	}
	s.closed = true
	return err
}
