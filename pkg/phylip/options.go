// pkg/phylip/options.go
package phylip

import "log/slog"

type config struct {
	format Format
	log    *slog.Logger
}

func defaultConfig() config {
	return config{format: DefaultFormat(), log: slog.New(slog.DiscardHandler)}
}

// Option configures a Stream at Open.
type Option func(*config)

// WithWrap sets the session wrap width used at Close.
func WithWrap(n int) Option { return func(c *config) { c.format.Wrap = n } }

// WithLineTerminator sets the session line terminator used at Close.
func WithLineTerminator(term string) Option { return func(c *config) { c.format.Term = term } }

// WithLogger routes the stream's diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WriteOption overrides the session format for a WriteEntry call. Only the
// first successful write decides the format; see Stream.WriteEntry.
type WriteOption func(*Format)

// WrapAt sets the wrap width.
func WrapAt(n int) WriteOption { return func(f *Format) { f.Wrap = n } }

// LineTerminator sets the line terminator.
func LineTerminator(term string) WriteOption { return func(f *Format) { f.Term = term } }
