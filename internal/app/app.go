// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"phylip/internal/cli"
	"phylip/internal/cmdutil"
	"phylip/internal/version"
	"phylip/internal/writers"
	"phylip/pkg/phylip"
)

const name = "phylip-fmt"

// Exit codes.
const (
	exitOK       = 0
	exitInput    = 1
	exitUsage    = 2
	exitOutput   = 3
	exitCanceled = 130
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		code := exitOK
		if !errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintln(stderr, err)
			code = exitUsage
		}
		fs.SetOutput(outw)
		fs.Usage()
		return flushed(outw, stderr, code)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flushed(outw, stderr, exitOK)
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet)
	alns, err := cmdutil.LoadAlignments(parent, opts.Inputs, log)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return exitCanceled
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return exitInput
	}
	for _, a := range alns {
		if bad := cmdutil.MismatchedEntries(a); len(bad) > 0 {
			cmdutil.Warnf(stderr, opts.Quiet, "%s: %d taxa differ from nchar %d: %s",
				a.Source, len(bad), a.Header.NChar, strings.Join(bad, ", "))
		}
	}

	payload := writers.Payload{
		Alignments: alns,
		Format:     phylip.Format{Wrap: opts.Wrap, Term: opts.Terminator()},
	}
	switch {
	case opts.Out == "":
		err = writers.Write(opts.Output, outw, payload)
		if err == nil {
			err = outw.Flush()
		}
	case opts.Output == "phylip":
		err = writeStream(opts, alns, log)
	default:
		err = writeFile(opts, payload)
	}

	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return exitOK
	case errors.Is(err, phylip.ErrLengthMismatch):
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return exitInput
	default:
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return exitOutput
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// writeStream writes the merged alignment to --out through a phylip.Stream,
// so the file gets exactly the layout the library produces.
func writeStream(opts cli.Options, alns []writers.Alignment, log *slog.Logger) error {
	entries, err := writers.Merge(alns)
	if err != nil {
		return err
	}
	var src phylip.Source = phylip.WritePath{Path: opts.Out}
	if opts.Append {
		src = phylip.AppendPath{Path: opts.Out}
	}
	return phylip.With(src, func(s *phylip.Stream) error {
		return s.WriteAll(entries)
	},
		phylip.WithWrap(opts.Wrap),
		phylip.WithLineTerminator(opts.Terminator()),
		phylip.WithLogger(log),
	)
}

// writeFile handles --out for the non-PHYLIP formats.
func writeFile(opts cli.Options, p writers.Payload) (err error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if opts.Append {
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	fh, err := os.OpenFile(opts.Out, flags, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(fh)
	if err := writers.Write(opts.Output, bw, p); err != nil {
		return err
	}
	return bw.Flush()
}

func flushed(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return exitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitOutput
	}
	return code
}
