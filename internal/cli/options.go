// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"phylip/internal/cliutil"
	"phylip/internal/writers"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Inputs []string

	// Output
	Output string // phylip | json | jsonl | info
	Wrap   int
	CRLF   bool
	Out    string // "" = stdout
	Append bool

	// Misc
	Quiet   bool
	Version bool
}

// Terminator returns the line terminator selected by --crlf.
func (o Options) Terminator() string {
	if o.CRLF {
		return "\r\n"
	}
	return "\n"
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and input paths may be interleaved.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Output, "output", "phylip", "output: "+strings.Join(writers.Formats(), " | ")+" [phylip]")
	fs.StringVar(&opt.Output, "o", "phylip", "alias of --output")
	fs.IntVar(&opt.Wrap, "wrap", 80, "wrap output lines at N columns, name included [80]")
	fs.IntVar(&opt.Wrap, "w", 80, "alias of --wrap")
	fs.BoolVar(&opt.CRLF, "crlf", false, "terminate output lines with CRLF [false]")
	fs.StringVar(&opt.Out, "out", "", "write to file instead of STDOUT")
	fs.BoolVar(&opt.Append, "append", false, "append to --out instead of truncating [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")
	fs.BoolVar(&help, "help", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	inputs, err := cliutil.ExpandPositionals(append(posArgs, fs.Args()...))
	if err != nil {
		return opt, err
	}
	opt.Inputs = inputs
	return opt, Validate(opt)
}

// Validate applies CLI invariants.
func Validate(o Options) error {
	if len(o.Inputs) == 0 {
		return errors.New("at least one PHYLIP input is required")
	}
	if !writers.Known(o.Output) {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Wrap <= 0 {
		return errors.New("--wrap must be > 0")
	}
	if o.Append && o.Out == "" {
		return errors.New("--append requires --out")
	}
	n := 0
	for _, in := range o.Inputs {
		if in == "-" {
			n++
		}
	}
	if n > 1 {
		return errors.New("STDIN ('-') may be given only once")
	}
	return nil
}
