// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"phylip/internal/version"
)

// InstallUsage sets the help text printed by fs.Usage.
func InstallUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – PHYLIP alignment reformatter\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s [flags] FILE...   (FILE may be '-' for STDIN; gzip/zstd detected)\n", name)

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string   Output: phylip | json | jsonl | info [%s]\n", def("output"))
		fmt.Fprintf(out, "  -w, --wrap int        Wrap lines at N columns, name included [%s]\n", def("wrap"))
		fmt.Fprintf(out, "      --crlf            Terminate lines with CRLF [%s]\n", def("crlf"))
		fmt.Fprintln(out, "      --out path        Write to file instead of STDOUT")
		fmt.Fprintf(out, "      --append          Append to --out instead of truncating [%s]\n", def("append"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet           Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version         Print version and exit")
		fmt.Fprintln(out, "  -h, --help            Show this help and exit")
	}
}
