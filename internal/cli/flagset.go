// internal/cli/flagset.go
package cli

import "flag"

// NewFlagSet returns a FlagSet with ContinueOnError and the tool's help text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	InstallUsage(fs, name)
	return fs
}
