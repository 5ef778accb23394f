package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	fs.BoolVar(&b, "bool", false, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--bool", "pos1", "--", "pos2"})
	if len(flagArgs) != 1 || len(posArgs) != 2 || posArgs[0] != "pos1" || posArgs[1] != "pos2" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.phy")
	b := filepath.Join(dir, "b.phy")
	_ = os.WriteFile(a, []byte("1 1\na A\n"), 0o644)
	_ = os.WriteFile(b, []byte("1 1\nb A\n"), 0o644)
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.phy")})
	if err != nil || len(got) != 2 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
}

func TestSplitKeepsFlagValues(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	fs.String("output", "", "")
	fs.Bool("q", false, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"in.phy", "--output", "json", "-q", "-", "--wrap=60"})
	if strings.Join(flagArgs, " ") != "--output json -q --wrap=60" {
		t.Fatalf("flags: %v", flagArgs)
	}
	if strings.Join(posArgs, " ") != "in.phy -" {
		t.Fatalf("positionals: %v", posArgs)
	}
}

func TestExpandPositionalsDedup(t *testing.T) {
	got, err := ExpandPositionals([]string{"a.phy", "b.phy", "a.phy", "-"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(got, " ") != "a.phy b.phy -" {
		t.Fatalf("got %v", got)
	}
}
