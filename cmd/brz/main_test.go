package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := out.String(); !strings.HasPrefix(got, "brz dev\n") {
		t.Errorf("output = %q, want version line", got)
	}
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "log-level", "log-file", "no-watch"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not defined", name)
		}
	}
	if cmd.Flags().ShorthandLookup("c") == nil {
		t.Error("shorthand -c not defined")
	}
}

func TestRootCmdInvalidLogLevel(t *testing.T) {
	cmd := newRootCmd()
	var errOut bytes.Buffer
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.toml"), "--log-level", "loud"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Execute() expected error for invalid log level")
	}
	if !strings.Contains(err.Error(), "log level") {
		t.Errorf("Execute() error = %v, want log level error", err)
	}
}
