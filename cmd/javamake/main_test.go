package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestRunVersion(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run([]string{"-V"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), "javamake") {
		t.Errorf("version output: %q", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if err := run([]string{"help"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), "solve") {
		t.Error("help output missing solve subcommand")
	}
}

func TestRunNoArgs(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if err := run(nil, &stdout, &stderr); err == nil {
		t.Fatal("expected error for missing subcommand")
	}
}

func TestRunUnknownSubcommand(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run([]string{"bogus"}, &stdout, &stderr)
	if err == nil {
		t.Fatal("expected error for unknown subcommand")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestReorderArgsMovesPositionalAfterFlags(t *testing.T) {
	t.Parallel()

	got := reorderArgs([]string{"http://a/a.jar", "-n", "10", "--check", "--", "com.example.Widget"})
	want := []string{"-n", "10", "--check", "http://a/a.jar", "--", "com.example.Widget"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reorderArgs = %v, want %v", got, want)
	}
}

func TestReorderArgsStopsAtDoubleDash(t *testing.T) {
	t.Parallel()

	got := reorderArgs([]string{"-v", "--", "-n", "not-a-flag"})
	want := []string{"-v", "--", "-n", "not-a-flag"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reorderArgs = %v, want %v", got, want)
	}
}
