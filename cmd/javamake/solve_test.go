package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunSolveWritesOneFilePerTarget(t *testing.T) {
	t.Parallel()
	outDir := t.TempDir()

	var stdout, stderr bytes.Buffer
	args := []string{"--out", outDir, "--seed", "3", "--", "org.example.demo.Greeting", "int"}
	if err := runSolve(args, &stdout, &stderr); err != nil {
		t.Fatalf("runSolve: %v\nstderr: %s", err, stderr.String())
	}

	for _, name := range []string{"Main_Greeting.java", "Main_int.java"} {
		path := filepath.Join(outDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("expected %s to be written: %v", name, err)
		}
		if !strings.Contains(string(data), "package org.example;") {
			t.Errorf("%s missing package declaration", name)
		}
	}

	out := stdout.String()
	if !strings.Contains(out, "wrote") {
		t.Errorf("expected a success line, got: %q", out)
	}
}

func TestRunSolveRequiresAClassName(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := runSolve([]string{"--out", t.TempDir()}, &stdout, &stderr)
	if err == nil {
		t.Fatal("expected an error when no target class is given")
	}
}

func TestRunSolveVerboseTracesTrials(t *testing.T) {
	t.Parallel()
	outDir := t.TempDir()

	var stdout, stderr bytes.Buffer
	args := []string{"-v", "--out", outDir, "--seed", "1", "--", "int"}
	if err := runSolve(args, &stdout, &stderr); err != nil {
		t.Fatalf("runSolve: %v\nstderr: %s", err, stderr.String())
	}
	if !strings.Contains(stderr.String(), "trial") {
		t.Errorf("expected per-trial trace lines on stderr, got: %q", stderr.String())
	}
}

func TestSplitTargetsSplitsOnDoubleDash(t *testing.T) {
	t.Parallel()

	jars, classes, err := splitTargets([]string{"a.jar", "b.jar", "--", "com.example.X", "com.example.Y"})
	if err != nil {
		t.Fatalf("splitTargets: %v", err)
	}
	if len(jars) != 2 || len(classes) != 2 {
		t.Errorf("jars=%v classes=%v", jars, classes)
	}
}

func TestSplitTargetsWithoutDoubleDashTreatsEverythingAsClasses(t *testing.T) {
	t.Parallel()

	jars, classes, err := splitTargets([]string{"com.example.X"})
	if err != nil {
		t.Fatalf("splitTargets: %v", err)
	}
	if len(jars) != 0 || len(classes) != 1 {
		t.Errorf("jars=%v classes=%v", jars, classes)
	}
}

func TestSimpleName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"com.example.Widget":  "Widget",
		"int":                 "int",
		"com.example.Outer$In": "In",
	}
	for in, want := range cases {
		if got := simpleName(in); got != want {
			t.Errorf("simpleName(%q) = %q, want %q", in, got, want)
		}
	}
}
