package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/phobologic/javamake/internal/compilecheck"
	"github.com/phobologic/javamake/internal/jarset"
	"github.com/phobologic/javamake/internal/pipeline"
	"github.com/phobologic/javamake/internal/solver"
	"github.com/phobologic/javamake/internal/view/memview"
)

// runSolve implements `javamake solve`: fetch jars, mine a view, solve a
// construction plan for each target class, and write Main_<Simple>.java
// files. There is no real bytecode loader in this repository (spec.md
// §2.1 treats it as an external collaborator); solve builds its view from
// the memview demo universe so the wiring is exercisable end-to-end, and
// documents the extension point where a real jar-backed loader would
// plug in.
func runSolve(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("javamake solve", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		trials     int
		costLimit  int
		depthLimit int
		minCost    int
		seed       int64
		outDir     string
		cacheDir   string
		verbose    bool
		check      bool
	)

	fs.IntVar(&trials, "n", 1000, "number of Monte Carlo trials")
	fs.IntVar(&trials, "trials", 1000, "number of Monte Carlo trials")
	fs.IntVar(&costLimit, "c", 50, "abort a trial once its cost exceeds this")
	fs.IntVar(&costLimit, "cost-limit", 50, "abort a trial once its cost exceeds this")
	fs.IntVar(&depthLimit, "d", 25, "abort a trial once its depth exceeds this")
	fs.IntVar(&depthLimit, "depth-limit", 25, "abort a trial once its depth exceeds this")
	fs.IntVar(&minCost, "min-cost", 0, "discard completed trials cheaper than this")
	fs.Int64Var(&seed, "seed", 0, "RNG seed (0 selects a fixed default seed)")
	fs.StringVar(&outDir, "out", ".", "directory to write Main_<Class>.java files into")
	fs.StringVar(&cacheDir, "cache", "", "jar download cache directory")
	fs.BoolVar(&verbose, "v", false, "print discarded-trial traces to stderr")
	fs.BoolVar(&verbose, "verbose", false, "print discarded-trial traces to stderr")
	fs.BoolVar(&check, "check", false, "invoke javac against the emitted source")

	fs.Usage = func() {
		fmt.Fprint(stderr, `Usage: javamake solve [flags] <jar-url>... -- <FullyQualifiedClassName>...

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(reorderArgs(args)); err != nil {
		return err
	}

	jarURLs, classNames, err := splitTargets(fs.Args())
	if err != nil {
		return err
	}
	if len(classNames) == 0 {
		return fmt.Errorf("no target classes given (expected ... -- <ClassName>...)")
	}

	if cacheDir == "" {
		cacheDir = filepath.Join(os.TempDir(), "javamake-jars")
	}

	ctx := context.Background()
	var jarPaths []string
	if len(jarURLs) > 0 {
		jarPaths, err = jarset.Fetch(ctx, jarURLs, cacheDir)
		if err != nil {
			return fmt.Errorf("fetching jars: %w", err)
		}
	}

	// Extension point: a real jar-backed view.View loader would build its
	// index from jarPaths here. Out of scope per spec.md §2.1; the demo
	// universe keeps the rest of the pipeline runnable without one.
	_ = jarPaths
	v := memview.Demo()

	opts := solver.Options{
		NumberOfTrials: trials,
		CostLimit:      costLimit,
		DepthLimit:     depthLimit,
		MinCost:        minCost,
		Seed:           seed,
		Trace:          verbose,
	}

	results := pipeline.RunMany(v, classNames, opts)

	var firstErr error
	for _, res := range results {
		if verbose {
			for _, t := range res.Trials {
				status := "ok"
				if !t.Success {
					status = "discarded: " + t.Reason
				}
				fmt.Fprintf(stderr, "%s trial %s cost=%d %s\n", res.Target, t.ID, t.Cost, status)
			}
		}

		if res.Err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", res.Target, res.Err)
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}

		outPath := filepath.Join(outDir, "Main_"+simpleName(res.Target)+".java")
		if err := os.WriteFile(outPath, []byte(res.Source), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		fmt.Fprintf(stdout, "%s: wrote %s (cost %d)\n", res.Target, outPath, res.Plan.Cost)

		if check {
			result, err := compilecheck.Check(ctx, res.Source, jarPaths)
			if err != nil {
				return fmt.Errorf("checking %s: %w", res.Target, err)
			}
			if !result.OK {
				fmt.Fprintf(stderr, "%s: compile check failed:\n%s\n", res.Target, result.Output)
				if firstErr == nil {
					firstErr = fmt.Errorf("compile check failed for %s", res.Target)
				}
			}
		}
	}

	return firstErr
}

// splitTargets splits positional into jar URLs and class names on the
// first literal "--".
func splitTargets(positional []string) (jars, classes []string, err error) {
	for i, a := range positional {
		if a == "--" {
			return positional[:i], positional[i+1:], nil
		}
	}
	return nil, positional, nil
}

func simpleName(fqcn string) string {
	for i := len(fqcn) - 1; i >= 0; i-- {
		if fqcn[i] == '.' || fqcn[i] == '$' {
			return fqcn[i+1:]
		}
	}
	return fqcn
}
