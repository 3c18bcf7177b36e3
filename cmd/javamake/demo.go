package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/phobologic/javamake/internal/pipeline"
	"github.com/phobologic/javamake/internal/solver"
	"github.com/phobologic/javamake/internal/view/memview"
)

// runDemo implements `javamake demo`: runs the full pipeline against the
// built-in memview universe and prints the emitted Java source, for trying
// javamake without a JDK or any jars on hand.
func runDemo(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("javamake demo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var seed int64
	fs.Int64Var(&seed, "seed", 0, "RNG seed (0 selects a fixed default seed)")

	fs.Usage = func() {
		fmt.Fprint(stderr, `Usage: javamake demo [flags] <ClassName>...

ClassName is resolved against a small built-in universe:
  org.example.demo.Greeting, org.example.demo.Shape,
  org.example.demo.Circle, org.example.demo.Shapes,
  java.lang.Object, java.lang.String, int, int[], ...

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	targets := fs.Args()
	if len(targets) == 0 {
		targets = []string{"org.example.demo.Greeting"}
	}

	v := memview.Demo()
	opts := solver.DefaultOptions()
	opts.Seed = seed

	results := pipeline.RunMany(v, targets, opts)

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", res.Target, res.Err)
			continue
		}
		fmt.Fprintf(stdout, "// ---- %s (cost %d) ----\n", res.Target, res.Plan.Cost)
		fmt.Fprint(stdout, res.Source)
	}

	return nil
}
