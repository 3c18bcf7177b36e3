package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	sentinelStart = "<!-- javamake:start -->"
	sentinelEnd   = "<!-- javamake:end -->"
)

// runInit implements the `javamake init` subcommand, which writes (or
// updates) a javamake usage section in a CLAUDE.md file. Adapted from the
// teacher's repoguide init subcommand; the sentinel-wrapped-block mechanism
// is unchanged, only the documented usage differs.
func runInit(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("javamake init", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var dryRun bool
	fs.BoolVar(&dryRun, "dry-run", false, "print what would be written without modifying the file")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `Usage: javamake init [flags] [path-to-CLAUDE.md]

Write a javamake usage section to a CLAUDE.md file. The section is wrapped in
sentinel comments so it can be updated in place on subsequent runs without
touching surrounding content. Creates the file if it does not exist.

path-to-CLAUDE.md defaults to ./CLAUDE.md.

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	section := generateSection()

	if dryRun && fs.NArg() == 0 {
		_, _ = fmt.Fprintln(stdout, section)
		return nil
	}

	path := "CLAUDE.md"
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	existing, _ := os.ReadFile(path)
	updated := applySection(string(existing), section)

	if dryRun {
		_, _ = fmt.Fprint(stdout, updated)
		return nil
	}

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(stderr, "wrote javamake section to %s\n", path)
	return nil
}

func generateSection() string {
	const backtick = "`"
	const fence = "```"

	body := "## javamake — Construct a Java value from jars\n\n" +
		"Run " + backtick + "javamake solve" + backtick + " when you need a minimal, compilable program that\n" +
		"constructs an instance of a class, without hand-writing the\n" +
		"constructor/factory chain yourself. Class names resolve against the\n" +
		"built-in demo universe; fetched jars are used only as the --check classpath.\n\n" +
		"**Availability:** Check with " + backtick + "javamake --version" + backtick + " first; skip gracefully if\n" +
		"not found.\n\n" +
		"**Run it:**\n" +
		fence + "bash\n" +
		"javamake demo org.example.demo.Greeting           # no jars or JDK needed\n" +
		"javamake solve https://repo1.maven.org/.../a.jar -- com.example.Widget\n" +
		"javamake solve --check <jar-url>... -- <ClassName>...   # verify with javac\n" +
		"javamake solve -v --seed 42 <jar-url>... -- <ClassName>...  # deterministic, traced\n" +
		fence + "\n\n" +
		"**Output:** one " + backtick + "Main_<ClassSimpleName>.java" + backtick + " per target class, each a\n" +
		"standalone compilation unit in package " + backtick + "org.example" + backtick + " whose " + backtick + "main" + backtick + " builds the\n" +
		"value step by step and leaves it in a local variable.\n\n" +
		"**All flags:** " + backtick + "javamake solve --help" + backtick + ", " + backtick + "javamake demo --help" + backtick + "."

	return sentinelStart + "\n" + body + "\n" + sentinelEnd
}

// applySection inserts section into content, replacing an existing
// sentinel block if present or appending if not.
func applySection(content, section string) string {
	start := strings.Index(content, sentinelStart)
	end := strings.Index(content, sentinelEnd)

	if start >= 0 && end > start {
		return content[:start] + section + content[end+len(sentinelEnd):]
	}

	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + "\n" + section + "\n"
}
