// Command thompson builds Thompson NFAs from postfix patterns.
//
// Usage:
//
//	thompson -postfix 'ab|c%' -name AltC -package nfas -output altc_nfa.go
//	thompson -postfix 'a*' -dot star.dot
//	thompson -tokenize 'a?b*c' -tokenize 'asdf+'
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KromDaniel/thompson/pkg/thompson"
)

const appName = "thompson"

// arrayFlags collects a repeatable string flag.
type arrayFlags []string

func (a *arrayFlags) String() string {
	return strings.Join(*a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		postfix  = fs.String("postfix", "", "Postfix pattern to compile ('%' concatenates, '|' alternates)")
		name     = fs.String("name", "", "Prefix for generated identifiers")
		pkg      = fs.String("package", "main", "Package name for the generated file")
		output   = fs.String("output", "", "Write the generated Go state table to this file")
		dotFile  = fs.String("dot", "", "Write the NFA as a Graphviz digraph to this file ('-' for stdout)")
		verbose  = fs.Bool("verbose", false, "Log construction statistics")
		tokenize arrayFlags
	)
	fs.Var(&tokenize, "tokenize", "Print the tokens of a raw pattern (repeatable)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *postfix == "" && len(tokenize) == 0 {
		fmt.Fprintf(stderr, "Error: -postfix or -tokenize is required\n\n")
		fs.PrintDefaults()
		return 1
	}

	for _, pattern := range tokenize {
		fmt.Fprintf(stdout, "%q:", pattern)
		for _, tok := range thompson.Tokenize(pattern) {
			fmt.Fprintf(stdout, " %s", tok)
		}
		fmt.Fprintln(stdout)
	}

	if *postfix == "" {
		return 0
	}

	analysis, err := thompson.Analyze(*postfix)
	if err != nil {
		fmt.Fprintf(stderr, "Error: pattern %q could not be compiled: %v\n", *postfix, err)
		return 1
	}
	if *verbose {
		fmt.Fprintf(stderr, "[%s] %d states, %d exits, cyclic=%v\n", appName, analysis.States, analysis.Exits, analysis.Cyclic)
	}

	if *dotFile != "" {
		if err := writeDOT(*dotFile, *postfix, stdout); err != nil {
			fmt.Fprintf(stderr, "Error writing DOT output: %v\n", err)
			return 1
		}
	}

	if *output != "" {
		err := thompson.Compile(thompson.Options{
			Postfix:    *postfix,
			Name:       *name,
			OutputFile: *output,
			Package:    *pkg,
			Verbose:    *verbose,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Error generating code: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Generated %s\n", *output)
	}

	return 0
}

func writeDOT(path, postfix string, stdout io.Writer) error {
	if path == "-" {
		return thompson.WriteDOT(stdout, postfix)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := thompson.WriteDOT(f, postfix); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
