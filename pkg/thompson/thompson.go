// Package thompson compiles postfix regular expressions into Thompson NFA
// fragments and renders them as Go state tables.
//
// Postfix input uses '%' for concatenation, '|' for alternation and the
// quantifiers '?', '*' and '+'. Every other character is a literal.
package thompson

import (
	"fmt"
	"go/token"

	"github.com/KromDaniel/thompson/internal/codegen"
	"github.com/KromDaniel/thompson/internal/compiler"
	"github.com/KromDaniel/thompson/internal/lexer"
	"github.com/KromDaniel/thompson/internal/nfa"
)

// State is a node of an NFA fragment.
type State = nfa.State

// Table is the index based form of a fragment.
type Table = nfa.Table

// Token is a lexeme of a raw pattern.
type Token = lexer.Token

// Errors returned by Build and Compile. Use errors.Is to test for them.
var (
	ErrStackUnderflow  = nfa.ErrStackUnderflow
	ErrMalformedResult = nfa.ErrMalformedResult
)

// Build compiles a postfix expression and returns the head of its NFA fragment.
func Build(postfix string) (*State, error) {
	return nfa.Compile(postfix)
}

// Tokenize splits a raw pattern into literal runs and operators. The last
// token is always EndOfInput.
func Tokenize(pattern string) []Token {
	return lexer.Tokenize(pattern)
}

// Options configures the code generation process.
type Options struct {
	// Postfix is the postfix expression to compile
	Postfix string

	// Name is the prefix for generated identifiers (e.g., "Email" generates "EmailStates")
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// Verbose logs construction statistics to stderr
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Postfix == "" {
		return fmt.Errorf("postfix pattern cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	for _, id := range codegen.Identifiers(o.Name) {
		if !token.IsIdentifier(id) {
			return fmt.Errorf("name %q does not form a valid Go identifier (%q)", o.Name, id)
		}
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", o.Package)
	}
	return nil
}

// Compile generates a Go state table for the given postfix pattern.
// It returns an error if the pattern is malformed or code generation fails.
func Compile(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	c := compiler.New(compiler.Config{
		Postfix: opts.Postfix,
		Name:    opts.Name,
		Package: opts.Package,
		Verbose: opts.Verbose,
	})
	c.SetOutputFile(opts.OutputFile)

	if err := c.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	return nil
}
