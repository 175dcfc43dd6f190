// Package compiler turns postfix patterns into generated Go state tables.
package compiler

import (
	"bytes"
	"fmt"
	"go/format"
	"os"

	"github.com/KromDaniel/thompson/internal/codegen"
	"github.com/KromDaniel/thompson/internal/nfa"
	"github.com/dave/jennifer/jen"
)

// Config holds the configuration for code generation.
type Config struct {
	Postfix    string
	Name       string
	OutputFile string
	Package    string
	Verbose    bool // Enable verbose logging of construction statistics
}

// Compiler builds the NFA for a postfix pattern and renders it as Go source.
type Compiler struct {
	config Config
	logger *Logger
	table  *nfa.Table // nil until Build succeeds
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	return &Compiler{
		config: config,
		logger: NewLogger(config.Verbose),
	}
}

// SetOutputFile sets the output file path.
func (c *Compiler) SetOutputFile(path string) {
	c.config.OutputFile = path
}

// Logger returns the compiler's logger.
func (c *Compiler) Logger() *Logger {
	return c.logger
}

// Build compiles the postfix pattern and returns its state table.
func (c *Compiler) Build() (*nfa.Table, error) {
	if c.table != nil {
		return c.table, nil
	}

	head, err := nfa.Compile(c.config.Postfix)
	if err != nil {
		return nil, fmt.Errorf("failed to build NFA: %w", err)
	}
	c.table = nfa.Flatten(head)
	c.analyzeAndLog()
	return c.table, nil
}

// analyzeAndLog reports the shape of the built table if verbose mode is enabled.
func (c *Compiler) analyzeAndLog() {
	c.logger.Section("Pattern Analysis")
	c.logger.Log("Postfix: %s", c.config.Postfix)
	c.logger.Stats(c.table)
}

// Source renders the generated Go file without writing it.
func (c *Compiler) Source() (string, error) {
	file, err := c.generateFile()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := file.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render file: %w", err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("failed to format file: %w", err)
	}
	return string(formatted), nil
}

// Generate generates the Go code and writes it to the output file.
func (c *Compiler) Generate() error {
	file, err := c.generateFile()
	if err != nil {
		return err
	}

	c.logger.Section("Code Generation")
	c.logger.Log("Writing %s", c.config.OutputFile)

	if err := file.Save(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	if err := formatFile(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}
	return nil
}

// generateFile builds the jennifer file holding the state table.
func (c *Compiler) generateFile() (*jen.File, error) {
	table, err := c.Build()
	if err != nil {
		return nil, err
	}

	name := c.config.Name
	stateType := codegen.StateName(name, codegen.StateTypeSuffix)
	epsilon := codegen.StateName(name, codegen.EpsilonSuffix)
	none := codegen.StateName(name, codegen.NoneSuffix)

	file := jen.NewFile(c.config.Package)
	file.HeaderComment(fmt.Sprintf("Code generated by thompson for postfix pattern %q. DO NOT EDIT.", c.config.Postfix))

	file.Comment(fmt.Sprintf("%s is a state of the %s NFA. Out1 and Out2 index %s, %s marks an unset link.",
		stateType, name, codegen.StateName(name, codegen.StatesVarSuffix), none))
	file.Type().Id(stateType).Struct(
		jen.Id(codegen.SymbolField).Rune(),
		jen.Id(codegen.Out1Field).Int(),
		jen.Id(codegen.Out2Field).Int(),
	)
	file.Line()

	file.Const().Defs(
		jen.Id(epsilon).Rune().Op("=").Lit(int(nfa.Epsilon)),
		jen.Id(none).Op("=").Lit(nfa.None),
		jen.Id(codegen.StateName(name, codegen.StartConstSuffix)).Op("=").Lit(table.Start),
		jen.Id(codegen.StateName(name, codegen.FingerprintSuffix)).Uint64().Op("=").Lit(table.Fingerprint()),
		jen.Id(codegen.PostfixName(name)).Op("=").Lit(c.config.Postfix),
	)
	file.Line()

	link := func(i int) jen.Code {
		if i == nfa.None {
			return jen.Id(none)
		}
		return jen.Lit(i)
	}

	file.Var().Id(codegen.StateName(name, codegen.StatesVarSuffix)).Op("=").Index().Id(stateType).ValuesFunc(func(g *jen.Group) {
		for _, e := range table.States {
			var symbol jen.Code = jen.LitRune(e.Symbol)
			if e.Symbol == nfa.Epsilon {
				symbol = jen.Id(epsilon)
			}
			g.Values(jen.Dict{
				jen.Id(codegen.SymbolField): symbol,
				jen.Id(codegen.Out1Field):   link(e.Out1),
				jen.Id(codegen.Out2Field):   link(e.Out2),
			})
		}
	})
	file.Line()

	file.Var().Id(codegen.StateName(name, codegen.ExitsVarSuffix)).Op("=").Index().Int().ValuesFunc(func(g *jen.Group) {
		for _, i := range table.Exits {
			g.Lit(i)
		}
	})

	return file, nil
}

func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := format.Source(src)
	if err != nil {
		return err
	}

	return os.WriteFile(path, formatted, 0644)
}
