package compiler

import (
	"bytes"
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KromDaniel/thompson/internal/nfa"
)

func TestCompilerGenerate(t *testing.T) {
	tests := []struct {
		name    string
		postfix string
	}{
		{"literal", "a"},
		{"concat", "ab%"},
		{"alternation", "ab|"},
		{"star", "a*"},
		{"plus", "ab%+"},
		{"optional", "a?b%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			outputFile := filepath.Join(tmpDir, "test.go")

			c := New(Config{
				Postfix:    tt.postfix,
				Name:       "Test",
				OutputFile: outputFile,
				Package:    "test",
			})

			if err := c.Generate(); err != nil {
				t.Fatalf("generation failed: %v", err)
			}

			src, err := os.ReadFile(outputFile)
			if err != nil {
				t.Fatalf("output file was not created: %v", err)
			}
			if _, err := parser.ParseFile(token.NewFileSet(), outputFile, src, 0); err != nil {
				t.Errorf("generated file does not parse: %v", err)
			}
		})
	}
}

func TestCompilerSource(t *testing.T) {
	c := New(Config{
		Postfix: "ab%",
		Name:    "AB",
		Package: "nfas",
	})

	src, err := c.Source()
	if err != nil {
		t.Fatalf("Source() error: %v", err)
	}
	flat := strings.Join(strings.Fields(src), " ")

	for _, want := range []string{
		`// Code generated by thompson for postfix pattern "ab%". DO NOT EDIT.`,
		"package nfas",
		"type ABState struct",
		"ABEpsilon rune = -1",
		"ABFingerprint uint64 =",
		`aBPostfix = "ab%"`,
		"var ABStates = []ABState{",
		"'a'",
		"'b'",
		"ABNone",
		"var ABExits = []int{1}",
	} {
		if !strings.Contains(flat, want) {
			t.Errorf("generated source missing %q:\n%s", want, src)
		}
	}
}

func TestCompilerSourceNames(t *testing.T) {
	tests := []struct {
		name    string
		postfix string
		want    []string
	}{
		{"_x", "_xPostfix", []string{"type _xState struct", "var _xStates = []_xState{"}},
		{"_", "_Postfix", []string{"type _State struct", "var _Exits = []int{1}"}},
		{"État", "étatPostfix", []string{"type ÉtatState struct"}},
		{"email", "emailPostfix", []string{"type EmailState struct"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := New(Config{Postfix: "ab%", Name: tt.name, Package: "nfas"}).Source()
			if err != nil {
				t.Fatalf("Source() error: %v", err)
			}
			if _, err := parser.ParseFile(token.NewFileSet(), "nfa.go", src, 0); err != nil {
				t.Errorf("generated source does not parse: %v", err)
			}
			for _, want := range append(tt.want, tt.postfix) {
				if !strings.Contains(src, want) {
					t.Errorf("generated source missing %q:\n%s", want, src)
				}
			}
		})
	}
}

func TestCompilerSourceEpsilon(t *testing.T) {
	src, err := New(Config{Postfix: "a*", Name: "Star", Package: "nfas"}).Source()
	if err != nil {
		t.Fatalf("Source() error: %v", err)
	}
	// the split and the skip state
	if n := strings.Count(src, "Symbol: StarEpsilon"); n != 2 {
		t.Errorf("%d states written with StarEpsilon, want 2:\n%s", n, src)
	}
	if !strings.Contains(src, "var StarExits = []int{2}") {
		t.Errorf("unexpected exits:\n%s", src)
	}
}

func TestCompilerBuildErrors(t *testing.T) {
	tests := []struct {
		postfix string
		want    error
	}{
		{"%", nfa.ErrStackUnderflow},
		{"ab", nfa.ErrMalformedResult},
		{"", nfa.ErrMalformedResult},
	}

	for _, tt := range tests {
		t.Run(tt.postfix, func(t *testing.T) {
			c := New(Config{Postfix: tt.postfix, Name: "Bad", Package: "bad"})

			if _, err := c.Build(); !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}

			outputFile := filepath.Join(t.TempDir(), "bad.go")
			c.SetOutputFile(outputFile)
			if err := c.Generate(); !errors.Is(err, tt.want) {
				t.Errorf("Generate() error = %v, want %v", err, tt.want)
			}
			if _, err := os.Stat(outputFile); !os.IsNotExist(err) {
				t.Error("output file written for a malformed pattern")
			}
		})
	}
}

func TestCompilerVerbose(t *testing.T) {
	c := New(Config{Postfix: "ab|*", Name: "V", Package: "v", Verbose: true})
	var buf bytes.Buffer
	c.Logger().SetOutput(&buf)

	if _, err := c.Build(); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"[thompson] === Pattern Analysis ===",
		"[thompson] Postfix: ab|*",
		"[thompson] NFA states: 5 (2 literal, 3 epsilon)",
		"[thompson] Has repetition cycle: true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLoggerDisabled(t *testing.T) {
	l := NewLogger(false)
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Section("Nothing")
	l.Log("value %d", 1)
	l.Stats(&nfa.Table{})

	if buf.Len() != 0 {
		t.Errorf("disabled logger wrote %q", buf.String())
	}
	if l.Enabled() {
		t.Error("Enabled() = true, want false")
	}
}
