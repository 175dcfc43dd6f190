// Package codegen provides code generation helpers and constants.
package codegen

import (
	"unicode"
	"unicode/utf8"
)

// Field names of the generated state struct
const (
	SymbolField = "Symbol"
	Out1Field   = "Out1"
	Out2Field   = "Out2"
)

// Suffixes appended to the user supplied name for generated declarations
const (
	StateTypeSuffix   = "State"
	StatesVarSuffix   = "States"
	ExitsVarSuffix    = "Exits"
	StartConstSuffix  = "Start"
	EpsilonSuffix     = "Epsilon"
	NoneSuffix        = "None"
	FingerprintSuffix = "Fingerprint"
	PostfixSuffix     = "Postfix" // unexported, see PostfixName
)

var exportedSuffixes = []string{
	StateTypeSuffix,
	StatesVarSuffix,
	ExitsVarSuffix,
	StartConstSuffix,
	EpsilonSuffix,
	NoneSuffix,
	FingerprintSuffix,
}

// StateName returns the exported identifier for a generated declaration.
func StateName(name, suffix string) string {
	return UpperFirst(name) + suffix
}

// PostfixName returns the unexported constant holding the source pattern.
func PostfixName(name string) string {
	return LowerFirst(name) + PostfixSuffix
}

// Identifiers lists every top-level identifier generated for name.
func Identifiers(name string) []string {
	ids := make([]string, 0, len(exportedSuffixes)+1)
	for _, suffix := range exportedSuffixes {
		ids = append(ids, StateName(name, suffix))
	}
	return append(ids, PostfixName(name))
}

// LowerFirst lowercases the first rune of s. Non-letters are left as is.
func LowerFirst(s string) string {
	return mapFirst(s, unicode.ToLower)
}

// UpperFirst uppercases the first rune of s. Non-letters are left as is.
func UpperFirst(s string) string {
	return mapFirst(s, unicode.ToUpper)
}

func mapFirst(s string, fn func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(fn(r)) + s[size:]
}
