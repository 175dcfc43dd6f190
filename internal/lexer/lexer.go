// Package lexer splits a raw pattern into literal runs and
// single-character quantifier and escape operators.
//
// The lexer never fails: every input, including the empty string, is
// covered by its tokens exactly once. An Escape token is purely lexical;
// the character after it is scanned as ordinary input.
package lexer

import (
	"iter"
	"unicode/utf8"
)

// EOF is returned by Read once the input is exhausted.
const EOF rune = -1

// Lexer is a cursor over a pattern.
type Lexer struct {
	input string
	pos   int
	width int // byte width of the last Read, 0 after EOF
}

// New returns a Lexer positioned at the start of input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Read returns the next character and advances the cursor, or EOF.
func (l *Lexer) Read() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return EOF
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	l.width = w
	return r
}

// Unread steps back over the last character returned by Read. It may be
// called once per Read; after a Read that returned EOF it does nothing.
func (l *Lexer) Unread() {
	l.pos -= l.width
	l.width = 0
}

// Scan returns the next token. At the end of input it returns EndOfInput,
// and keeps doing so on later calls.
func (l *Lexer) Scan() Token {
	start := l.pos
	r := l.Read()
	if r == EOF {
		return Token{Kind: EndOfInput}
	}
	if kind, ok := operators[r]; ok {
		return Token{Kind: kind, Text: l.input[start:l.pos]}
	}

	l.Unread()
	return l.scanLiteral()
}

// scanLiteral consumes a maximal run of non-operator characters.
func (l *Lexer) scanLiteral() Token {
	start := l.pos
	for {
		r := l.Read()
		if r == EOF {
			break
		}
		if _, ok := operators[r]; ok {
			l.Unread()
			break
		}
	}
	return Token{Kind: Literal, Text: l.input[start:l.pos]}
}

// Next returns the next token and true, or false once EndOfInput is reached.
func (l *Lexer) Next() (Token, bool) {
	tok := l.Scan()
	return tok, tok.Kind != EndOfInput
}

// All returns the remaining tokens, excluding EndOfInput. The sequence
// shares the lexer's cursor and cannot be restarted.
func (l *Lexer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := l.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Tokenize returns every token of input, ending with EndOfInput.
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.Scan()
		tokens = append(tokens, tok)
		if tok.Kind == EndOfInput {
			return tokens
		}
	}
}
