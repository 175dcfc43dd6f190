package lexer

import "fmt"

// Kind is the lexical category of a Token.
type Kind int

const (
	Literal    Kind = iota // run of non-operator characters
	ZeroOrOne              // ?
	ZeroOrMore             // *
	OneOrMore              // +
	Escape                 // \
	EndOfInput             // end of the pattern
)

var kindNames = [...]string{
	Literal:    "Literal",
	ZeroOrOne:  "ZeroOrOne",
	ZeroOrMore: "ZeroOrMore",
	OneOrMore:  "OneOrMore",
	Escape:     "Escape",
	EndOfInput: "EndOfInput",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexeme. Text is the matched input and is empty for
// EndOfInput.
type Token struct {
	Kind Kind
	Text string
}

// String returns the kind, followed by the quoted text for non-final tokens.
func (t Token) String() string {
	if t.Kind == EndOfInput {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

// operators maps the single-character operator symbols to their kinds.
var operators = map[rune]Kind{
	'?':  ZeroOrOne,
	'*':  ZeroOrMore,
	'+':  OneOrMore,
	'\\': Escape,
}
