package nfa

import (
	"errors"
	"fmt"
)

// Operator is a postfix operator symbol.
type Operator rune

// Postfix operators. Concatenation is never implicit: every juxtaposition
// must be written as an explicit Concatenate.
const (
	Concatenate Operator = '%'
	Alternate   Operator = '|'
	ZeroOrOne   Operator = '?'
	ZeroOrMore  Operator = '*'
	OneOrMore   Operator = '+'
)

// Errors reported by Compile.
var (
	// ErrStackUnderflow means an operator had fewer operands than it needs.
	ErrStackUnderflow = errors.New("stack underflow")

	// ErrMalformedResult means the input did not reduce to exactly one fragment.
	ErrMalformedResult = errors.New("malformed postfix expression")
)

// Arity returns the number of operands op consumes.
func (op Operator) Arity() int {
	switch op {
	case Concatenate, Alternate:
		return 2
	case ZeroOrOne, ZeroOrMore, OneOrMore:
		return 1
	}
	return 0
}

// operatorOf reports whether r is one of the reserved operator symbols.
func operatorOf(r rune) (Operator, bool) {
	switch op := Operator(r); op {
	case Concatenate, Alternate, ZeroOrOne, ZeroOrMore, OneOrMore:
		return op, true
	}
	return 0, false
}

// Compile builds an NFA fragment from a regular expression in postfix
// notation and returns its head.
//
// Every rune that is not an operator is a literal. The returned fragment is
// left dangling: no accept state is attached to its exits. On error no
// State is returned.
func Compile(postfix string) (*State, error) {
	var stack []*State

	for offset, r := range postfix {
		op, isOp := operatorOf(r)
		if !isOp {
			stack = append(stack, NewState(r))
			continue
		}

		if len(stack) < op.Arity() {
			return nil, fmt.Errorf("%w: operator %q at offset %d needs %d operands, have %d",
				ErrStackUnderflow, r, offset, op.Arity(), len(stack))
		}

		switch op {
		case Concatenate:
			b, a := stack[len(stack)-1], stack[len(stack)-2]
			stack = append(stack[:len(stack)-2], a.Append(b))
		case Alternate:
			b, a := stack[len(stack)-1], stack[len(stack)-2]
			stack = append(stack[:len(stack)-2], a.Branch(b))
		case ZeroOrOne:
			a := stack[len(stack)-1]
			stack[len(stack)-1] = a.Branch(Blank(nil, nil))
		case ZeroOrMore:
			a := stack[len(stack)-1]
			split, _ := loop(a)
			stack[len(stack)-1] = split
		case OneOrMore:
			a := stack[len(stack)-1]
			_, body := loop(a)
			stack[len(stack)-1] = body
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d fragments left on the stack, want 1", ErrMalformedResult, len(stack))
	}
	return stack[0], nil
}

// loop builds the repetition of a: a split whose Out1 runs a copy of a
// that returns to the split, and whose Out2 is a fresh blank exit.
func loop(a *State) (split, body *State) {
	split = Blank(nil, Blank(nil, nil))
	body = a.Append(split)
	split.Out1 = body
	return split, body
}
