// Package nfa builds Thompson NFA fragments from postfix regular expressions.
//
// A fragment is addressed by its head State. States link forward only,
// through Out1 and Out2, and repetition operators introduce cycles. The
// reachable States whose Out1 is unset are the fragment's dangling exits:
// the points where a following fragment gets attached.
package nfa

import "strconv"

// Epsilon is the symbol of a State that consumes no input.
const Epsilon rune = -1

// State is a node of an NFA fragment graph.
//
// A State with a non-epsilon Symbol consumes exactly that character and
// continues through Out1. An epsilon State is either a blank (no links yet)
// or a split that may follow both Out1 and Out2.
type State struct {
	Symbol rune
	Out1   *State
	Out2   *State
}

// NewState returns a State consuming symbol with no successors.
func NewState(symbol rune) *State {
	return &State{Symbol: symbol}
}

// Blank returns an epsilon State with the given successors. Either may be nil.
func Blank(out1, out2 *State) *State {
	return &State{Symbol: Epsilon, Out1: out1, Out2: out2}
}

// IsEpsilon reports whether s is traversed without consuming input.
func (s *State) IsEpsilon() bool {
	return s.Symbol == Epsilon
}

// Clone returns a shallow copy of s. The successors are shared.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// Branch returns a split State whose Out1 is s and Out2 is other.
func (s *State) Branch(other *State) *State {
	return Blank(s, other)
}

// Append returns a new fragment that runs s and then next.
//
// The subgraph reachable from s is copied and every dangling exit of the
// copy is linked to next, so s itself and any fragment sharing its States
// are left untouched. next is linked, not copied.
//
// The copy is not limited to the Out1 spine: branch targets behind a split
// are copied too, so exits reached only through Out2 are linked as well.
func (s *State) Append(next *State) *State {
	copies := make(map[*State]*State)
	order := make([]*State, 0, 8)
	s.Walk(func(st *State) bool {
		copies[st] = st.Clone()
		order = append(order, st)
		return true
	})

	for _, orig := range order {
		c := copies[orig]
		if orig.Out1 != nil {
			c.Out1 = copies[orig.Out1]
		} else {
			c.Out1 = next
		}
		if orig.Out2 != nil {
			c.Out2 = copies[orig.Out2]
		}
	}
	return copies[s]
}

// Walk visits every State reachable from s exactly once, depth first,
// following Out1 before Out2. Walking stops early when fn returns false.
func (s *State) Walk(fn func(*State) bool) {
	if s == nil {
		return
	}
	seen := map[*State]bool{s: true}
	stack := []*State{s}
	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(st) {
			return
		}
		// push Out2 first so Out1 is visited first
		for _, next := range [2]*State{st.Out2, st.Out1} {
			if next != nil && !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
}

// Exits returns the dangling States of the fragment headed by s, in walk
// order. For a plain literal chain this is its single tail.
func (s *State) Exits() []*State {
	var exits []*State
	s.Walk(func(st *State) bool {
		if st.Out1 == nil {
			exits = append(exits, st)
		}
		return true
	})
	return exits
}

// Len returns the number of States reachable from s.
func (s *State) Len() int {
	n := 0
	s.Walk(func(*State) bool {
		n++
		return true
	})
	return n
}

// String returns the transition label of s: the quoted symbol, or "ε".
func (s *State) String() string {
	if s.IsEpsilon() {
		return "ε"
	}
	return strconv.QuoteRune(s.Symbol)
}
