package thompson

import (
	"io"

	"github.com/KromDaniel/thompson/internal/nfa"
)

// Analysis describes the NFA built from a postfix pattern.
type Analysis struct {
	States      int    // reachable states
	Literals    int    // states consuming a character
	Exits       int    // dangling exits left for the caller to attach
	Cyclic      bool   // true if a repetition loop exists
	Fingerprint uint64 // equal for structurally identical graphs
}

// Analyze builds the pattern and reports the shape of the result without
// generating code.
//
// Example:
//
//	a, err := thompson.Analyze("ab|*c%")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(a.States, a.Cyclic) // 6 true
func Analyze(postfix string) (*Analysis, error) {
	head, err := nfa.Compile(postfix)
	if err != nil {
		return nil, err
	}
	table := nfa.Flatten(head)

	a := &Analysis{
		States:      len(table.States),
		Exits:       len(table.Exits),
		Cyclic:      table.Cyclic(),
		Fingerprint: table.Fingerprint(),
	}
	for _, e := range table.States {
		if e.Symbol != nfa.Epsilon {
			a.Literals++
		}
	}
	return a, nil
}

// WriteDOT builds the pattern and writes its graph in Graphviz format.
func WriteDOT(w io.Writer, postfix string) error {
	head, err := nfa.Compile(postfix)
	if err != nil {
		return err
	}
	return nfa.WriteDOT(w, head)
}
