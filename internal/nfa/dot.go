package nfa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteDOT writes the fragment headed by head as a Graphviz digraph.
// Dangling exits are drawn as double circles.
func WriteDOT(w io.Writer, head *State) error {
	return Flatten(head).WriteDOT(w)
}

// WriteDOT writes t as a Graphviz digraph.
func (t *Table) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph nfa {")
	fmt.Fprintln(bw, "    rankdir=LR;")

	exit := make(map[int]bool, len(t.Exits))
	for _, i := range t.Exits {
		exit[i] = true
	}

	for i, e := range t.States {
		shape := "circle"
		if exit[i] {
			shape = "doublecircle"
		}
		label := edgeLabel(e.Symbol)
		fmt.Fprintf(bw, "    s%d [shape=%s, xlabel=%s];\n", i, shape, label)

		if e.Out1 != None {
			fmt.Fprintf(bw, "    s%d -> s%d [label=%s];\n", i, e.Out1, label)
		}
		if e.Out2 != None {
			fmt.Fprintf(bw, "    s%d -> s%d [label=%s];\n", i, e.Out2, strconv.Quote("ε"))
		}
	}
	if len(t.States) > 0 {
		fmt.Fprintf(bw, "    _start [shape=point]; _start -> s%d;\n", t.Start)
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func edgeLabel(symbol rune) string {
	if symbol == Epsilon {
		return strconv.Quote("ε")
	}
	return strconv.Quote(string(symbol))
}
