package nfa

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// None marks an unset link in a Table.
const None = -1

// Entry is a State in arena form. Links are indices into Table.States.
type Entry struct {
	Symbol rune
	Out1   int
	Out2   int
}

// Table is the arena form of a fragment. States are numbered in walk order
// from the head, so equal tables describe isomorphic graphs.
type Table struct {
	Start  int
	States []Entry
	Exits  []int
}

// Flatten numbers the States reachable from head and returns their table.
func Flatten(head *State) *Table {
	index := make(map[*State]int)
	var order []*State
	head.Walk(func(st *State) bool {
		index[st] = len(order)
		order = append(order, st)
		return true
	})

	link := func(st *State) int {
		if st == nil {
			return None
		}
		return index[st]
	}

	t := &Table{
		Start:  0,
		States: make([]Entry, len(order)),
	}
	for i, st := range order {
		t.States[i] = Entry{Symbol: st.Symbol, Out1: link(st.Out1), Out2: link(st.Out2)}
		if st.Out1 == nil {
			t.Exits = append(t.Exits, i)
		}
	}
	return t
}

// fingerprint keys; fixed so fingerprints are stable across runs
const (
	fpKey0 = 0x7468_6f6d_7073_6f6e
	fpKey1 = 0x9e37_79b9_7f4a_7c15
)

// Fingerprint hashes the table layout. Isomorphic graphs flatten to the
// same table and therefore share a fingerprint.
func (t *Table) Fingerprint() uint64 {
	buf := make([]byte, 0, 4+12*len(t.States))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(t.Start))
	for _, e := range t.States {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(e.Symbol))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(e.Out1))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(e.Out2))
	}
	return siphash.Hash(fpKey0, fpKey1, buf)
}

// Build reconstructs the State graph described by t and returns its head.
func (t *Table) Build() *State {
	if len(t.States) == 0 {
		return nil
	}
	states := make([]*State, len(t.States))
	for i, e := range t.States {
		states[i] = &State{Symbol: e.Symbol}
	}
	for i, e := range t.States {
		if e.Out1 != None {
			states[i].Out1 = states[e.Out1]
		}
		if e.Out2 != None {
			states[i].Out2 = states[e.Out2]
		}
	}
	return states[t.Start]
}

// Cyclic reports whether the table contains a loop, as produced by the
// repetition operators.
func (t *Table) Cyclic() bool {
	const (
		unvisited = iota
		active
		done
	)
	color := make([]uint8, len(t.States))
	type frame struct{ state, edge int }

	for root := range t.States {
		if color[root] != unvisited {
			continue
		}
		color[root] = active
		stack := []frame{{state: root}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.edge == 2 {
				color[top.state] = done
				stack = stack[:len(stack)-1]
				continue
			}
			next := t.States[top.state].Out1
			if top.edge == 1 {
				next = t.States[top.state].Out2
			}
			top.edge++
			if next == None {
				continue
			}
			switch color[next] {
			case active:
				return true
			case unvisited:
				color[next] = active
				stack = append(stack, frame{state: next})
			}
		}
	}
	return false
}
