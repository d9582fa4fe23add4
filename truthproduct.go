// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package boolexpr

import (
	"github.com/bits-and-blooms/bitset"
)

// A TruthProduct is a product used as a, possibly partial, truth assignment:
// every variable slot is either unconstrained (absent from the product) or
// pinned to a fixed value. A variable occurring positively is pinned to true
// and a negated occurrence pins it to false. Truth assignments are the
// argument of Expression.Eval and, through Next, double as a counter that
// enumerates every assignment over a chosen set of variables.
type TruthProduct struct {
	Product
}

// NewTruthProduct returns the assignment that pins every variable of support
// to true and leaves all the others unconstrained. A nil or empty support
// gives the empty assignment. This is also the starting point (and the wrap
// around point) of the enumeration performed by Next.
func NewTruthProduct(support *bitset.BitSet) TruthProduct {
	p := NewLiteral(true)
	if support != nil {
		for id, ok := support.NextSet(0); ok; id, ok = support.NextSet(id + 1) {
			bit := varmask(uint32(id))
			p.variables &^= bit
			p.negation &^= bit
		}
	}
	return TruthProduct{p}
}

// Assign pins variable v to the given value. Assigning a variable that is
// already pinned overwrites its value.
func (t *TruthProduct) Assign(v Variable, value bool) {
	bit := varmask(v.id)
	t.variables &^= bit
	if value {
		t.negation &^= bit
	} else {
		t.negation |= bit
	}
}

// Value returns the value a pinned variable is assigned to, and whether the
// variable is pinned at all.
func (t TruthProduct) Value(v Variable) (value bool, pinned bool) {
	bit := varmask(v.id)
	if t.variables&bit != 0 {
		return false, false
	}
	return t.negation&bit == 0, true
}

// Next advances the assignment to the successor of t in a fixed, binary
// counter like, order over the pinned variables; the unconstrained variables
// are not touched. Starting from the assignment where every pinned variable
// is true, 2^k calls (for k pinned variables) cycle through every assignment
// exactly once and wrap back to the starting point.
func (t *TruthProduct) Next() {
	for id := uint32(0); id < MaxVariables; id++ {
		bit := mask(1) << id
		if t.variables&bit == 0 {
			if t.negation&bit == 0 {
				t.negation |= bit
				return
			}
			t.negation &^= bit // carry to the next pinned variable
		}
	}
}
