// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package boolexpr

import "fmt"

// isSane reports whether the two masks of p satisfy the representation
// invariant: p is one of the two constants, or no bit of the reserved range
// is in use and the negation mask mirrors the variables mask on every absent
// position.
func (p Product) isSane() bool {
	if p == NewLiteral(false) || p == NewLiteral(true) {
		return true
	}
	if p.IsLiteral() {
		return false
	}
	notused := ^allvariables
	if p.variables&notused != notused {
		return false
	}
	if p.negation&notused != notused {
		return false
	}
	return p.negation&p.variables == p.variables
}

// check asserts the invariants of a canonical expression: non-empty, sane
// terms, a constant only as the single term, and a strictly decreasing term
// order with no duplicates. It is a no-op unless the package is built with
// the debug tag.
func (e Expression) check() {
	if !_DEBUG {
		return
	}
	if len(e.terms) == 0 {
		panic("boolexpr: invariant violation: expression with no term")
	}
	for k, term := range e.terms {
		if !term.isSane() {
			panic(fmt.Sprintf("boolexpr: invariant violation: term %d is not well formed", k))
		}
		if term.IsLiteral() && len(e.terms) != 1 {
			panic("boolexpr: invariant violation: a constant cannot be part of a sum")
		}
		if k > 0 {
			if !termLess(term, e.terms[k-1]) || termLess(e.terms[k-1], term) {
				panic(fmt.Sprintf("boolexpr: invariant violation: terms %d and %d out of order", k-1, k))
			}
		}
	}
}
