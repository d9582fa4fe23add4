// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package boolexpr

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// An Expression is a disjunction (logical OR) of products kept in a minimal,
// canonical form: the terms of the sum are unique, none is Zero, a constant
// can only appear alone, and the sequence is sorted by termLess, with the
// terms containing the most variables first. Every operation of the package
// returns expressions in this form, so that two structurally equal
// expressions (see Equal) were built from equal sums of products.
//
// Expressions have move semantics: assigning an expression to another
// variable shares the underlying term sequence, and the source must not be
// used afterwards. Use Copy to obtain an independent value. The zero value of
// Expression is uninitialized and must not be used in operations; Zero, One,
// FromBool or NewExpression return valid expressions.
type Expression struct {
	terms []Product
}

// Zero returns the expression for the constant false.
func Zero() Expression {
	return Expression{terms: []Product{NewLiteral(false)}}
}

// One returns the expression for the constant true.
func One() Expression {
	return Expression{terms: []Product{NewLiteral(true)}}
}

// FromBool returns the constant expression for the given Boolean value.
func FromBool(value bool) Expression {
	return Expression{terms: []Product{NewLiteral(value)}}
}

// NewExpression returns the expression whose only term is p.
func NewExpression(p Product) Expression {
	return Expression{terms: []Product{p}}
}

// Copy returns an independent duplicate of e. This is the only way to obtain
// one; plain assignment shares the term sequence between source and
// destination.
func (e Expression) Copy() Expression {
	return Expression{terms: append([]Product(nil), e.terms...)}
}

// IsInitialized reports whether e holds at least one term; the zero value of
// Expression is not initialized and is not a valid operand.
func (e Expression) IsInitialized() bool {
	return len(e.terms) > 0
}

// IsLiteral reports whether e is one of the two constant expressions. A
// constant is always the only term of its sum.
func (e Expression) IsLiteral() bool {
	return e.terms[0].IsLiteral()
}

// IsZero reports whether e is the constant false.
func (e Expression) IsZero() bool {
	return e.terms[0].IsZero()
}

// IsOne reports whether e is the constant true.
func (e Expression) IsOne() bool {
	return e.terms[0].IsOne()
}

// IsProduct reports whether the sum has exactly one term.
func (e Expression) IsProduct() bool {
	return len(e.terms) == 1
}

// Product returns the only term of e; it panics when the sum has more than
// one term (see IsProduct).
func (e Expression) Product() Product {
	if !e.IsProduct() {
		panic("boolexpr: expression is not a single product")
	}
	return e.terms[0]
}

// NumTerms returns the number of terms in the sum.
func (e Expression) NumTerms() int {
	return len(e.terms)
}

// Equal reports structural equality: same terms in the same order. Two
// expressions built with the operations of this package denote the same
// Boolean function when they are structurally equal; the converse does not
// hold since simplification is not a complete minimizer (use Equivalent for a
// semantic comparison).
func (e Expression) Equal(f Expression) bool {
	if len(e.terms) != len(f.terms) {
		return false
	}
	for k := range e.terms {
		if e.terms[k] != f.terms[k] {
			return false
		}
	}
	return true
}

// Support returns the set of (ids of) variables occurring in the expression.
func (e Expression) Support() *bitset.BitSet {
	s := bitset.New(MaxVariables)
	for _, term := range e.terms {
		if term.IsLiteral() {
			continue
		}
		for v := ^term.variables; v != 0; v &= v - 1 {
			s.Set(uint(bits.TrailingZeros64(uint64(v))))
		}
	}
	return s
}

// termLess is the total order used to keep the term sequence canonical.
// Terms with more variables must come first in the sum for simplify to
// converge: eliminating a variable from a term can only move it towards terms
// that still have to be scanned. The tie-break on the masks is arbitrary but
// fixed.
func termLess(p, q Product) bool {
	np, nq := p.NumVariables(), q.NumVariables()
	if np != nq {
		return np < nq
	}
	if p.variables != q.variables {
		return p.variables < q.variables
	}
	return p.negation < q.negation
}

// add inserts p at its ordered position in the sum, without reconciling the
// new term with the others (no simplification). Zero is dropped. It reports
// whether the term was inserted. Duplicates of an existing term are kept;
// only simplify removes them.
func (e *Expression) add(p Product) bool {
	if p.IsZero() {
		return false
	}
	k := 0
	for ; k < len(e.terms); k++ {
		if termLess(e.terms[k], p) {
			break
		}
	}
	e.terms = append(e.terms, Product{})
	copy(e.terms[k+1:], e.terms[k:])
	e.terms[k] = p
	return true
}

// AddProduct adds product p to the sum, in place, and restores the canonical
// form.
func (e *Expression) AddProduct(p Product) {
	switch {
	case e.IsZero():
		e.terms = []Product{p}
	case e.IsOne():
		// nothing to add
	case p.IsOne():
		e.terms = []Product{NewLiteral(true)}
	default:
		if e.add(p) {
			e.simplify()
		}
	}
	e.check()
}

// zip merges the terms of two canonical expressions into a single sequence
// in canonical order, without any cross-term simplification; duplicated terms
// across the two inputs are retained. When either operand is a constant the
// merge short-circuits to the truth table of OR. It reports whether the
// result may need a simplification pass.
func zip(e, f Expression) (Expression, bool) {
	if !e.IsInitialized() || !f.IsInitialized() {
		panic("boolexpr: zip of an uninitialized expression")
	}
	if e.IsLiteral() || f.IsLiteral() {
		// The result is f when f is One or e is Zero, and e otherwise;
		// this covers the whole OR table for constants.
		src := e
		if f.IsOne() || e.IsZero() {
			src = f
		}
		return src.Copy(), false
	}
	out := make([]Product, 0, len(e.terms)+len(f.terms))
	i, j := 0, 0
	for i < len(e.terms) && j < len(f.terms) {
		if termLess(e.terms[i], f.terms[j]) {
			out = append(out, f.terms[j])
			j++
		} else {
			out = append(out, e.terms[i])
			i++
		}
	}
	out = append(out, e.terms[i:]...)
	out = append(out, f.terms[j:]...)
	return Expression{terms: out}, true
}

// Plus returns the disjunction of two expressions, in canonical form.
func (e Expression) Plus(f Expression) Expression {
	res, needsimplify := zip(e, f)
	if needsimplify {
		res.simplify()
	}
	res.check()
	return res
}

// Add adds expression f to e, in place.
func (e *Expression) Add(f Expression) {
	*e = e.Plus(f)
}

// TimesProduct returns the conjunction of e with product p: the product
// distributes over every term of the sum and the result is simplified once.
func (e Expression) TimesProduct(p Product) Expression {
	if e.IsLiteral() || p.IsLiteral() {
		if e.IsZero() || p.IsZero() {
			return Zero()
		}
		if e.IsOne() {
			return NewExpression(p)
		}
		return e.Copy()
	}
	var res Expression
	nonzero := false
	for _, term := range e.terms {
		if res.add(term.Times(p)) {
			nonzero = true
		}
	}
	if !nonzero {
		return Zero()
	}
	res.simplify()
	res.check()
	return res
}

// Times returns the conjunction of two expressions, distributing every
// pairwise combination of terms and simplifying the collected sum once.
func (e Expression) Times(f Expression) Expression {
	if e.IsLiteral() || f.IsLiteral() {
		if e.IsZero() || f.IsZero() {
			return Zero()
		}
		if e.IsOne() {
			return f.Copy()
		}
		return e.Copy()
	}
	var res Expression
	nonzero := false
	for _, p := range e.terms {
		for _, q := range f.terms {
			if res.add(p.Times(q)) {
				nonzero = true
			}
		}
	}
	if !nonzero {
		return Zero()
	}
	res.simplify()
	res.check()
	return res
}

// Inverse returns the Boolean complement of e. By De Morgan, the complement
// of a sum of products is the conjunction of the complements of each term;
// we fold that conjunction with Times so the result is fully expanded back
// into a canonical sum of products.
func (e Expression) Inverse() Expression {
	if e.IsLiteral() {
		return FromBool(e.IsZero())
	}
	res := One()
	for _, term := range e.terms {
		res = res.Times(inverse(term))
	}
	return res
}

// Eval substitutes a (possibly partial) truth assignment in the expression
// and returns the resulting, fully simplified, expression. A term containing
// a variable pinned to the opposite polarity evaluates to Zero and is
// dropped; otherwise the pinned variables are resolved and removed from the
// term, and a term whose variables are all resolved turns the whole sum into
// One.
func (e Expression) Eval(t TruthProduct) Expression {
	if e.IsLiteral() {
		return e.Copy()
	}
	res := Zero()
	for _, term := range e.terms {
		if ^(term.variables|t.variables)&(t.negation^term.negation) != 0 {
			continue // conflicting polarity, the term is false
		}
		term.variables |= ^t.variables
		term.negation |= ^t.variables
		if term.variables == fullmask {
			return One()
		}
		res.AddProduct(term)
	}
	return res
}
