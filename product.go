// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package boolexpr

import (
	"math/bits"
)

// mask is the bit pattern used to encode which variables occur in a Product.
// Each variable owns one bit position. A variable is *in use* in a product
// when its bit is unset in the variables mask; so the pattern with every bit
// set (fullmask) is the product with no variable at all, that is the constant
// One. Symmetrically, the otherwise unreachable pattern with every bit unset
// is reserved for the constant Zero; it is unreachable because the last bit
// position is never handed out to a variable (see MaxVariables).
type mask uint64

const (
	masksize = 64 // number of bits in a mask

	emptymask mask = 0
	fullmask  mask = ^emptymask

	// MaxVariables is the maximum number of Boolean variables supported by
	// the package. We reserve one of the 64 bit positions so that the "all
	// variables in use" pattern can never occur and can serve as the
	// encoding of the constant Zero.
	MaxVariables = masksize - 1

	// allvariables has a bit set at every position that can be assigned to
	// a variable; the reserved position is left out.
	allvariables mask = fullmask >> (masksize - MaxVariables)
)

// varmask returns the mask with (only) the bit of variable id set.
func varmask(id uint32) mask {
	if id >= MaxVariables {
		panic("boolexpr: variable id outside the supported range")
	}
	return mask(1) << id
}

// A Product is a conjunction (logical AND) of Boolean variables and negated
// Boolean variables, such as A.B'.C (where ' marks a negation). The two
// constants are also products: One, the empty conjunction, and Zero. Products
// are immutable values; they can be compared with ==.
//
// The encoding uses two masks. A variable occurs in the product when its bit
// is unset in variables; negation has, for every position, the same bit as
// variables when the variable is absent, and the negation flag of the
// variable when it occurs. With this convention conjunction of two products
// is a couple of word-wide bit operations, see Times. The constant One is
// {fullmask, emptymask} and Zero is {emptymask, fullmask}.
type Product struct {
	variables mask // bit unset = variable occurs in the product
	negation  mask // for occurring variables, bit set = negated occurrence
}

// NewLiteral returns the product encoding a Boolean constant: One for true
// and Zero for false. One is the identity of Times and Zero its absorbing
// element.
func NewLiteral(value bool) Product {
	if value {
		return Product{variables: fullmask, negation: emptymask}
	}
	return Product{variables: emptymask, negation: fullmask}
}

// NewProduct returns the product that contains exactly one variable, possibly
// negated.
func NewProduct(v Variable, negated bool) Product {
	variables := ^varmask(v.id)
	negation := variables
	if negated {
		negation = fullmask
	}
	return Product{variables: variables, negation: negation}
}

// IsLiteral reports whether p is one of the two constants, Zero or One. A
// well-formed product that contains at least one variable is never a literal.
func (p Product) IsLiteral() bool {
	return (p.variables ^ p.negation) == fullmask
}

// IsZero reports whether p is the constant Zero.
func (p Product) IsZero() bool {
	return p.variables == emptymask
}

// IsOne reports whether p is the constant One.
func (p Product) IsOne() bool {
	return p.variables == fullmask
}

// NumVariables returns the number of variables that occur in the product. It
// is 0 for One and, by convention, 64 for Zero.
func (p Product) NumVariables() int {
	return bits.OnesCount64(uint64(^p.variables))
}

// Times returns the conjunction of two products. The computation is performed
// bit-parallel over the whole masks: a variable occurs in the result when it
// occurs in either operand and, when it occurs in both with a different
// negation, the result collapses to Zero (a product containing both A and A'
// is always false). The constants need no special case: One contributes
// nothing and Zero forces the result to Zero.
func (p Product) Times(q Product) Product {
	// For every position used in both operands, a difference between the
	// negation masks means we are multiplying A with A' (or with Zero).
	var isfalse mask
	if ^p.variables & ^q.variables & (p.negation^q.negation) != 0 {
		isfalse = fullmask
	}
	negation := (^p.variables & p.negation) | (^q.variables & q.negation) |
		(q.variables & p.negation) | (p.variables & q.negation)
	variables := p.variables & q.variables
	return Product{variables: variables &^ isfalse, negation: negation | isfalse}
}

// Not returns the complement of product p as an Expression, using De Morgan's
// law: the negation of a conjunction of literals is the disjunction of the
// negations of each literal. Negating a constant yields the other constant.
func (p Product) Not() Expression {
	if p.IsLiteral() {
		return FromBool(p.IsZero())
	}
	return inverse(p)
}

// Negated returns the product where the polarity of every occurring variable
// has been flipped; for a constant it returns the other constant. Note that
// this is not the logical complement of p (see Not), but it is, for instance,
// the natural way to turn the all-true assignment of a TruthProduct into the
// all-false one.
func (p Product) Negated() Product {
	var isliteral mask
	if (p.variables ^ p.negation) == fullmask {
		isliteral = fullmask
	}
	return Product{
		variables: p.variables ^ isliteral,
		negation:  p.negation ^ (isliteral | ^p.variables),
	}
}

// ************************************************************
//
// The following predicates answer the structural questions asked by the
// simplification pass; see the comments in simplify.go for the rewrite rule
// attached to each of them.

// singleNegationDifferent reports whether p and q contain the same variables
// and exactly one of them occurs with a different polarity. Such a pair, like
// A.B.C and A.B'.C, can be merged into its common factor A.C.
func (p Product) singleNegationDifferent(q Product) bool {
	d := p.negation ^ q.negation
	return p.variables == q.variables && d != 0 && d&(d-1) == 0
}

// includesAllOf reports whether every variable of q occurs in p with the same
// polarity. In that case p is a specialization of q and is absorbed by it in
// a sum. Two equal products include each other.
func (p Product) includesAllOf(q Product) bool {
	d := p.negation ^ q.negation
	return (p.variables|q.variables) == q.variables && d&^q.variables == 0
}

// differentNegationForSingleVariable reports whether q is a single (bare)
// variable that occurs in p with the opposite polarity. In a sum this lets p
// drop that variable, since for instance A.B'.C + B = A.C + B.
func (p Product) differentNegationForSingleVariable(q Product) bool {
	if ((q.variables+1)|q.variables) == fullmask && (p.variables|q.variables) != fullmask {
		return (p.negation^q.negation)&^q.variables != 0
	}
	return false
}

// commonFactor returns the product that both p and q reduce to after
// eliminating the variables on which their polarities differ. When the two
// products share no variable the result is One.
func commonFactor(p, q Product) Product {
	d := p.negation ^ q.negation
	variables := p.variables | q.variables | d
	negation := p.negation | variables
	if variables == fullmask {
		negation = emptymask // no common factor, return One
	}
	return Product{variables: variables, negation: negation}
}

// removeVariable returns p with the variables occurring in v forced out.
func removeVariable(p, v Product) Product {
	return Product{
		variables: p.variables | ^v.variables,
		negation:  p.negation | ^v.variables,
	}
}

// inverse expands the complement of a non-literal product into a sum with one
// single-variable term per variable of p. Terms are generated by increasing
// variable id, which happens to produce them already in canonical order, so
// no extra sorting or simplification is needed.
func inverse(p Product) Expression {
	if p.IsLiteral() {
		panic("boolexpr: inverse of a literal product")
	}
	terms := make([]Product, 0, p.NumVariables())
	for id := uint32(0); id < MaxVariables; id++ {
		bit := mask(1) << id
		if p.variables&bit == 0 {
			terms = append(terms, Product{variables: ^bit, negation: ^(p.negation & bit)})
		}
	}
	return Expression{terms: terms}
}
