// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package boolexpr

// Equivalent reports whether e and f denote the same Boolean function, by
// brute force: it enumerates all 2^k assignments of the k variables occurring
// in either expression and compares the value of both sides on each of them.
// This is a verification oracle, intentionally exponential; it must not be
// used as part of ordinary computation paths.
func (e Expression) Equivalent(f Expression) bool {
	support := e.Support()
	support.InPlaceUnion(f.Support())
	t := NewTruthProduct(support)
	for n := uint64(0); n < uint64(1)<<support.Count(); n++ {
		if e.satisfiedBy(t) != f.satisfiedBy(t) {
			return false
		}
		t.Next()
	}
	return true
}

// satisfiedBy returns the value of the expression under a truth assignment
// that pins, at least, every variable of the expression: a term is satisfied
// when none of its variables is pinned with the opposite polarity.
func (e Expression) satisfiedBy(t TruthProduct) bool {
	if e.IsLiteral() {
		return e.IsOne()
	}
	// set has a bit for every variable assigned to true
	set := ^t.variables &^ t.negation
	for _, p := range e.terms {
		if ^p.variables&(set^p.negation) == ^p.variables {
			return true
		}
	}
	return false
}
