// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package boolexpr

import (
	log "github.com/sirupsen/logrus"
)

// Terms are removed in place during simplification by zeroing their variables
// mask. The pattern cannot be confused with a live term: every live term of a
// sum under simplification is non-literal, and a non-literal product always
// has at least the reserved bit set in its variables mask (Zero, the only
// product without it, never enters a sum).
func removed(p Product) bool {
	return p.variables == 0
}

// simplify rewrites the sum in place until no pair of live terms matches one
// of the rules below, then compacts the removed terms out. Comparing the
// logical OR of a pair of products can lead to the following simplifications
// (uppercase letters stand for single variables, ' for negation):
//
//	A.B.C.D + A.B.C.D' = A.B.C     both terms replaced by their common factor
//	A      + A'        = 1         special case of the above, the sum is true
//	A.B'.C + B         = A.C + B   the first term drops the opposed variable
//	A.B.C.X.Y.Z + A.B.C = A.B.C    the first (longer) term is absorbed
//
// Because the sequence keeps longer terms first, a term that loses a variable
// is reinserted further right, among terms that still have to be scanned; a
// freshly inserted term is additionally retested against the earlier terms it
// could retroactively reduce. The pass is a best-effort simplifier, not a
// complete minimizer: it never builds consensus terms, and a redundant
// consensus term already present, as in A.B + A'.C + B.C, is not detected
// (Equivalent remains the only complete comparison).
func (e *Expression) simplify() {
	size := len(e.terms)
	if size == 0 {
		panic("boolexpr: simplify of an uninitialized expression")
	}
	if size == 1 {
		return
	}
	if _DEBUG {
		log.Tracef("simplify %s", *e)
	}
	firstremoved := -1
	for i := 0; i < size-1; i++ {
		if removed(e.terms[i]) {
			continue
		}
		for j := i + 1; j < size; j++ {
			if removed(e.terms[j]) {
				continue
			}
			if e.terms[i].singleNegationDifferent(e.terms[j]) {
				// i = A'.B.C.D' and j = A'.B.C'.D': replace both with A'.B.D'.
				factor := commonFactor(e.terms[i], e.terms[j])
				if _DEBUG {
					log.Tracef("merging %s and %s into %s", e.terms[i], e.terms[j], factor)
				}
				e.terms[i].variables = 0
				e.terms[j].variables = 0
				if firstremoved < 0 {
					firstremoved = i
				}
				if factor.IsOne() {
					// A + A' is true
					*e = One()
					return
				}
				size = e.insertAfter(factor, j, i, size, &firstremoved)
				break
			}
			if e.terms[i].differentNegationForSingleVariable(e.terms[j]) {
				// i = A.B'.C and j = B: drop B' from i.
				shorter := removeVariable(e.terms[i], e.terms[j])
				if _DEBUG {
					log.Tracef("reducing %s against %s, keeping %s", e.terms[i], e.terms[j], shorter)
				}
				e.terms[i].variables = 0
				if firstremoved < 0 {
					firstremoved = i
				}
				size = e.insertAfter(shorter, i, i, size, &firstremoved)
				break
			}
			if e.terms[i].includesAllOf(e.terms[j]) {
				// i = A.B'.C'.X.Y.Z and j = A.B'.C' (same polarities): i is
				// absorbed. Since i < j, term i is the one with the most
				// variables.
				if _DEBUG {
					log.Tracef("absorbing %s into %s", e.terms[i], e.terms[j])
				}
				e.terms[i].variables = 0
				if firstremoved < 0 {
					firstremoved = i
				}
				break
			}
		}
	}
	// Compact the removed terms out, preserving the order of the survivors.
	if firstremoved >= 0 {
		sz := firstremoved
		for i := firstremoved + 1; i < size; i++ {
			if !removed(e.terms[i]) {
				e.terms[sz] = e.terms[i]
				sz++
			}
		}
		e.terms = e.terms[:sz]
	}
	if _DEBUG {
		log.Tracef("simplified to %s", *e)
	}
}

// insertAfter inserts term at its ordered position among the live terms at
// indices greater than after, then retests the new term against every live
// term before index retest: an inserted, shorter, term can retroactively
// reduce or absorb terms that the outer scan already passed. Only the last
// two rewrite rules apply during the retest. It returns the new logical size
// of the sequence and keeps firstremoved pointing at the leftmost removed
// slot.
func (e *Expression) insertAfter(term Product, after, retest, size int, firstremoved *int) int {
	for k := after + 1; k <= size; k++ {
		if k < size && removed(e.terms[k]) {
			continue
		}
		if k == size || termLess(e.terms[k], term) {
			e.terms = append(e.terms, Product{})
			copy(e.terms[k+1:], e.terms[k:])
			e.terms[k] = term
			size++
			break
		}
	}
	for i := 0; i < retest; i++ {
		if removed(e.terms[i]) {
			continue
		}
		if e.terms[i].differentNegationForSingleVariable(term) {
			shorter := removeVariable(e.terms[i], term)
			if _DEBUG {
				log.Tracef("reducing %s against inserted %s, keeping %s", e.terms[i], term, shorter)
			}
			e.terms[i].variables = 0
			if i < *firstremoved {
				*firstremoved = i
			}
			size = e.insertAfter(shorter, i, i, size, firstremoved)
			break
		}
		if e.terms[i].includesAllOf(term) {
			if _DEBUG {
				log.Tracef("absorbing %s into inserted %s", e.terms[i], term)
			}
			e.terms[i].variables = 0
			if i < *firstremoved {
				*firstremoved = i
			}
			break
		}
	}
	return size
}
