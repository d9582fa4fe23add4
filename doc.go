// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

/*
Package boolexpr represents Boolean expressions over indeterminate variables
(variables whose truth value is not known yet) as canonical sums of products,
and provides exact algebraic operations over them: conjunction, disjunction,
negation, substitution of a truth assignment, and a brute force equivalence
check. It is meant for programs that need to build, simplify and compare
Boolean conditions symbolically, for instance to derive a simplified guard
condition from a combination of flags.

# Basics

Variables are created in a Context, a registry that associates each variable
with a human readable name and an optional user id. A Product is a
conjunction of variables and negated variables, such as A.B'.C; it is encoded
in two 64-bit masks, which bounds the package to MaxVariables (63) variables
but makes conjunction a constant time operation. An Expression is a
disjunction of products. The two Boolean constants are available both as
products (NewLiteral) and as expressions (Zero, One).

After every operation the terms of an expression are kept in a minimal,
canonical form: redundant terms are removed (A.B.C + A.B = A.B), pairs of
terms that differ in the polarity of a single variable are merged into their
common factor (A.B + A.B' = A), and the sequence is kept sorted by a fixed
total order over products. Equal expressions therefore have equal term
sequences, which makes structural comparison (Equal) meaningful. The
simplification is a best-effort rewriting, not a complete minimizer: some
redundant consensus terms are left in place. The Equivalent method decides
semantic equality by enumerating every assignment of the variables involved;
it is exponential and intended for tests and verification only.

# Ownership

An Expression owns a sequence of terms, and assignment of expressions shares
that sequence, in the spirit of a move: after f = e, the expression e must
not be used anymore. Use Copy when both values are needed. Products and truth
assignments are plain immutable values and can be copied freely.

# Use of build tags

When built with the `debug` tag the package checks the canonical form
invariants after every operation, and the rewriting steps performed by the
simplification pass are logged at Trace level through logrus, which is how
the simplifier is meant to be audited.
*/
package boolexpr
