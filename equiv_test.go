// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package boolexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquivalent(t *testing.T) {
	_, a, b, cc, _ := declare4(t)
	na := a.Negated()
	nb := b.Negated()

	exprs := []Expression{
		One(),
		Zero(),
		NewExpression(a),
		Sum(a, nb),
		Sum(a.Times(b), na.Times(cc)),
	}
	for i, e := range exprs {
		// reflexive
		assert.True(t, e.Equivalent(e), "e <=> e for %s", e)
		for j, f := range exprs {
			// symmetric
			assert.Equal(t, e.Equivalent(f), f.Equivalent(e))
			if i != j {
				assert.False(t, e.Equivalent(f), "%s <=> %s", e, f)
			}
		}
	}

	// structurally different but semantically equal
	assert.True(t, Sum(a, na).Equivalent(One()))
	assert.True(t, NewExpression(a.Times(na)).Equivalent(Zero()))
}

func TestEquivalentMixedSupports(t *testing.T) {
	_, a, b, cc, d := declare4(t)

	// supports do not have to match
	assert.False(t, NewExpression(a).Equivalent(NewExpression(b)))
	assert.False(t, Sum(a, b).Equivalent(Sum(a, b, cc.Times(d))))
	assert.True(t, Sum(a, b, a.Times(cc)).Equivalent(Sum(a, b)))
}
