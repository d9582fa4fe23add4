// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package boolexpr

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthProductAssign(t *testing.T) {
	c := NewContext()
	vs := c.Declare("A", "B")

	tp := NewTruthProduct(nil)
	_, pinned := tp.Value(vs[0])
	assert.False(t, pinned)

	tp.Assign(vs[0], true)
	tp.Assign(vs[1], false)
	v, pinned := tp.Value(vs[0])
	assert.True(t, pinned)
	assert.True(t, v)
	v, pinned = tp.Value(vs[1])
	assert.True(t, pinned)
	assert.False(t, v)

	// reassigning overwrites the previous value
	tp.Assign(vs[0], false)
	v, _ = tp.Value(vs[0])
	assert.False(t, v)
}

func TestTruthProductEnumeration(t *testing.T) {
	c := NewContext()
	vs := c.Declare("A", "B", "C")

	support := bitset.New(MaxVariables)
	support.Set(0).Set(1).Set(2)
	tp := NewTruthProduct(support)
	start := tp

	seen := make(map[Product]bool)
	for k := 0; k < 8; k++ {
		for _, v := range vs {
			_, pinned := tp.Value(v)
			require.True(t, pinned)
		}
		assert.False(t, seen[tp.Product], "assignment %s enumerated twice", tp.Product)
		seen[tp.Product] = true
		tp.Next()
	}
	assert.Len(t, seen, 8)

	// after 2^k steps the counter wraps back to the all-true assignment
	assert.Equal(t, start, tp)

	// unconstrained variables are never touched by Next
	partial := NewTruthProduct(nil)
	partial.Assign(vs[1], true)
	partial.Next()
	partial.Next()
	_, pinned := partial.Value(vs[0])
	assert.False(t, pinned)
	_, pinned = partial.Value(vs[2])
	assert.False(t, pinned)
}

func TestTruthProductEmptySupport(t *testing.T) {
	tp := NewTruthProduct(nil)
	assert.True(t, tp.IsOne())
	tp.Next()
	assert.True(t, tp.IsOne(), "the empty assignment is its own successor")
}
