// Copyright (c) 2026 Langbind. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/langbind/pkg/sets"
)

/*
TestSet_Algebra exercises the binary set operations.
*/
func TestSet_Algebra(t *testing.T) {
	a := sets.New("x", "y", "z")
	b := sets.New("y", "z", "w")

	tests := []struct {
		name   string
		result sets.Set[string]
		want   []string
	}{
		{"union", a.Union(b), []string{"w", "x", "y", "z"}},
		{"intersection", a.Intersection(b), []string{"y", "z"}},
		{"difference", a.Difference(b), []string{"x"}},
		{"symmetric_difference", a.SymmetricDifference(b), []string{"w", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sets.Sorted(tt.result))
		})
	}

	// Operands must not be mutated by any operation
	assert.Equal(t, []string{"x", "y", "z"}, sets.Sorted(a))
	assert.Equal(t, []string{"w", "y", "z"}, sets.Sorted(b))
}

/*
TestSet_Predicates exercises subset, superset and disjointness tests.
*/
func TestSet_Predicates(t *testing.T) {
	a := sets.New("x", "y")
	b := sets.New("x", "y", "z")

	assert.True(t, a.SubsetOf(b))
	assert.False(t, b.SubsetOf(a))
	assert.True(t, b.SupersetOf(a))
	assert.True(t, a.DisjointWith(sets.New("q")))
	assert.False(t, a.DisjointWith(b))
	assert.True(t, sets.New[string]().SubsetOf(a))
}

/*
TestSet_Mutation checks Add/Delete/Clone independence.
*/
func TestSet_Mutation(t *testing.T) {
	s := sets.New("x")
	c := s.Clone()

	s.Add("y")
	s.Delete("x")
	s.Delete("absent") // no-op

	assert.Equal(t, []string{"y"}, sets.Sorted(s))
	assert.Equal(t, []string{"x"}, sets.Sorted(c))
	assert.True(t, sets.New("y").Equal(s))
	assert.False(t, c.Equal(s))
}
