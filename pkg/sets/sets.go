// Copyright (c) 2026 Langbind. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package sets complements the standard [maps] package by providing a small
generic hash-set type with the algebra the tagged-text collections need.
*/
package sets

import (
	"cmp"
	"slices"
)

// Set is an unordered collection of unique comparable values.
type Set[T comparable] map[T]struct{}

// New builds a set from the given items. Duplicates collapse silently.
func New[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add inserts item into the set.
func (s Set[T]) Add(item T) { s[item] = struct{}{} }

// Delete removes item from the set. Removing an absent item is a no-op.
func (s Set[T]) Delete(item T) { delete(s, item) }

// Has reports whether item is a member of the set.
func (s Set[T]) Has(item T) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of members.
func (s Set[T]) Len() int { return len(s) }

// Clone returns an independent shallow copy of the set.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for item := range s {
		out[item] = struct{}{}
	}
	return out
}

// Union returns a new set holding members of either operand.
func (s Set[T]) Union(o Set[T]) Set[T] {
	out := s.Clone()
	for item := range o {
		out[item] = struct{}{}
	}
	return out
}

// Intersection returns a new set holding members present in both operands.
func (s Set[T]) Intersection(o Set[T]) Set[T] {
	out := make(Set[T])
	for item := range s {
		if o.Has(item) {
			out[item] = struct{}{}
		}
	}
	return out
}

// Difference returns a new set holding members of s absent from o.
func (s Set[T]) Difference(o Set[T]) Set[T] {
	out := make(Set[T])
	for item := range s {
		if !o.Has(item) {
			out[item] = struct{}{}
		}
	}
	return out
}

// SymmetricDifference returns a new set holding members of exactly one operand.
func (s Set[T]) SymmetricDifference(o Set[T]) Set[T] {
	out := s.Difference(o)
	for item := range o.Difference(s) {
		out[item] = struct{}{}
	}
	return out
}

// SubsetOf reports whether every member of s is also a member of o.
func (s Set[T]) SubsetOf(o Set[T]) bool {
	for item := range s {
		if !o.Has(item) {
			return false
		}
	}
	return true
}

// SupersetOf reports whether every member of o is also a member of s.
func (s Set[T]) SupersetOf(o Set[T]) bool { return o.SubsetOf(s) }

// DisjointWith reports whether the operands share no members.
func (s Set[T]) DisjointWith(o Set[T]) bool {
	for item := range s {
		if o.Has(item) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold exactly the same members.
func (s Set[T]) Equal(o Set[T]) bool {
	return len(s) == len(o) && s.SubsetOf(o)
}

// Sorted returns the members of an ordered-element set in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	out := make([]T, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	slices.Sort(out)
	return out
}
