package bplustree

import "cmp"

// Comparator orders keys of type K. Compare returns a negative number when
// a sorts before b, zero when they are equivalent, and a positive number
// when a sorts after b. A Tree never compares keys directly; every
// ordering decision in the search, insertion and deletion engines goes
// through a Comparator instance, so callers can plug in any ordering —
// including one under which K has no natural <.
type Comparator[K any] interface {
	Compare(a, b K) int
}

// ComparatorFunc adapts a plain function to the Comparator interface.
type ComparatorFunc[K any] func(a, b K) int

func (f ComparatorFunc[K]) Compare(a, b K) int { return f(a, b) }

type naturalComparator[K cmp.Ordered] struct{}

func (naturalComparator[K]) Compare(a, b K) int { return cmp.Compare(a, b) }
