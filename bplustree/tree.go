// Package bplustree implements a generic, in-memory, single-threaded B+
// tree: a self-balancing ordered associative container built from
// node-splitting insertion, borrow/merge rebalancing on deletion, and a
// doubly-linked chain of leaves that backs amortized O(1) forward and
// reverse iteration.
//
// Unlike a classic B-tree, values live only in the leaves; internal nodes
// hold separator keys used purely to route a search descent. This keeps
// every leaf-to-leaf step along the chain O(1) and makes range scans and
// ordered traversal cheap regardless of tree depth.
//
// Example usage:
//
//	t, err := bplustree.New[int, string](4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t.Insert(10, "ten")
//	t.Insert(5, "five")
//	if v, ok := t.Find(10); ok {
//	    fmt.Println(v)
//	}
//	for c := t.Begin(); c.Valid(); c.Next() {
//	    fmt.Println(c.Key(), c.Value())
//	}
//
// Key types without a natural ordering can supply their own Comparator via
// NewWithComparator.
//
// Persistence, concurrency and duplicate keys are out of scope: a Tree is
// a plain in-memory value meant for single-goroutine use, and Insert
// overwrites rather than accumulating on a repeated key.
package bplustree

import "cmp"

// Tree is a generic ordered map backed by a B+ tree.
type Tree[K any, V any] struct {
	root      *node[K, V]
	size      int
	branching int
	cmp       Comparator[K]
}

// New creates a Tree over a naturally-ordered key type, using the
// standard library's cmp package for comparisons. branching is the
// maximum number of children an internal node may hold (M); it must be
// at least 3 or New returns ErrConfigError, matching the hard failure the
// reference B+ tree implementation this package is modeled on raises for
// a degenerate branching factor.
func New[K cmp.Ordered, V any](branching int) (*Tree[K, V], error) {
	return NewWithComparator[K, V](branching, naturalComparator[K]{})
}

// NewWithComparator creates a Tree using an explicit Comparator, for key
// types that have no natural ordering or need a non-default one.
func NewWithComparator[K any, V any](branching int, cmp Comparator[K]) (*Tree[K, V], error) {
	if branching < 3 {
		return nil, configErr("branching factor must be >= 3")
	}
	if cmp == nil {
		return nil, configErr("comparator must not be nil")
	}
	return &Tree[K, V]{branching: branching, cmp: cmp}, nil
}

func (t *Tree[K, V]) maxKeys() int { return t.branching - 1 }

func (t *Tree[K, V]) minKeys() int {
	m := (t.branching - 1) / 2
	if m < 1 {
		m = 1
	}
	return m
}

// Size returns the number of key/value pairs stored in the tree.
func (t *Tree[K, V]) Size() int { return t.size }

// Empty reports whether the tree holds no entries.
func (t *Tree[K, V]) Empty() bool { return t.size == 0 }

// Clear removes every entry, resetting the tree to its newly-constructed
// state.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.size = 0
}
