package bplustree

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an iterator is dereferenced, advanced, or
// retreated past the bounds of the leaf chain it walks.
var ErrOutOfRange = errors.New("bplustree: out of range")

// ErrConfigError is returned by New and NewWithComparator when the
// requested branching factor cannot support a valid tree.
var ErrConfigError = errors.New("bplustree: invalid configuration")

// ErrInternalInvariant is returned when an operation detects that a
// structural invariant of the tree no longer holds. Seeing this error
// means the tree, not the caller, is at fault.
var ErrInternalInvariant = errors.New("bplustree: internal invariant violated")

func outOfRangeErr(op string) error {
	return fmt.Errorf("%s: %w", op, ErrOutOfRange)
}

func configErr(reason string) error {
	return fmt.Errorf("bplustree: %s: %w", reason, ErrConfigError)
}

func internalErr(reason string) error {
	return fmt.Errorf("bplustree: %s: %w", reason, ErrInternalInvariant)
}
