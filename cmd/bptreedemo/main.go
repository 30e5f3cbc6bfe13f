// Command bptreedemo exercises the bplustree package end to end:
// insertion, point lookup, bounds, forward and reverse iteration, and
// error handling on a deliberately invalid configuration.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/l00pss/bplustree/bplustree"
)

func main() {
	tree, err := bplustree.New[int, string](4)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== B+ tree demo ===")
	fmt.Println("\nInserting values...")
	for _, kv := range []struct {
		key int
		val string
	}{
		{10, "Value-10"}, {20, "Value-20"}, {5, "Value-5"},
		{15, "Value-15"}, {25, "Value-25"}, {1, "Value-1"},
		{30, "Value-30"}, {12, "Value-12"}, {18, "Value-18"},
	} {
		tree.Insert(kv.key, kv.val)
	}
	fmt.Printf("Total entries: %d\n", tree.Size())

	fmt.Println("\n--- Find ---")
	if v, ok := tree.Find(15); ok {
		fmt.Printf("Key 15: %s\n", v)
	}
	if _, ok := tree.Find(99); !ok {
		fmt.Println("Key 99: not found")
	}

	fmt.Println("\n--- Forward range [10, 25] ---")
	for c := tree.LowerBound(10); c.Valid() && c.Key() <= 25; c.Next() {
		fmt.Printf("  %d -> %s\n", c.Key(), c.Value())
	}

	fmt.Println("\n--- Reverse iteration ---")
	for c := tree.RBegin(); c.Valid(); c.Next() {
		fmt.Printf("  %d -> %s\n", c.Key(), c.Value())
	}

	fmt.Println("\n--- Update via Insert ---")
	tree.Insert(10, "Updated-10")
	if v, ok := tree.Find(10); ok {
		fmt.Printf("Key 10 updated: %s\n", v)
	}

	fmt.Println("\n--- Erase ---")
	tree.Erase(5)
	fmt.Printf("After deleting key 5, total entries: %d\n", tree.Size())

	fmt.Println("\n--- All entries (sorted) ---")
	keys, vals := tree.GetKeys(), tree.GetVals()
	for i := range keys {
		fmt.Printf("  %d -> %s\n", keys[i], vals[i])
	}

	if err := tree.Check(); err != nil {
		log.Fatalf("tree failed its own invariant check: %v", err)
	}

	fmt.Println("\n--- Invalid configuration ---")
	if _, err := bplustree.New[int, string](2); errors.Is(err, bplustree.ErrConfigError) {
		fmt.Printf("branching factor 2 rejected: %v\n", err)
	}
}
