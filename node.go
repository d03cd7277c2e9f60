package huffman

import (
	"fmt"
)

// Node is a node of a Huffman tree.  A tree built by BuildTree consists of
// Leaf nodes for the symbols of the alphabet and Branch nodes carrying
// combined weights; a tree rebuilt by TreeFromCode has the same shape but
// every weight fixed at zero.
type Node interface {
	// Weight returns the node's weight: a Leaf's frequency, or the sum of
	// a Branch's children's weights.
	Weight() int
}

// Leaf is a terminal node labelled with a single Symbol.
type Leaf struct {
	Symbol Symbol
	W      int
}

// Weight returns the leaf's frequency.
func (l *Leaf) Weight() int {
	return l.W
}

// String returns the string representation of this Leaf.
func (l *Leaf) String() string {
	return fmt.Sprintf("Leaf(%q, %d)", l.Symbol, l.W)
}

// Branch is an internal node.  A built tree's Branch always has two
// children; during code-driven reconstruction a child may be temporarily
// absent.
type Branch struct {
	W     int
	Left  Node
	Right Node
}

// Weight returns the combined weight of the branch's children.
func (b *Branch) Weight() int {
	return b.W
}

// String returns the string representation of this Branch and its subtree.
func (b *Branch) String() string {
	return fmt.Sprintf("Branch(%d, %v, %v)", b.W, b.Left, b.Right)
}

var (
	_ Node         = (*Leaf)(nil)
	_ Node         = (*Branch)(nil)
	_ fmt.Stringer = (*Leaf)(nil)
	_ fmt.Stringer = (*Branch)(nil)
)
