package merkletrie

import (
	"bufio"
	"io"
	"strings"
)

// NodeKind is the shape of a slot of the trie, as shown by Layout.
type NodeKind uint8

const (
	// MissingNode is an empty slot.
	MissingNode NodeKind = iota
	// LeafNode holds a key.
	LeafNode
	// InnerNode holds the aggregate of its children.
	InnerNode
)

func (k NodeKind) String() string {
	switch k {
	case LeafNode:
		return "L"
	case InnerNode:
		return "I"
	}
	return "."
}

func kindOf(n *node) NodeKind {
	switch {
	case n == nil:
		return MissingNode
	case n.isLeaf():
		return LeafNode
	}
	return InnerNode
}

// Depth returns the number of levels of t; 0 for an empty tree.
func (t *Tree) Depth() int {
	return t.root.depth()
}

// Layout returns t breadth-first: row i has 2^i slots, missing nodes
// included, so its size grows exponentially with Depth.
// It is meant for debugging small trees.
func (t *Tree) Layout() [][]NodeKind {
	rows := make([][]NodeKind, t.Depth())
	level := []*node{t.root}
	for i := range rows {
		row := make([]NodeKind, len(level))
		next := make([]*node, 0, 2*len(level))
		for j, n := range level {
			row[j] = kindOf(n)
			if n == nil {
				next = append(next, nil, nil)
			} else {
				next = append(next, n.left, n.right)
			}
		}
		rows[i] = row
		level = next
	}
	return rows
}

// Render writes the layout of t to w, one row per line.
func (t *Tree) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range t.Layout() {
		cells := make([]string, len(row))
		for i, k := range row {
			cells[i] = k.String()
		}
		if _, err := bw.WriteString(strings.Join(cells, " ") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SameStructure reports whether a and b have the same shape,
// regardless of the hashes they hold.
func SameStructure(a, b *Tree) bool {
	return sameShape(a.root, b.root)
}
