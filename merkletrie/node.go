package merkletrie

import (
	"github.com/coniks-sys/merkletrie/crypto"
	"github.com/coniks-sys/merkletrie/crypto/hasher"
)

// entryKind tells what the hash stored in a node means.
// The zero value marks a node whose hash has not been computed yet;
// it only exists while an insertion pushes a leaf down.
type entryKind uint8

const (
	unassigned entryKind = iota
	leafEntry
	innerEntry
)

// version counts how many times a key was inserted and binds
// that count to the key: hash = H(le32(counter) || key).
type version struct {
	counter uint32
	hash    crypto.Hash
}

func newVersion(h hasher.TrieHasher, key crypto.Hash) *version {
	return &version{
		counter: 1,
		hash:    h.HashVersion(1, key),
	}
}

// node is a trie node. It owns its children exclusively.
// A leaf has no children and stores the key hash; an inner node
// has at least one child and stores the aggregate of both slots.
type node struct {
	kind    entryKind
	hash    crypto.Hash
	version *version
	left    *node
	right   *node
}

func newLeaf(h hasher.TrieHasher, key crypto.Hash) *node {
	return &node{
		kind:    leafEntry,
		hash:    key,
		version: newVersion(h, key),
	}
}

// cargo is the payload of a leaf that is being turned into
// an inner node. It keeps the original version.
type cargo struct {
	key     crypto.Hash
	version *version
}

func (c cargo) leaf() *node {
	return &node{
		kind:    leafEntry,
		hash:    c.key,
		version: c.version,
	}
}

func (n *node) isLeaf() bool {
	return n.kind == leafEntry
}

// takeCargo moves the leaf payload out of n and leaves n unassigned.
func (n *node) takeCargo() cargo {
	if !n.isLeaf() || n.version == nil {
		panic(ErrInvalidTree)
	}
	c := cargo{key: n.hash, version: n.version}
	n.kind = unassigned
	n.hash = crypto.Hash{}
	n.version = nil
	return c
}

func (n *node) updateVersion(h hasher.TrieHasher) {
	if n.version == nil {
		panic(ErrInvalidTree)
	}
	n.version.counter++
	n.version.hash = h.HashVersion(n.version.counter, n.hash)
}

// effectiveHash is what n contributes to its parent's aggregate.
func (n *node) effectiveHash() crypto.Hash {
	if n.kind == unassigned {
		panic(ErrInvalidTree)
	}
	if n.version != nil {
		return n.version.hash
	}
	return n.hash
}

func effectiveHashOrDefault(n *node) crypto.Hash {
	if n == nil {
		return DefaultHash
	}
	return n.effectiveHash()
}

// slots returns the child slot selected by bit and the other one.
func (n *node) slots(bit uint8) (primary, alternate **node) {
	if bit == 0 {
		return &n.left, &n.right
	}
	return &n.right, &n.left
}

func (n *node) aggregate(h hasher.TrieHasher) {
	n.hash = h.HashChildren(
		effectiveHashOrDefault(n.left),
		effectiveHashOrDefault(n.right))
	n.kind = innerEntry
}

// insert adds key below n, which sits at the given level, and
// recomputes the aggregate of every node it passes on the way back.
func (n *node) insert(h hasher.TrieHasher, key crypto.Hash, level uint32) error {
	// a leaf has no children: its slot for key is always empty
	if n.isLeaf() {
		if n.hash == key {
			n.updateVersion(h)
		} else {
			n.displace(h, key, level, n.takeCargo())
		}
		return nil
	}

	if level >= crypto.HashSizeBit {
		return ErrDigestExhausted
	}
	primary, _ := n.slots(key.Bit(level))
	if *primary != nil {
		if err := (*primary).insert(h, key, level+1); err != nil {
			return err
		}
	} else {
		*primary = newLeaf(h, key)
	}
	n.aggregate(h)
	return nil
}

// displace places a new leaf for key and the cargo of the leaf that
// used to be n below n. While both hashes agree on the bit of the
// current level, a fresh node is chained into the primary slot.
func (n *node) displace(h hasher.TrieHasher, key crypto.Hash, level uint32, c cargo) {
	// distinct hashes always diverge before running out of bits
	if level >= crypto.HashSizeBit {
		panic(ErrInvalidTree)
	}
	primary, alternate := n.slots(key.Bit(level))
	if c.key.Bit(level) != key.Bit(level) {
		*primary = newLeaf(h, key)
		*alternate = c.leaf()
	} else {
		next := new(node)
		next.displace(h, key, level+1, c)
		*primary = next
	}
	n.aggregate(h)
}

// lookup walks the path of key starting at n. It returns the counter
// of key if the walk ends in its leaf. If steps is not nil, one proof
// step per visited level is appended to it.
func (n *node) lookup(key crypto.Hash, level uint32, steps *[]ProofStep) (uint32, bool, error) {
	switch n.kind {
	case leafEntry:
		if n.version == nil {
			panic(ErrInvalidTree)
		}
		record(steps, LeafStep(n.hash, n.version.counter))
		if n.hash == key {
			return n.version.counter, true, nil
		}
		return 0, false, nil
	case innerEntry:
	default:
		panic(ErrInvalidTree)
	}

	if level >= crypto.HashSizeBit {
		return 0, false, ErrDigestExhausted
	}
	bit := key.Bit(level)
	primary, alternate := n.slots(bit)
	sibling := effectiveHashOrDefault(*alternate)
	// the tag says on which side of H(. || .) the sibling goes
	if bit == 1 {
		record(steps, LeftStep(sibling))
	} else {
		record(steps, RightStep(sibling))
	}

	if *primary == nil {
		record(steps, NoneStep())
		return 0, false, nil
	}
	return (*primary).lookup(key, level+1, steps)
}

func record(steps *[]ProofStep, s ProofStep) {
	if steps != nil {
		*steps = append(*steps, s)
	}
}

func (n *node) clone() *node {
	if n == nil {
		return nil
	}
	c := &node{
		kind:  n.kind,
		hash:  n.hash,
		left:  n.left.clone(),
		right: n.right.clone(),
	}
	if n.version != nil {
		v := *n.version
		c.version = &v
	}
	return c
}

// visitLeaves calls callBack on every leaf below n, left to right.
func (n *node) visitLeaves(callBack func(Leaf)) {
	switch {
	case n == nil:
	case n.isLeaf():
		callBack(Leaf{Key: n.hash, Counter: n.version.counter})
	default:
		n.left.visitLeaves(callBack)
		n.right.visitLeaves(callBack)
	}
}

func (n *node) depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.depth(), n.right.depth())
}

func sameShape(a, b *node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return sameShape(a.left, b.left) && sameShape(a.right, b.right)
}
