package merkletrie

import (
	"errors"

	"github.com/coniks-sys/merkletrie/crypto"
	"github.com/coniks-sys/merkletrie/crypto/hasher"
	"github.com/coniks-sys/merkletrie/crypto/hasher/sha2"
)

var (
	// ErrInvalidTree indicates a panic due to
	// a malformed operation on the tree.
	ErrInvalidTree = errors.New("[merkletrie] Invalid tree")
	// ErrEmptyTree is returned when a proof is requested
	// from a tree that has no root yet.
	ErrEmptyTree = errors.New("[merkletrie] Empty tree")
	// ErrDigestExhausted is returned when a walk goes deeper
	// than the number of bits of a digest.
	ErrDigestExhausted = errors.New("[merkletrie] Digest exhausted")
	// ErrMalformedProof indicates a proof that does not end in
	// a leaf or none step, or has one of those in the middle.
	ErrMalformedProof = errors.New("[merkletrie] Malformed proof")
)

// DefaultHash stands in for the hash of a missing child,
// both when aggregating and in proofs.
var DefaultHash = func() crypto.Hash {
	var h crypto.Hash
	for i := range h {
		h[i] = 0x01
	}
	return h
}()

// Hashable is anything that can name a key of the trie.
// Hash must be deterministic.
type Hashable interface {
	Hash() crypto.Hash
}

// Leaf describes a key stored in the trie.
type Leaf struct {
	Key     crypto.Hash
	Counter uint32
}

// Tree is the handle of a Merkle trie. The zero value is not usable;
// create trees with New or NewWithHasher.
// A Tree is not safe for concurrent use.
type Tree struct {
	root   *node
	hasher hasher.TrieHasher
}

// New returns an empty tree which hashes its nodes with SHA-256.
func New() *Tree {
	return NewWithHasher(sha2.New())
}

// NewWithHasher returns an empty tree which hashes its nodes with h.
func NewWithHasher(h hasher.TrieHasher) *Tree {
	return &Tree{hasher: h}
}

// Hasher returns the hasher of t. Proofs of t verify with it.
func (t *Tree) Hasher() hasher.TrieHasher {
	return t.hasher
}

// Insert adds key to the tree. Inserting a key that is already
// present increments its counter instead.
func (t *Tree) Insert(key Hashable) error {
	h := key.Hash()
	if t.root == nil {
		t.root = newLeaf(t.hasher, h)
		return nil
	}
	return t.root.insert(t.hasher, h, 0)
}

// Contains returns how many times key was inserted. The boolean is
// false, and the counter zero, if key is not in the tree.
func (t *Tree) Contains(key Hashable) (uint32, bool, error) {
	if t.root == nil {
		return 0, false, nil
	}
	return t.root.lookup(key.Hash(), 0, nil)
}

// Proof returns the proof of inclusion or absence of key.
// It returns ErrEmptyTree if nothing was inserted yet.
func (t *Tree) Proof(key Hashable) (*Proof, error) {
	if t.root == nil {
		return nil, ErrEmptyTree
	}
	p := &Proof{LookupHash: key.Hash()}
	if _, _, err := t.root.lookup(p.LookupHash, 0, &p.Steps); err != nil {
		return nil, err
	}
	return p, nil
}

// RootHash returns the hash summarizing the whole tree.
// The boolean is false if the tree is empty.
func (t *Tree) RootHash() (crypto.Hash, bool) {
	if t.root == nil {
		return crypto.Hash{}, false
	}
	return t.root.effectiveHash(), true
}

// Verify reports whether p folds to the current root hash of t.
func (t *Tree) Verify(p *Proof) bool {
	root, ok := t.RootHash()
	return ok && p.Verify(t.hasher, root)
}

// Len returns the number of distinct keys in t.
func (t *Tree) Len() int {
	n := 0
	t.VisitLeaves(func(Leaf) { n++ })
	return n
}

// VisitLeaves calls callBack on every key of t, in the left to right
// order of the leaves. It doesn't modify t.
func (t *Tree) VisitLeaves(callBack func(Leaf)) {
	t.root.visitLeaves(callBack)
}

// Clone returns a copy of the tree t.
// Any later change to the original tree t does not affect the cloned tree,
// and vice versa.
func (t *Tree) Clone() *Tree {
	return &Tree{
		root:   t.root.clone(),
		hasher: t.hasher,
	}
}

// Equal reports whether t and other have the same shape and
// the same root hash.
func (t *Tree) Equal(other *Tree) bool {
	h1, ok1 := t.RootHash()
	h2, ok2 := other.RootHash()
	return ok1 == ok2 && h1 == h2 && SameStructure(t, other)
}
