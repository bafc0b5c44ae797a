// Package hasher defines how the nodes of a trie are hashed and keeps a
// registry of the available implementations. Implementations register
// themselves from an init function; import them for their side effect
// to make them available by name.
package hasher

import (
	"fmt"
	"sort"

	"github.com/coniks-sys/merkletrie/crypto"
)

// TrieHasher provides hash functions for the trie implementation.
type TrieHasher interface {
	// ID returns the name of the cryptographic hash function.
	ID() string
	// Size returns the size of the hash output in bytes.
	Size() int
	// Digest hashes all passed byte slices. The passed slices won't be mutated.
	Digest(ms ...[]byte) crypto.Hash
	treeHasher
}

// treeHasher provides hash functions for tree implementations.
type treeHasher interface {
	// HashChildren computes the hash of an inner node as: H(left || right)
	HashChildren(left, right crypto.Hash) crypto.Hash

	// HashVersion computes the hash of a versioned leaf as:
	// H(counter || key), with the counter encoded in 4 little endian bytes.
	HashVersion(counter uint32, key crypto.Hash) crypto.Hash
}

var hashers = make(map[string]TrieHasher)

// RegisterHasher registers a hasher for use.
func RegisterHasher(h string, f func() TrieHasher) {
	if _, ok := hashers[h]; ok {
		panic(fmt.Sprintf("RegisterHasher(%v) is already registered", h))
	}
	hashers[h] = f()
}

// Hasher returns a TrieHasher.
func Hasher(h string) (TrieHasher, error) {
	if f, ok := hashers[h]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("Hasher(%v) is unknown hasher", h)
}

// Registered returns the sorted IDs of all registered hashers.
func Registered() []string {
	ids := make([]string, 0, len(hashers))
	for id := range hashers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
