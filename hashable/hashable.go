// Package hashable adapts built-in types to the merkletrie.Hashable
// interface. Integers are hashed through their decimal representation,
// so Int(5), Uint(5) and String("5") all name the same key.
package hashable

import (
	"strconv"

	"github.com/coniks-sys/merkletrie/crypto"
)

// Int is a signed integer key.
type Int int64

// Hash returns the digest of the decimal representation of i.
func (i Int) Hash() crypto.Hash {
	return crypto.Digest([]byte(strconv.FormatInt(int64(i), 10)))
}

// Uint is an unsigned integer key.
type Uint uint64

// Hash returns the digest of the decimal representation of u.
func (u Uint) Hash() crypto.Hash {
	return crypto.Digest([]byte(strconv.FormatUint(uint64(u), 10)))
}

// String is a text key.
type String string

// Hash returns the digest of the UTF-8 bytes of s.
func (s String) Hash() crypto.Hash {
	return crypto.Digest([]byte(s))
}

// Bytes is a raw byte key.
type Bytes []byte

// Hash returns the digest of b.
func (b Bytes) Hash() crypto.Hash {
	return crypto.Digest(b)
}

// Digest is a key that already is a digest; it hashes to itself.
// It lets callers address the trie with precomputed paths.
type Digest crypto.Hash

// Hash returns d unchanged.
func (d Digest) Hash() crypto.Hash {
	return crypto.Hash(d)
}
