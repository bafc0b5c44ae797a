// Package sha2 provides the reference trie hasher, built on SHA-256.
package sha2

import (
	"crypto/sha256"

	"github.com/coniks-sys/merkletrie/crypto"
	"github.com/coniks-sys/merkletrie/crypto/hasher"
	"github.com/coniks-sys/merkletrie/utils"
)

func init() {
	hasher.RegisterHasher(SHA256Hasher, New)
}

// SHA256Hasher is the identity of the reference hashing algorithm.
const SHA256Hasher = crypto.HashID

type sha256Hasher struct{}

// New returns an instance of the SHA-256 trie hasher.
func New() hasher.TrieHasher {
	return sha256Hasher{}
}

func (sha256Hasher) ID() string {
	return SHA256Hasher
}

func (sha256Hasher) Size() int {
	return sha256.Size
}

func (sha256Hasher) Digest(ms ...[]byte) crypto.Hash {
	return crypto.Digest(ms...)
}

func (h sha256Hasher) HashChildren(left, right crypto.Hash) crypto.Hash {
	return h.Digest(left[:], right[:])
}

func (h sha256Hasher) HashVersion(counter uint32, key crypto.Hash) crypto.Hash {
	return h.Digest(utils.UInt32ToBytes(counter), key[:])
}
