// Package shake provides a trie hasher built on SHAKE128 with a
// 32-byte output, the hash the CONIKS directory used for its trees.
package shake

import (
	"github.com/coniks-sys/merkletrie/crypto"
	"github.com/coniks-sys/merkletrie/crypto/hasher"
	"github.com/coniks-sys/merkletrie/utils"
	"golang.org/x/crypto/sha3"
)

func init() {
	hasher.RegisterHasher(SHAKE128Hasher, New)
}

// SHAKE128Hasher is the identity of the SHAKE128 hashing algorithm.
const SHAKE128Hasher = "SHAKE128"

type shakeHasher struct{}

// New returns an instance of the SHAKE128 trie hasher.
func New() hasher.TrieHasher {
	return shakeHasher{}
}

func (shakeHasher) ID() string {
	return SHAKE128Hasher
}

func (shakeHasher) Size() int {
	return crypto.HashSizeByte
}

func (shakeHasher) Digest(ms ...[]byte) crypto.Hash {
	h := sha3.NewShake128()
	for _, m := range ms {
		h.Write(m)
	}
	var ret crypto.Hash
	h.Read(ret[:])
	return ret
}

func (h shakeHasher) HashChildren(left, right crypto.Hash) crypto.Hash {
	return h.Digest(left[:], right[:])
}

func (h shakeHasher) HashVersion(counter uint32, key crypto.Hash) crypto.Hash {
	return h.Digest(utils.UInt32ToBytes(counter), key[:])
}
