package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/coniks-sys/merkletrie/utils"
)

const (
	// HashSizeByte is the size of the hash output in bytes.
	HashSizeByte = 32
	// HashSizeBit is the number of addressable bits of a Hash.
	HashSizeBit = HashSizeByte * 8
	// HashID identifies the hash used by Digest as a string.
	HashID = "SHA-256"
)

// Hash is a fixed-length digest. It is comparable with ==
// and is used both as a path selector (via Bit) and as
// a content identifier.
type Hash [HashSizeByte]byte

// Digest hashes all passed byte slices.
// The passed slices won't be mutated.
func Digest(ms ...[]byte) Hash {
	h := sha256.New()
	for _, m := range ms {
		h.Write(m)
	}
	var ret Hash
	h.Sum(ret[:0])
	return ret
}

// FromBytes copies b into a Hash. It returns false if b
// does not have exactly HashSizeByte bytes.
func FromBytes(b []byte) (Hash, bool) {
	var ret Hash
	if len(b) != HashSizeByte {
		return ret, false
	}
	copy(ret[:], b)
	return ret, true
}

// Bit returns the bit of h at offset index, counting from the
// most significant bit of the first byte. It panics if index
// is not smaller than HashSizeBit.
func (h Hash) Bit(index uint32) uint8 {
	if utils.GetNthBit(h[:], index) {
		return 1
	}
	return 0
}

// Bytes returns a copy of the raw bytes of h.
func (h Hash) Bytes() []byte {
	return append([]byte(nil), h[:]...)
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}
