package merkletrie

import (
	"encoding/binary"
	"math/rand/v2"
	"testing"

	"github.com/coniks-sys/merkletrie/crypto"
	"github.com/coniks-sys/merkletrie/hashable"
	"github.com/coniks-sys/merkletrie/utils"
)

// newRand returns a deterministic ChaCha8 generator.
func newRand(seed uint64) *rand.Rand {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], seed)
	return rand.New(rand.NewChaCha8(s))
}

// randInts returns n integers drawn uniformly from [-maxValue, maxValue].
func randInts(seed uint64, n int, maxValue int64) []int64 {
	r := newRand(seed)
	v := make([]int64, n)
	for i := range v {
		v[i] = r.Int64N(2*maxValue+1) - maxValue
	}
	return v
}

func randBools(seed uint64, n int) []bool {
	r := newRand(seed)
	v := make([]bool, n)
	for i := range v {
		v[i] = r.IntN(2) == 1
	}
	return v
}

// bitsKey returns a key whose digest starts with bits (a string of
// '0' and '1') and continues with zeros.
func bitsKey(bits string) hashable.Digest {
	b := make([]bool, crypto.HashSizeBit)
	for i, c := range bits {
		b[i] = c == '1'
	}
	var d hashable.Digest
	copy(d[:], utils.ToBytes(b))
	return d
}

func insertAll(t *testing.T, tree *Tree, keys ...Hashable) {
	t.Helper()
	for _, k := range keys {
		if err := tree.Insert(k); err != nil {
			t.Fatal(err)
		}
	}
}

// counterOf returns the counter of key, or 0 if it is absent.
func counterOf(t *testing.T, tree *Tree, key Hashable) uint32 {
	t.Helper()
	n, ok, err := tree.Contains(key)
	if err != nil {
		t.Fatal(err)
	}
	if ok != (n > 0) {
		t.Fatalf("Contains(%v) = %d, %v", key, n, ok)
	}
	return n
}

func rootHash(t *testing.T, tree *Tree) crypto.Hash {
	t.Helper()
	h, ok := tree.RootHash()
	if !ok {
		t.Fatal("Expect a root hash")
	}
	return h
}
