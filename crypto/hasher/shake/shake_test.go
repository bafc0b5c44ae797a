package shake

import (
	"testing"

	"github.com/coniks-sys/merkletrie/crypto"
	"github.com/coniks-sys/merkletrie/crypto/hasher"
	"golang.org/x/crypto/sha3"
)

func TestDigestMatchesShake128(t *testing.T) {
	var want crypto.Hash
	sha3.ShakeSum128(want[:], []byte("merkletrie"))
	if got := New().Digest([]byte("merkle"), []byte("trie")); got != want {
		t.Errorf("Digest: %v, want %v", got, want)
	}
}

func TestDiffersFromReference(t *testing.T) {
	in := []byte("key")
	if New().Digest(in) == crypto.Digest(in) {
		t.Error("SHAKE128 and SHA-256 digests must differ")
	}
}

func TestHashVersionLayout(t *testing.T) {
	h := New()
	key := h.Digest([]byte("7"))
	want := h.Digest([]byte{1, 0, 0, 0}, key[:])
	if got := h.HashVersion(1, key); got != want {
		t.Errorf("HashVersion(1, %v): %v, want %v", key, got, want)
	}
}

func TestRegistered(t *testing.T) {
	h, err := hasher.Hasher(SHAKE128Hasher)
	if err != nil {
		t.Fatal(err)
	}
	if h.ID() != SHAKE128Hasher {
		t.Error("Unexpected registered hasher", h.ID())
	}
}
