package hashable

import (
	"crypto/sha256"
	"testing"

	"github.com/coniks-sys/merkletrie/crypto"
)

func TestIntegersHashTheirDecimalForm(t *testing.T) {
	want := crypto.Hash(sha256.Sum256([]byte("-42")))
	if got := Int(-42).Hash(); got != want {
		t.Errorf("Int(-42).Hash() = %v, want %v", got, want)
	}
	if Uint(42).Hash() != String("42").Hash() {
		t.Error("Uint and String must agree on the decimal form")
	}
	if Int(42).Hash() != Uint(42).Hash() {
		t.Error("Int and Uint must agree on non-negative values")
	}
}

func TestBytesAndString(t *testing.T) {
	if Bytes("key").Hash() != String("key").Hash() {
		t.Error("Bytes and String must hash the same content equally")
	}
	if Bytes(nil).Hash() != crypto.Digest() {
		t.Error("Nil bytes must hash as the empty input")
	}
}

func TestDigestIsIdentity(t *testing.T) {
	h := crypto.Digest([]byte("path"))
	if Digest(h).Hash() != h {
		t.Error("Digest must hash to itself")
	}
}

func TestDistinctKeys(t *testing.T) {
	seen := make(map[crypto.Hash]int64)
	for i := int64(-100); i <= 100; i++ {
		h := Int(i).Hash()
		if j, ok := seen[h]; ok {
			t.Fatalf("Int(%d) and Int(%d) collide", i, j)
		}
		seen[h] = i
	}
}
