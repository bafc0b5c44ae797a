package hasher

import (
	"testing"
)

var fakeHasherID = "fakeHasher"

func fakeHasher() TrieHasher {
	return nil
}

func TestHasherIsRegistered(t *testing.T) {
	if _, ok := hashers[fakeHasherID]; !ok {
		RegisterHasher(fakeHasherID, fakeHasher)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Expected RegisterHasher to panic.")
		}
	}()
	RegisterHasher(fakeHasherID, fakeHasher)
}

func TestGetHasher(t *testing.T) {
	if _, ok := hashers[fakeHasherID]; !ok {
		RegisterHasher(fakeHasherID, fakeHasher)
	}

	_, err := Hasher(fakeHasherID)
	if err != nil {
		t.Error("Expect a hasher.")
	}
	if _, err := Hasher("unknown"); err == nil {
		t.Error("Expect an error for an unknown hasher.")
	}
}

func TestRegisteredIsSorted(t *testing.T) {
	if _, ok := hashers[fakeHasherID]; !ok {
		RegisterHasher(fakeHasherID, fakeHasher)
	}
	ids := Registered()
	found := false
	for i, id := range ids {
		if i > 0 && ids[i-1] > id {
			t.Fatal("IDs are not sorted:", ids)
		}
		found = found || id == fakeHasherID
	}
	if !found {
		t.Error("Registered hasher is missing:", ids)
	}
}
