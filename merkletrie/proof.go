package merkletrie

import (
	"fmt"

	"github.com/coniks-sys/merkletrie/crypto"
	"github.com/coniks-sys/merkletrie/crypto/hasher"
)

// StepKind tags a ProofStep.
type StepKind uint8

const (
	// StepNone ends a proof that reached an empty slot.
	StepNone StepKind = iota
	// StepLeft carries a sibling hash that goes on the left of the
	// running hash: H(sibling || running).
	StepLeft
	// StepRight carries a sibling hash that goes on the right of the
	// running hash: H(running || sibling).
	StepRight
	// StepLeaf ends a proof that reached a leaf.
	StepLeaf
)

func (k StepKind) String() string {
	switch k {
	case StepNone:
		return "none"
	case StepLeft:
		return "left"
	case StepRight:
		return "right"
	case StepLeaf:
		return "leaf"
	}
	return fmt.Sprintf("StepKind(%d)", uint8(k))
}

// ProofStep is one level of a proof. Hash is the sibling hash for
// left and right steps and the key hash for a leaf step. Counter is
// only set for leaf steps.
type ProofStep struct {
	Kind    StepKind
	Hash    crypto.Hash
	Counter uint32
}

// LeftStep returns a step whose sibling goes on the left.
func LeftStep(sibling crypto.Hash) ProofStep {
	return ProofStep{Kind: StepLeft, Hash: sibling}
}

// RightStep returns a step whose sibling goes on the right.
func RightStep(sibling crypto.Hash) ProofStep {
	return ProofStep{Kind: StepRight, Hash: sibling}
}

// LeafStep returns the terminal step of a walk that reached a leaf.
func LeafStep(key crypto.Hash, counter uint32) ProofStep {
	return ProofStep{Kind: StepLeaf, Hash: key, Counter: counter}
}

// NoneStep returns the terminal step of a walk that reached an empty slot.
func NoneStep() ProofStep {
	return ProofStep{Kind: StepNone}
}

func (s ProofStep) String() string {
	switch s.Kind {
	case StepLeaf:
		return fmt.Sprintf("leaf(%v, %d)", s.Hash, s.Counter)
	case StepNone:
		return "none"
	}
	return fmt.Sprintf("%v(%v)", s.Kind, s.Hash)
}

// ProofType tells whether a proof shows that a key is in the tree or not.
type ProofType int

const (
	undeterminedProof ProofType = iota
	// ProofOfAbsence ends in an empty slot or in the leaf of another key.
	ProofOfAbsence
	// ProofOfInclusion ends in the leaf of the looked up key.
	ProofOfInclusion
)

// Proof is the path of a lookup: one step per visited level, from the
// root down to a leaf or an empty slot. It is enough to recompute the
// root hash without the tree.
type Proof struct {
	LookupHash crypto.Hash
	Steps      []ProofStep
	proofType  ProofType
}

// RootHashFromProof recomputes a root hash from steps, folding them
// from the last one back to the first. It does not check that the
// steps follow the path of any particular key.
func RootHashFromProof(h hasher.TrieHasher, steps []ProofStep) (crypto.Hash, error) {
	if len(steps) == 0 {
		return crypto.Hash{}, ErrMalformedProof
	}

	var hash crypto.Hash
	switch last := steps[len(steps)-1]; last.Kind {
	case StepLeaf:
		hash = h.HashVersion(last.Counter, last.Hash)
	case StepNone:
		hash = DefaultHash
	default:
		return crypto.Hash{}, ErrMalformedProof
	}

	for i := len(steps) - 2; i >= 0; i-- {
		switch s := steps[i]; s.Kind {
		case StepLeft:
			hash = h.HashChildren(s.Hash, hash)
		case StepRight:
			hash = h.HashChildren(hash, s.Hash)
		default:
			return crypto.Hash{}, ErrMalformedProof
		}
	}
	return hash, nil
}

// RootHash recomputes the root hash committed to by p.
func (p *Proof) RootHash(h hasher.TrieHasher) (crypto.Hash, error) {
	return RootHashFromProof(h, p.Steps)
}

// Verify recomputes the root hash from p with h and compares it
// to treeHash.
func (p *Proof) Verify(h hasher.TrieHasher, treeHash crypto.Hash) bool {
	root, err := p.RootHash(h)
	return err == nil && root == treeHash
}

// terminal returns the last step of p.
func (p *Proof) terminal() (ProofStep, bool) {
	if len(p.Steps) == 0 {
		return ProofStep{}, false
	}
	return p.Steps[len(p.Steps)-1], true
}

// ProofType reports whether p is a proof of inclusion of LookupHash.
func (p *Proof) ProofType() ProofType {
	if p.proofType == undeterminedProof {
		if last, ok := p.terminal(); ok && last.Kind == StepLeaf && last.Hash == p.LookupHash {
			p.proofType = ProofOfInclusion
		} else {
			p.proofType = ProofOfAbsence
		}
	}
	return p.proofType
}

// Counter returns the counter of the looked up key if p is a proof
// of inclusion.
func (p *Proof) Counter() (uint32, bool) {
	if p.ProofType() != ProofOfInclusion {
		return 0, false
	}
	last, _ := p.terminal()
	return last.Counter, true
}
