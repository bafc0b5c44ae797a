package bench

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"text/tabwriter"
	"time"

	"github.com/coniks-sys/merkletrie/application"
	"github.com/coniks-sys/merkletrie/crypto"
	"github.com/coniks-sys/merkletrie/crypto/hasher"
	_ "github.com/coniks-sys/merkletrie/crypto/hasher/sha2"
	_ "github.com/coniks-sys/merkletrie/crypto/hasher/shake"
	"github.com/coniks-sys/merkletrie/hashable"
	"github.com/coniks-sys/merkletrie/merkletrie"
)

// ErrProofRejected indicates that a freshly built proof did not
// fold to the root hash of the tree it was built from.
var ErrProofRejected = errors.New("[bench] Proof rejected by its own tree")

// A Report summarizes a benchmark run.
type Report struct {
	Hasher     string
	Inserted   int64
	Distinct   int
	Depth      int
	Queries    int64
	Found      int64
	Missing    int64
	Verified   int64
	RootHash   crypto.Hash
	InsertTime time.Duration
	QueryTime  time.Duration
	// Tree is the trie the run was measured on.
	Tree *merkletrie.Tree
}

// Print writes a human-readable summary of r to w.
func (r *Report) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "hasher\t%s\n", r.Hasher)
	fmt.Fprintf(tw, "inserted\t%d (%d distinct)\n", r.Inserted, r.Distinct)
	fmt.Fprintf(tw, "depth\t%d\n", r.Depth)
	fmt.Fprintf(tw, "insert time\t%s\n", r.InsertTime)
	fmt.Fprintf(tw, "queries\t%d (%d found, %d missing)\n", r.Queries, r.Found, r.Missing)
	fmt.Fprintf(tw, "verified proofs\t%d\n", r.Verified)
	fmt.Fprintf(tw, "query time\t%s\n", r.QueryTime)
	fmt.Fprintf(tw, "root hash\t%s\n", r.RootHash)
	return tw.Flush()
}

func newRand(seed uint64) *rand.Rand {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], seed)
	return rand.New(rand.NewChaCha8(s))
}

// Run builds a trie from conf's insert stream, then looks up every
// key of the query stream. If conf.VerifyProofs is set, each lookup
// goes through a proof which must verify against the tree.
func Run(conf *Config, logger *application.Logger) (*Report, error) {
	if err := conf.validate(); err != nil {
		return nil, err
	}
	h, err := hasher.Hasher(conf.Hasher)
	if err != nil {
		return nil, err
	}
	tree := merkletrie.NewWithHasher(h)
	report := &Report{
		Hasher:   h.ID(),
		Inserted: conf.Keys,
		Queries:  conf.Queries,
		Tree:     tree,
	}

	span := conf.Keys / conf.Compression
	r := newRand(conf.InsertSeed)
	start := time.Now()
	for i := int64(0); i < conf.Keys; i++ {
		v := r.Int64N(2*span) - span
		if err := tree.Insert(hashable.Int(v)); err != nil {
			logger.Error("insert failed", "key", v, "error", err)
			return nil, err
		}
	}
	report.InsertTime = time.Since(start)
	report.Distinct = tree.Len()
	report.Depth = tree.Depth()
	logger.Info("tree built",
		"hasher", report.Hasher,
		"keys", conf.Keys,
		"distinct", report.Distinct,
		"depth", report.Depth,
		"elapsed", report.InsertTime)

	root, _ := tree.RootHash()
	report.RootHash = root

	r = newRand(conf.QuerySeed)
	start = time.Now()
	for i := int64(0); i < conf.Queries; i++ {
		v := r.Int64N(2*conf.Keys) - conf.Keys
		found, err := lookup(tree, hashable.Int(v), conf.VerifyProofs)
		if err != nil {
			logger.Error("lookup failed", "key", v, "error", err)
			return nil, err
		}
		if conf.VerifyProofs {
			report.Verified++
		}
		if found {
			report.Found++
		} else {
			report.Missing++
		}
	}
	report.QueryTime = time.Since(start)
	logger.Info("queries done",
		"queries", conf.Queries,
		"found", report.Found,
		"verified", report.Verified,
		"elapsed", report.QueryTime)
	logger.Debug("root hash", "hash", report.RootHash.String())

	return report, nil
}

func lookup(tree *merkletrie.Tree, key merkletrie.Hashable, verify bool) (bool, error) {
	if !verify {
		_, found, err := tree.Contains(key)
		return found, err
	}
	p, err := tree.Proof(key)
	if err != nil {
		return false, err
	}
	if !tree.Verify(p) {
		return false, ErrProofRejected
	}
	return p.ProofType() == merkletrie.ProofOfInclusion, nil
}
