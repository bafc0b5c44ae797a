/*
Package merkletrie implements an authenticated binary hash-trie.

Merkle Trie

A key is placed in the trie by the bits of its digest: at level l,
bit l of the digest (most significant bit first) selects the left (0)
or right (1) child. A key occupies the shallowest leaf that keeps it
apart from every other key, so the shape of the trie depends only on
the set of keys, not on the order in which they were inserted.

Every node carries a hash. A leaf contributes H(counter || key), where
counter is the number of times the key was inserted, encoded as four
little endian bytes. An inner node stores H(left || right) over the
contributions of its children; a missing child contributes DefaultHash.
Inserting a key that is already present only bumps its counter, and
there is no deletion.

Proofs

A lookup records, for each inner node on its path, the contribution of
the sibling it did not descend into, tagged with the side that sibling
takes in the hash input. The walk ends in a leaf step (the key found,
or the other key occupying the path) or a none step (an empty slot).
Folding these steps from the end recomputes the root hash, which lets
anyone holding only the root hash check a proof of inclusion or absence.

The node hashes are computed by a hasher.TrieHasher; New uses SHA-256.
*/
package merkletrie
