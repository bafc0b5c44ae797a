// Package crypto contains the digest type shared by the whole module, to:
// - hash arbitrary data (`Digest`) using sha256
// - address a digest bit by bit, most significant bit first
// - compare and print digests.
//
// The hash functions used to build tries live in the hasher subpackage.
package crypto
