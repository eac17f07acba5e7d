package digest

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/sha3"
)

// Bound algorithms. Each is immutable and shared; use New to bind
// further algorithms.
var (
	// SHA1 is SHA-1 (block 64, digest 20). Provided for protocols that
	// still require it; prefer the SHA-2 or SHA-3 families.
	SHA1 = must("sha-1", sha1.New)

	// SHA256 is SHA-256 (block 64, digest 32).
	SHA256 = must("sha-256", sha256.New)

	// SHA384 is SHA-384 (block 128, digest 48).
	SHA384 = must("sha-384", sha512.New384)

	// SHA512 is SHA-512 (block 128, digest 64).
	SHA512 = must("sha-512", sha512.New)

	// SHA3256 is SHA3-256 (block 136, digest 32).
	SHA3256 = must("sha3-256", sha3.New256)

	// SHA3512 is SHA3-512 (block 72, digest 64).
	SHA3512 = must("sha3-512", sha3.New512)
)

func must(name string, newHash func() hash.Hash) Primitive {
	p, err := New(name, newHash)
	if err != nil {
		panic(err)
	}

	return p
}
