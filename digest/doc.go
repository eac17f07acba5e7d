// Package digest exposes block-oriented hash functions as resumable
// primitives: an in-progress computation can be persisted to an opaque
// fixed-size byte state and restored on a later, independent call.
//
// # Primitives
//
// A Primitive describes one algorithm: its block size, digest length,
// and serialized context size, plus Init and Restore to obtain a live
// Context. Contexts absorb data with Update, produce the digest with
// Finalize, and write their state back to caller storage with Persist:
//
//	ctx, err := digest.SHA256.Init()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	state := make([]byte, digest.SHA256.ContextSize())
//	_ = ctx.Update([]byte("hello, "))
//	_ = ctx.Persist(state)
//
//	// ... later, possibly in another call frame entirely:
//	ctx, err = digest.SHA256.Restore(state)
//
// # Supported Algorithms
//
// SHA1, SHA256, SHA384 and SHA512 are bound from the standard library;
// SHA3256 and SHA3512 from golang.org/x/crypto/sha3. New accepts any
// hash.Hash constructor whose hashes also implement
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler; hashes that
// do not (BLAKE2, for example) are rejected with ErrNotResumable since
// their computations cannot be suspended.
//
// The serialized context layout is the hash's own binary marshaling
// format. It is opaque to this package beyond its length, which is
// fixed per algorithm.
package digest
