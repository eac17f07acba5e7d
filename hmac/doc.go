// Package hmac implements the RFC 2104 keyed-hash message
// authentication code as an incremental, algorithm-parameterized
// engine over resumable digest primitives.
//
// An Engine is bound to one digest algorithm at construction and holds
// no state of its own: a streaming computation lives entirely in a
// serialized context that the caller carries between calls. This lets
// a computation suspend after one call and resume on a later,
// completely independent one.
//
// # Streaming
//
// The key must be exactly BlockSize bytes and is supplied on the first
// Update of a sequence and again on Finalize; it is never retained
// between calls:
//
//	e := hmac.NewSHA256()
//
//	state, err := e.InitContext()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := e.Update(state, key, firstChunk); err != nil {
//	    log.Fatal(err)
//	}
//	if err := e.Update(state, nil, secondChunk); err != nil {
//	    log.Fatal(err)
//	}
//
//	tag := make([]byte, e.HashSize())
//	if err := e.Finalize(state, key, tag); err != nil {
//	    log.Fatal(err)
//	}
//
// # One-Shot
//
// Compute fuses both HMAC passes in a single call without serializing
// the context, which is cheaper for small inputs:
//
//	tag, err := e.Compute(key, message)
//
// Verify recomputes the tag and compares it in constant time.
//
// # Key Handling
//
// The engine performs no key normalization: keys shorter or longer
// than the block size are rejected with ErrKeyLength, never hashed
// down or padded. Inner and outer pad keys are derived into scoped
// buffers that are wiped as soon as they have been absorbed, and any
// failure after key material has been mixed into a context zeroes the
// caller's context bytes before the error is returned. A context that
// produced an error must be discarded.
package hmac
