package hmac

import "errors"

// Construction errors.
var (
	// ErrNoPrimitive is returned when New is given a nil digest
	// primitive.
	ErrNoPrimitive = errors.New("hmac: digest primitive must not be nil")
)

// Contract violation errors. The context is not modified.
var (
	// ErrInvalidState is returned when caller-supplied context bytes
	// are not a serialized digest state of the expected size.
	ErrInvalidState = errors.New("hmac: context bytes are not a valid digest state")

	// ErrKeyLength is returned when a key is not exactly the digest
	// block size. Keys are never normalized.
	ErrKeyLength = errors.New("hmac: key length must equal the digest block size")

	// ErrOutputLength is returned when the output buffer passed to
	// Finalize is not exactly the digest size.
	ErrOutputLength = errors.New("hmac: output length must equal the digest size")
)

// Digest primitive failures. These are fatal to the current operation
// and are never retried internally; after ErrUpdate or ErrFinalize the
// context bytes have been zeroed and the context must be discarded.
var (
	// ErrInit is returned when the primitive fails to initialize a
	// fresh context.
	ErrInit = errors.New("hmac: digest context initialization failed")

	// ErrUpdate is returned when the primitive fails to absorb bytes.
	ErrUpdate = errors.New("hmac: digest update failed")

	// ErrFinalize is returned when the primitive fails during either
	// finalization pass.
	ErrFinalize = errors.New("hmac: digest finalization failed")

	// ErrCompute is returned when any step of the one-shot computation
	// fails.
	ErrCompute = errors.New("hmac: one-shot computation failed")
)

// Verification errors.
var (
	// ErrTagMismatch is returned by Verify when the tag does not match
	// the message.
	ErrTagMismatch = errors.New("hmac: tag verification failed")
)
