package digest

import "errors"

var (
	// ErrNotResumable is returned when a hash constructor produces
	// hashes that cannot serialize their internal state.
	ErrNotResumable = errors.New("digest: hash does not support state serialization")

	// ErrStateSize is returned when a serialized context does not have
	// exactly the algorithm's declared context size.
	ErrStateSize = errors.New("digest: serialized state has wrong length")

	// ErrStateCorrupt is returned when a serialized context of the
	// right length cannot be decoded by the underlying hash.
	ErrStateCorrupt = errors.New("digest: serialized state is not decodable")
)
