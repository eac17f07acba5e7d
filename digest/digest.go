package digest

import (
	"encoding"
	"errors"
	"fmt"
	"hash"

	"github.com/vitalvas/keymac/secmem"
)

// Primitive describes one resumable hash algorithm. Implementations
// are immutable and safe for concurrent use.
type Primitive interface {
	// Name returns the algorithm identifier.
	Name() string

	// BlockSize returns the algorithm's internal block size in bytes.
	BlockSize() int

	// Size returns the digest length in bytes.
	Size() int

	// ContextSize returns the length in bytes of a serialized Context.
	// The length is the same for every state of the computation.
	ContextSize() int

	// Init returns a freshly initialized Context.
	Init() (Context, error)

	// Restore reconstructs a Context from exactly ContextSize bytes of
	// previously persisted state.
	Restore(state []byte) (Context, error)
}

// Context is one hash computation in progress. Contexts are not safe
// for concurrent use.
type Context interface {
	// Update absorbs p into the computation.
	Update(p []byte) error

	// Finalize returns the digest of everything absorbed so far.
	Finalize() ([]byte, error)

	// Reinit resets the context in place to the freshly initialized
	// state, discarding everything absorbed so far.
	Reinit() error

	// Persist serializes the context into dst, which must be exactly
	// ContextSize bytes long.
	Persist(dst []byte) error
}

// marshalableHash is the capability set a hash must provide to be
// usable as a resumable primitive.
type marshalableHash interface {
	hash.Hash
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

type algorithm struct {
	name        string
	newHash     func() hash.Hash
	blockSize   int
	size        int
	contextSize int
}

// New binds a hash constructor as a resumable Primitive. The
// constructor's hashes must implement encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler with a state-independent encoded length;
// the standard library SHA families and x/crypto's SHA-3 do.
func New(name string, newHash func() hash.Hash) (Primitive, error) {
	if newHash == nil {
		return nil, errors.New("digest: hash constructor must not be nil")
	}

	h, ok := newHash().(marshalableHash)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotResumable, name)
	}

	state, err := h.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotResumable, name, err)
	}

	return &algorithm{
		name:        name,
		newHash:     newHash,
		blockSize:   h.BlockSize(),
		size:        h.Size(),
		contextSize: len(state),
	}, nil
}

func (a *algorithm) Name() string     { return a.name }
func (a *algorithm) BlockSize() int   { return a.blockSize }
func (a *algorithm) Size() int        { return a.size }
func (a *algorithm) ContextSize() int { return a.contextSize }

func (a *algorithm) Init() (Context, error) {
	h, ok := a.newHash().(marshalableHash)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotResumable, a.name)
	}

	return &hashContext{h: h, contextSize: a.contextSize}, nil
}

func (a *algorithm) Restore(state []byte) (Context, error) {
	if len(state) != a.contextSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrStateSize, len(state), a.contextSize)
	}

	ctx, err := a.Init()
	if err != nil {
		return nil, err
	}

	hc := ctx.(*hashContext)
	if err := hc.h.UnmarshalBinary(state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStateCorrupt, err)
	}

	return hc, nil
}

type hashContext struct {
	h           marshalableHash
	contextSize int
}

func (c *hashContext) Update(p []byte) error {
	// hash.Hash documents that Write never fails, but the capability
	// contract here does not rely on that.
	_, err := c.h.Write(p)

	return err
}

func (c *hashContext) Finalize() ([]byte, error) {
	return c.h.Sum(nil), nil
}

func (c *hashContext) Reinit() error {
	c.h.Reset()

	return nil
}

func (c *hashContext) Persist(dst []byte) error {
	if len(dst) != c.contextSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrStateSize, len(dst), c.contextSize)
	}

	state, err := c.h.MarshalBinary()
	if err != nil {
		return fmt.Errorf("digest: persist: %w", err)
	}
	defer secmem.Wipe(state)

	if len(state) != c.contextSize {
		return fmt.Errorf("%w: hash state grew to %d bytes, want %d", ErrStateSize, len(state), c.contextSize)
	}

	copy(dst, state)

	return nil
}
