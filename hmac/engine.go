package hmac

import (
	"crypto/subtle"
	"fmt"

	"github.com/vitalvas/keymac/digest"
	"github.com/vitalvas/keymac/secmem"
)

// Engine computes HMAC values over one digest algorithm fixed at
// construction. It holds no mutable state and is safe for concurrent
// use; sequencing of a single context's bytes is the caller's
// responsibility.
type Engine struct {
	prim digest.Primitive
}

// New binds an Engine to a resumable digest primitive.
func New(prim digest.Primitive) (*Engine, error) {
	if prim == nil {
		return nil, ErrNoPrimitive
	}

	return &Engine{prim: prim}, nil
}

// NewSHA1 returns an Engine computing HMAC-SHA1.
func NewSHA1() *Engine { return &Engine{prim: digest.SHA1} }

// NewSHA256 returns an Engine computing HMAC-SHA256.
func NewSHA256() *Engine { return &Engine{prim: digest.SHA256} }

// NewSHA384 returns an Engine computing HMAC-SHA384.
func NewSHA384() *Engine { return &Engine{prim: digest.SHA384} }

// NewSHA512 returns an Engine computing HMAC-SHA512.
func NewSHA512() *Engine { return &Engine{prim: digest.SHA512} }

// NewSHA3256 returns an Engine computing HMAC-SHA3-256.
func NewSHA3256() *Engine { return &Engine{prim: digest.SHA3256} }

// NewSHA3512 returns an Engine computing HMAC-SHA3-512.
func NewSHA3512() *Engine { return &Engine{prim: digest.SHA3512} }

// ContextSize returns the length in bytes of a serialized context.
func (e *Engine) ContextSize() int { return e.prim.ContextSize() }

// HashSize returns the tag length in bytes.
func (e *Engine) HashSize() int { return e.prim.Size() }

// BlockSize returns the digest block size in bytes, which is also the
// required key length.
func (e *Engine) BlockSize() int { return e.prim.BlockSize() }

// InitContext returns a freshly initialized serialized context for a
// new streaming computation.
func (e *Engine) InitContext() ([]byte, error) {
	ctx, err := e.prim.Init()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}

	state := make([]byte, e.prim.ContextSize())
	if err := ctx.Persist(state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}

	return state, nil
}

// Update absorbs data into the computation held in state, which must
// be exactly ContextSize bytes of previously returned context. On the
// first call of a sequence, key must be the BlockSize-byte secret and
// the inner pad key is mixed in ahead of data; on every later call key
// must be nil. The mutated context is written back into state before
// returning.
//
// If the digest primitive fails, state is zeroed in place and the
// context must not be used again.
func (e *Engine) Update(state, key, data []byte) error {
	ctx, err := e.restore(state)
	if err != nil {
		return err
	}

	if key != nil {
		if len(key) != e.prim.BlockSize() {
			return fmt.Errorf("%w: got %d bytes, want %d", ErrKeyLength, len(key), e.prim.BlockSize())
		}

		err := secmem.WithSecret(e.prim.BlockSize(), func(pad []byte) error {
			xorPad(pad, key, innerPadFill)

			return ctx.Update(pad)
		})
		if err != nil {
			secmem.Wipe(state)

			return fmt.Errorf("%w: %v", ErrUpdate, err)
		}
	}

	if err := ctx.Update(data); err != nil {
		secmem.Wipe(state)

		return fmt.Errorf("%w: %v", ErrUpdate, err)
	}

	if err := ctx.Persist(state); err != nil {
		secmem.Wipe(state)

		return fmt.Errorf("%w: %v", ErrUpdate, err)
	}

	return nil
}

// Finalize completes the computation held in state and writes the tag
// into out, which must be exactly HashSize bytes. key is the same
// BlockSize-byte secret given to the first Update; it is needed again
// here to derive the outer pad key, since the engine retains nothing
// between calls.
//
// Finalize is terminal: state is zeroed before returning, on success
// and on failure alike.
func (e *Engine) Finalize(state, key, out []byte) error {
	defer secmem.Wipe(state)

	ctx, err := e.restore(state)
	if err != nil {
		return err
	}

	if len(key) != e.prim.BlockSize() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrKeyLength, len(key), e.prim.BlockSize())
	}

	if len(out) != e.prim.Size() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrOutputLength, len(out), e.prim.Size())
	}

	if err := e.foldOuter(ctx, key, out); err != nil {
		return fmt.Errorf("%w: %v", ErrFinalize, err)
	}

	return nil
}

// Compute runs the whole HMAC computation in one call, reusing a
// single in-memory context for both passes and never serializing it.
// It is the cheap path for inputs small enough that carrying a context
// across calls costs more than the hash itself.
func (e *Engine) Compute(key, data []byte) ([]byte, error) {
	if len(key) != e.prim.BlockSize() {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrKeyLength, len(key), e.prim.BlockSize())
	}

	ctx, err := e.prim.Init()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompute, err)
	}

	err = secmem.WithSecret(e.prim.BlockSize(), func(pad []byte) error {
		xorPad(pad, key, innerPadFill)
		if err := ctx.Update(pad); err != nil {
			return err
		}

		return ctx.Update(data)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompute, err)
	}

	out := make([]byte, e.prim.Size())
	if err := e.foldOuter(ctx, key, out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompute, err)
	}

	return out, nil
}

// Verify recomputes the tag for data under key and compares it against
// tag in constant time.
func (e *Engine) Verify(key, data, tag []byte) error {
	want, err := e.Compute(key, data)
	if err != nil {
		return err
	}
	defer secmem.Wipe(want)

	if subtle.ConstantTimeCompare(want, tag) != 1 {
		return ErrTagMismatch
	}

	return nil
}

func (e *Engine) restore(state []byte) (digest.Context, error) {
	ctx, err := e.prim.Restore(state)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	return ctx, nil
}

// foldOuter finalizes the inner pass held in ctx, re-initializes the
// same context in place, and runs the outer pass over the outer pad
// key and the inner digest value, writing the tag into out. The inner
// digest value and the pad never leave scoped secret memory.
func (e *Engine) foldOuter(ctx digest.Context, key, out []byte) error {
	inner, err := ctx.Finalize()
	if err != nil {
		return err
	}
	defer secmem.Wipe(inner)

	if err := ctx.Reinit(); err != nil {
		return err
	}

	err = secmem.WithSecret(e.prim.BlockSize(), func(pad []byte) error {
		xorPad(pad, key, outerPadFill)

		return ctx.Update(pad)
	})
	if err != nil {
		return err
	}

	if err := ctx.Update(inner); err != nil {
		return err
	}

	tag, err := ctx.Finalize()
	if err != nil {
		return err
	}

	copy(out, tag)
	secmem.Wipe(tag)

	return nil
}
