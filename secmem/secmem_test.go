package secmem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	Wipe(b)
	assert.Equal(t, make([]byte, 5), b)

	// Wiping empty and nil slices must not panic.
	Wipe(nil)
	Wipe([]byte{})
}

func TestBuffer(t *testing.T) {
	t.Run("holds and releases", func(t *testing.T) {
		buf := NewBuffer(8)
		require.Equal(t, 8, buf.Len())

		backing := buf.Bytes()
		copy(backing, []byte("secretly"))

		buf.Release()
		assert.Equal(t, make([]byte, 8), backing)
		assert.Equal(t, 0, buf.Len())
		assert.Nil(t, buf.Bytes())
	})

	t.Run("double release is a no-op", func(t *testing.T) {
		buf := NewBuffer(4)
		buf.Release()
		assert.NotPanics(t, buf.Release)
	})

	t.Run("zero value is released", func(t *testing.T) {
		var buf Buffer
		assert.Equal(t, 0, buf.Len())
		assert.NotPanics(t, buf.Release)
	})
}

func TestWithSecret(t *testing.T) {
	t.Run("wipes on success", func(t *testing.T) {
		var leaked []byte

		err := WithSecret(16, func(b []byte) error {
			require.Len(t, b, 16)
			copy(b, []byte("0123456789abcdef"))
			leaked = b

			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, make([]byte, 16), leaked)
	})

	t.Run("wipes on error", func(t *testing.T) {
		var leaked []byte
		boom := errors.New("boom")

		err := WithSecret(8, func(b []byte) error {
			copy(b, []byte("deadbeef"))
			leaked = b

			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, make([]byte, 8), leaked)
	})

	t.Run("wipes on panic", func(t *testing.T) {
		var leaked []byte

		assert.Panics(t, func() {
			_ = WithSecret(8, func(b []byte) error {
				copy(b, []byte("deadbeef"))
				leaked = b
				panic("mid-computation failure")
			})
		})
		assert.Equal(t, make([]byte, 8), leaked)
	})

	t.Run("starts zeroed", func(t *testing.T) {
		err := WithSecret(32, func(b []byte) error {
			assert.Equal(t, make([]byte, 32), b)

			return nil
		})
		require.NoError(t, err)
	})
}
