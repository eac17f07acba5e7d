package secmem

// Wipe overwrites every byte of b with zero.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Buffer is a fixed-capacity holder for secret bytes. Its contents are
// wiped when Release is called. The zero value is an empty, released
// buffer.
type Buffer struct {
	b []byte
}

// NewBuffer allocates a Buffer holding n zero bytes.
func NewBuffer(n int) *Buffer {
	return &Buffer{b: make([]byte, n)}
}

// Bytes returns the buffer's backing slice. The slice is only valid
// until Release is called.
func (b *Buffer) Bytes() []byte {
	return b.b
}

// Len returns the buffer's length, or zero after Release.
func (b *Buffer) Len() int {
	return len(b.b)
}

// Release wipes the buffer's contents and detaches the backing memory.
// Calling Release more than once is a no-op.
func (b *Buffer) Release() {
	Wipe(b.b)
	b.b = nil
}

// WithSecret runs fn with an n-byte zeroed scratch buffer. The buffer
// is wiped when fn returns, including when fn returns an error or
// panics. fn must not retain the buffer beyond its own scope.
func WithSecret(n int, fn func(b []byte) error) error {
	buf := make([]byte, n)
	defer Wipe(buf)

	return fn(buf)
}
