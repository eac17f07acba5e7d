// Package secmem provides byte buffers for secret material that are
// guaranteed to be zeroed before they are released.
//
// # Scoped Secrets
//
// WithSecret hands a scratch buffer to a callback and wipes it when the
// callback returns, whether it succeeds, fails, or panics. There is no
// separate cleanup path for the caller to forget:
//
//	err := secmem.WithSecret(64, func(pad []byte) error {
//	    // use pad for key material
//	    return nil
//	})
//
// # Buffers
//
// Buffer holds a fixed amount of secret data for as long as the owner
// needs it and wipes it on Release:
//
//	buf := secmem.NewBuffer(32)
//	defer buf.Release()
//	copy(buf.Bytes(), secret)
//
// Wiping overwrites every byte with zero. It does not defend against
// the runtime or operating system having copied the memory elsewhere
// (swap, GC moves); it bounds the lifetime of secrets inside this
// process's reachable heap.
package secmem
