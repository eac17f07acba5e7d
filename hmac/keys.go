package hmac

// RFC 2104 pad fill bytes.
const (
	innerPadFill = 0x36
	outerPadFill = 0x5c
)

// xorPad fills dst with the byte-wise XOR of key and the fill byte.
// Both slices must be block-size long; a single unconditional pass
// keeps the derivation free of data-dependent branches.
func xorPad(dst, key []byte, fill byte) {
	for i := range dst {
		dst[i] = key[i] ^ fill
	}
}
