// Package crypto implements the keying primitives for the OTPNet protocol:
// one-time pad generation and the XOR cipher operations applied to them.
//
// Pads are arbitrary-precision unsigned integers of a fixed protocol-wide
// bit width. The width is a construction-time parameter and may be large
// (the reference deployment uses 4028-bit pads), so pads are represented
// as *big.Int rather than machine words.
//
// Pad generation reads entropy from an injectable io.Reader. Production
// callers pass crypto/rand.Reader; tests pass a deterministic seeded
// source created with NewSeededReader, which expands a seed into an
// unbounded keystream using HKDF-SHA3 key derivation and AES-CTR.
//
// The cipher operations are stateless: Encrypt and Decrypt are both XOR
// and therefore self-inverse. They validate operand widths against the
// protocol width and fail with ErrWidthMismatch instead of silently
// truncating.
package crypto
