package crypto

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrWidthMismatch is returned when a message, pad, or ciphertext does not
// fit the protocol's fixed pad width. Widths are a protocol-wide constant;
// a mismatch indicates caller misuse, not a recoverable condition.
var ErrWidthMismatch = errors.New("operand width does not match pad width")

// Encrypt XORs message with pad. Both operands must be non-negative and at
// most bits wide.
func Encrypt(message, pad *big.Int, bits int) (*big.Int, error) {
	if !FitsWidth(message, bits) {
		return nil, fmt.Errorf("message: %w", ErrWidthMismatch)
	}
	if !FitsWidth(pad, bits) {
		return nil, fmt.Errorf("pad: %w", ErrWidthMismatch)
	}
	return new(big.Int).Xor(message, pad), nil
}

// Decrypt XORs ciphertext with pad, recovering the message. XOR is
// self-inverse, so this is the same operation as Encrypt with the
// arguments relabeled.
func Decrypt(ciphertext, pad *big.Int, bits int) (*big.Int, error) {
	if !FitsWidth(ciphertext, bits) {
		return nil, fmt.Errorf("ciphertext: %w", ErrWidthMismatch)
	}
	if !FitsWidth(pad, bits) {
		return nil, fmt.Errorf("pad: %w", ErrWidthMismatch)
	}
	return new(big.Int).Xor(ciphertext, pad), nil
}
