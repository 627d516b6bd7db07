package protocol

import (
	"fmt"
	"io"
	"math/big"

	"github.com/otpnet/otpnet/crypto"
)

// PadStore holds the immutable ordered pad sequence. It is generated once
// at protocol construction and never mutated afterwards, so it may be read
// concurrently without locking.
type PadStore struct {
	pads []*big.Int
	bits int
}

// NewPadStore generates n pads of the given bit width, reading entropy
// from src.
func NewPadStore(src io.Reader, n, bits int) (*PadStore, error) {
	pads, err := crypto.GeneratePads(src, n, bits)
	if err != nil {
		return nil, fmt.Errorf("generate pad sequence: %w", err)
	}
	return &PadStore{pads: pads, bits: bits}, nil
}

// Get returns the pad at index, or ErrIndexOutOfRange if index falls
// outside [0, n).
func (s *PadStore) Get(index int) (*big.Int, error) {
	if index < 0 || index >= len(s.pads) {
		return nil, fmt.Errorf("%w: index %d, pad count %d", ErrIndexOutOfRange, index, len(s.pads))
	}
	return s.pads[index], nil
}

// Len returns the number of pads in the sequence.
func (s *PadStore) Len() int {
	return len(s.pads)
}

// Bits returns the protocol-wide pad width.
func (s *PadStore) Bits() int {
	return s.bits
}
