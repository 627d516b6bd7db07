package crypto

import (
	"fmt"
	"io"
	"math/big"
)

// GeneratePads produces n independent uniformly random unsigned integers of
// the given bit width, reading entropy from src. The returned slice is the
// protocol's pad sequence; callers must treat it as immutable after
// generation.
func GeneratePads(src io.Reader, n, bits int) ([]*big.Int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("pad count must be positive, got %d", n)
	}
	if bits <= 0 {
		return nil, fmt.Errorf("pad width must be positive, got %d", bits)
	}

	bytesPerPad := (bits + 7) / 8
	mask := padMask(bits)
	buf := make([]byte, bytesPerPad)

	pads := make([]*big.Int, n)
	for i := range pads {
		if _, err := io.ReadFull(src, buf); err != nil {
			return nil, fmt.Errorf("read pad entropy: %w", err)
		}
		pad := new(big.Int).SetBytes(buf)
		pad.And(pad, mask)
		pads[i] = pad
	}
	return pads, nil
}

// padMask returns 2^bits - 1, the largest value representable in bits.
func padMask(bits int) *big.Int {
	mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	return mask.Sub(mask, big.NewInt(1))
}

// FitsWidth reports whether v is a non-negative integer representable in
// the given bit width.
func FitsWidth(v *big.Int, bits int) bool {
	return v != nil && v.Sign() >= 0 && v.BitLen() <= bits
}
