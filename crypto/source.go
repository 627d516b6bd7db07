package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"
)

// NewSeededReader returns a deterministic entropy source derived from seed.
// The same seed always yields the same byte stream, which makes pad
// generation reproducible in tests and simulations.
//
// The seed is expanded with HKDF over SHA3-256 into an AES-256 key and CTR
// IV, and the stream is the resulting AES-CTR keystream, so it is
// effectively unbounded.
func NewSeededReader(seed []byte) (io.Reader, error) {
	kdf := hkdf.New(sha3.New256, seed, nil, []byte("otpnet-pad-source-v1"))

	keyAndIV := make([]byte, 32+aes.BlockSize)
	if _, err := io.ReadFull(kdf, keyAndIV); err != nil {
		return nil, fmt.Errorf("derive seed material: %w", err)
	}

	block, err := aes.NewCipher(keyAndIV[:32])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return &seededReader{stream: cipher.NewCTR(block, keyAndIV[32:])}, nil
}

type seededReader struct {
	stream cipher.Stream
}

// Read fills p with the next keystream bytes. It never fails and never
// returns a short read.
func (r *seededReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.stream.XORKeyStream(p, p)
	return len(p), nil
}
