package testutil

import (
	"testing"

	"github.com/otpnet/otpnet/crypto"
	"github.com/otpnet/otpnet/protocol"
)

// ConfigOption customizes a test configuration.
type ConfigOption func(*protocol.Config)

// WithPadCount sets the total pad count.
func WithPadCount(n int) ConfigOption {
	return func(c *protocol.Config) { c.PadCount = n }
}

// WithPadBits sets the pad bit width.
func WithPadBits(bits int) ConfigOption {
	return func(c *protocol.Config) { c.PadBits = bits }
}

// WithMaxGap sets the secrecy gap bound.
func WithMaxGap(d int) ConfigOption {
	return func(c *protocol.Config) { c.MaxGap = d }
}

// NewTestConfig returns a small protocol configuration suitable for unit
// tests, customized by the given options.
func NewTestConfig(options ...ConfigOption) protocol.Config {
	cfg := protocol.Config{
		PadCount: 20,
		PadBits:  16,
		MaxGap:   1000,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// NewTestProtocol constructs a protocol with a pad sequence seeded from
// the test name, so every test gets distinct but reproducible pads.
func NewTestProtocol(t *testing.T, cfg protocol.Config) *protocol.Protocol {
	t.Helper()
	src, err := crypto.NewSeededReader([]byte(t.Name()))
	if err != nil {
		t.Fatalf("seeded reader: %v", err)
	}
	p, err := protocol.New(cfg, protocol.WithEntropy(src))
	if err != nil {
		t.Fatalf("construct protocol: %v", err)
	}
	return p
}
