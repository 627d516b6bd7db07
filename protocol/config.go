package protocol

import "fmt"

// Config provides the construction parameters for a protocol instance.
// All three fields are required; there are no defaults.
type Config struct {
	// PadCount is the total number of pads generated at construction.
	PadCount int `json:"pad_count" yaml:"pad_count"`

	// PadBits is the bit width of every pad, message, and ciphertext.
	PadBits int `json:"pad_bits" yaml:"pad_bits"`

	// MaxGap is the largest tolerated difference between the
	// most-recently-used pad indices of any two parties. Exceeding it on
	// an allocation fails that send with ErrSecrecyViolation.
	MaxGap int `json:"max_gap" yaml:"max_gap"`
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if c.PadCount <= 0 {
		return fmt.Errorf("pad_count must be positive, got %d", c.PadCount)
	}
	if c.PadBits <= 0 {
		return fmt.Errorf("pad_bits must be positive, got %d", c.PadBits)
	}
	if c.MaxGap < 0 {
		return fmt.Errorf("max_gap must be non-negative, got %d", c.MaxGap)
	}
	return nil
}
