package services

import (
	"fmt"
	"math/big"

	"github.com/otpnet/otpnet/protocol"
)

// ServiceConfig contains configuration for the protocol HTTP service.
type ServiceConfig struct {
	Protocol    protocol.Config `json:"protocol" yaml:"protocol"`
	HTTPAddr    string          `json:"http_addr" yaml:"http_addr"`
	MetricsAddr string          `json:"metrics_addr" yaml:"metrics_addr"`
	EnablePprof bool            `json:"enable_pprof" yaml:"enable_pprof"`
	EnableCORS  bool            `json:"enable_cors" yaml:"enable_cors"`

	// PadSeed, when set, derives the pad sequence deterministically.
	// Leave empty in production to use the system entropy source.
	PadSeed string `json:"pad_seed,omitempty" yaml:"pad_seed,omitempty"`
}

// SendRequest asks the protocol to allocate the sender's next pad and
// encrypt the message with it.
type SendRequest struct {
	Sender  string `json:"sender"`
	Message string `json:"message"` // hex-encoded unsigned integer
}

// SendResponse carries the ciphertext and the pad index the receiver
// needs to decrypt it.
type SendResponse struct {
	Ciphertext string `json:"ciphertext"` // hex-encoded
	PadIndex   int    `json:"pad_index"`
}

// ReceiveRequest asks the protocol to decrypt a ciphertext with the pad at
// the given index.
type ReceiveRequest struct {
	Ciphertext string `json:"ciphertext"` // hex-encoded
	PadIndex   int    `json:"pad_index"`
}

// ReceiveResponse carries the recovered message.
type ReceiveResponse struct {
	Message string `json:"message"` // hex-encoded
}

// PartyStatus reports one party's consumption progress.
type PartyStatus struct {
	Party     string `json:"party"`
	Remaining int    `json:"remaining"`
	LastUsed  int    `json:"last_used"` // -1 until the first send
}

// StatusResponse reports the protocol parameters and every party's
// progress.
type StatusResponse struct {
	PadCount int           `json:"pad_count"`
	PadBits  int           `json:"pad_bits"`
	MaxGap   int           `json:"max_gap"`
	Parties  []PartyStatus `json:"parties"`
}

// EncodeValue renders an unsigned integer as the wire's hex form.
func EncodeValue(v *big.Int) string {
	return v.Text(16)
}

// DecodeValue parses the wire's hex form into an unsigned integer.
func DecodeValue(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid hex value %q", s)
	}
	return v, nil
}
