// Package common provides shared utilities for OTPNet CLI commands.
package common

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/otpnet/otpnet/crypto"
	"github.com/otpnet/otpnet/protocol"
	"github.com/otpnet/otpnet/services"
)

// SetupLogger creates the structured logger used by all binaries.
// level accepts "debug", "info", "warn", or "error".
func SetupLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})), nil
}

// LoadServiceConfig reads a YAML service configuration file.
func LoadServiceConfig(path string) (*services.ServiceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &services.ServiceConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// NewProtocol constructs a protocol instance from a service configuration,
// choosing between the system entropy source and a seeded deterministic
// source depending on whether pad_seed is set.
func NewProtocol(cfg *services.ServiceConfig, log *slog.Logger) (*protocol.Protocol, error) {
	opts := []protocol.Option{protocol.WithLogger(log)}
	if cfg.PadSeed != "" {
		src, err := crypto.NewSeededReader([]byte(cfg.PadSeed))
		if err != nil {
			return nil, fmt.Errorf("seeded pad source: %w", err)
		}
		opts = append(opts, protocol.WithEntropy(src))
	}
	return protocol.New(cfg.Protocol, opts...)
}
