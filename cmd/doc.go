// Package cmd contains the OTPNet binaries.
//
// otpnet-server runs the demo HTTP API around one protocol instance;
// otpnet-simulate runs the statistical wasted-pad scenario harness.
// Shared helpers (config loading, logger setup) live in cmd/common.
package cmd
