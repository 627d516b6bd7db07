// Package testutil provides test fixtures for OTPNet components.
//
// It offers option-pattern config generators and deterministic protocol
// construction so tests stay reproducible without repeating setup:
//
//	cfg := testutil.NewTestConfig(testutil.WithPadCount(100))
//	proto := testutil.NewTestProtocol(t, cfg)
package testutil
