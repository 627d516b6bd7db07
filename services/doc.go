// Package services exposes the protocol core over an in-process HTTP API
// for demos and integration tests.
//
// Messages and ciphertexts travel as hex-encoded unsigned integers so the
// fixed pad width can be arbitrarily large. The handler maps the core's
// failure kinds onto HTTP statuses without retrying anything: a rejected
// send has already burned its pad and the response says so.
package services
