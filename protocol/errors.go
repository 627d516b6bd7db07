package protocol

import "errors"

// Protocol failure kinds. All failures surface synchronously to the caller;
// the core never retries.
var (
	// ErrExhaustedAllocation means the sender's allocation queue is empty.
	// The caller may recover by choosing a different sender or stopping.
	ErrExhaustedAllocation = errors.New("no pads remaining in allocation")

	// ErrSecrecyViolation means the gap invariant broke during an
	// allocation. The pad involved is already consumed and will not be
	// returned to the queue, so retrying the same send cannot succeed.
	ErrSecrecyViolation = errors.New("secrecy gap constraint violated")

	// ErrIndexOutOfRange means a pad index falls outside the pad sequence.
	ErrIndexOutOfRange = errors.New("pad index out of range")
)
