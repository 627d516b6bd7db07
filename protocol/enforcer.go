package protocol

import "fmt"

// CheckGap enforces the secrecy gap invariant for sender against every
// other party: lastUsed[sender] - lastUsed[p] must not exceed maxGap.
//
// It must run after the sender's lastUsed is updated and before the
// ciphertext is released to the caller, so a violation discards the
// ciphertext while the pad stays consumed. Parties that have not sent yet
// count with their sentinel value of -1, exactly as in the reference rule.
func (t *AllocationTable) CheckGap(sender Party, maxGap int) error {
	for _, p := range Parties() {
		if p == sender {
			continue
		}
		if gap := t.lastUsed[sender] - t.lastUsed[p]; gap > maxGap {
			return fmt.Errorf("%w: %s at index %d is %d ahead of %s (max %d)",
				ErrSecrecyViolation, sender, t.lastUsed[sender], gap, p, maxGap)
		}
	}
	return nil
}
