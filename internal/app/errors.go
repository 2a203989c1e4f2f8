package app

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrSubmitInFlight reports a submit attempted while another one is
	// still running. Re-entrant submits are rejected, never queued.
	ErrSubmitInFlight = errors.New("submit already in flight")
)
