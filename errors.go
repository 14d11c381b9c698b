package main

import "fmt"

// TopologyError reports router counts that cannot form a lab topology.
type TopologyError struct {
	NumP   int
	NumPE  int
	Reason string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("invalid topology (p=%d, pe=%d): %s", e.NumP, e.NumPE, e.Reason)
}

// AddressExhaustionError reports a pool too small for the requested allocation.
type AddressExhaustionError struct {
	Pool      string
	Requested int
	Available int
}

func (e *AddressExhaustionError) Error() string {
	return fmt.Sprintf("pool %s exhausted: %d addresses requested, %d usable",
		e.Pool, e.Requested, e.Available)
}

// MalformedPoolError reports a pool string that is not an IPv4 network.
type MalformedPoolError struct {
	Pool string
	Err  error
}

func (e *MalformedPoolError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed pool %q", e.Pool)
	}
	return fmt.Sprintf("malformed pool %q: %v", e.Pool, e.Err)
}

func (e *MalformedPoolError) Unwrap() error {
	return e.Err
}
