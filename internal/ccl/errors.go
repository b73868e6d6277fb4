package ccl

import "errors"

// Sentinel errors for two of the three classes in spec §7 (resource errors
// have no sentinel). Callers use errors.Is to distinguish a bad
// configuration from a pipeline bug.
var (
	// ErrInvalidGeometry is returned when Params fails validation: the
	// core is never invoked (spec §6's "Error exit").
	ErrInvalidGeometry = errors.New("ccl: invalid geometry")

	// ErrInvariantViolation marks a bug in C6/C7/C8's bookkeeping: C9
	// found a tile-local root with no assigned global ID. It should be
	// unreachable for correct cross-tile closure output (spec §4.9
	// "Failure semantics").
	ErrInvariantViolation = errors.New("ccl: invariant violation")
)
