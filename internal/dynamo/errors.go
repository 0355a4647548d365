package dynamo

import "errors"

// Domain errors. The simulation core itself never fails; these are returned at
// the edges where names and configuration enter the program.
var (
	// ErrUnknownVariant indicates an attractor name or index that does not exist.
	ErrUnknownVariant = errors.New("dynamo: unknown attractor variant")

	// ErrUnknownParam indicates a coefficient name that no attractor defines.
	ErrUnknownParam = errors.New("dynamo: unknown parameter")

	// ErrUnknownBackend indicates a render backend name that is not compiled in.
	ErrUnknownBackend = errors.New("dynamo: unknown render backend")

	// ErrInvalidConfig indicates a configuration value outside its accepted range.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")
)
