package analysis

import "errors"

// ErrDiverged is returned when a trajectory leaves the finite range.
var ErrDiverged = errors.New("trajectory diverged")

// checkEvery is how many steps pass between context checks.
const checkEvery = 1024
