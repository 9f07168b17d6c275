package perf

import "errors"

var (
	ErrNilGuard      = errors.New("perf: validator requires a guard or a lazy guard factory")
	ErrGuardConflict = errors.New("perf: a guard and a lazy guard factory are mutually exclusive")
)
