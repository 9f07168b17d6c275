package batch

import "errors"

// Common errors
var (
	// ErrNilGuard is returned when a task is added without a rule
	ErrNilGuard = errors.New("batch: task requires a guard")

	// ErrInvalidPriority is returned when priority is outside valid range
	ErrInvalidPriority = errors.New("batch: priority must be between 0 and 100")

	// ErrQueueCleared settles every task still queued when ClearQueue runs
	ErrQueueCleared = errors.New("batch: queue cleared before the task ran")
)
