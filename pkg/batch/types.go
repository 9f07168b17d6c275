package batch

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/guardkit/pkg/async"
	"github.com/dmitrymomot/guardkit/pkg/guard"
)

// Priority represents task priority (0-100, higher is more important)
// Using int8 provides sufficient range while keeping memory footprint minimal
type Priority int8

// Priority constants
const (
	PriorityMin     Priority = 0
	PriorityLow     Priority = 25
	PriorityMedium  Priority = 50
	PriorityHigh    Priority = 75
	PriorityMax     Priority = 100
	PriorityDefault Priority = PriorityMedium
)

// Valid checks if the priority is within valid range
func (p Priority) Valid() bool {
	return p >= PriorityMin && p <= PriorityMax
}

// Task is one queued validation. The processor owns the task from AddTask
// until its future settles; callers interact with it only through the
// returned future.
type Task struct {
	ID         uuid.UUID
	Value      any
	Priority   Priority
	EnqueuedAt time.Time

	rule   guard.Validator[any]
	future *async.Future[guard.Result[any]]
}
