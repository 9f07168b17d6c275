// Package batch provides a priority-ordered, bounded-concurrency processor
// for validating many independent values.
//
// Tasks enter a single queue ordered by descending Priority (arrival order
// breaks ties) and are drained in batches. At most the configured number of
// batches run at once; adding a task starts draining immediately when a
// concurrency slot is free, and each finishing batch re-drives the queue.
// Every task settles its own future: a failing or panicking rule never
// blocks the other tasks in its batch.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/guardkit/pkg/batch"
//	    "github.com/dmitrymomot/guardkit/pkg/guard"
//	)
//
//	p := batch.New(
//	    batch.WithBatchSize(50),
//	    batch.WithMaxConcurrency(4),
//	)
//
//	future, err := p.AddTask(payload, guard.IsEmail, batch.PriorityHigh)
//	if err != nil {
//	    return err
//	}
//
//	result, err := future.Await()
//	if err != nil {
//	    return err // settlement error: cleared queue or panicked rule
//	}
//	if !result.Valid {
//	    // inspect result.Errors
//	}
//
// # Priorities
//
// Priority ranges 0-100; the PriorityMin through PriorityMax constants mark
// the useful points. Higher priorities are dequeued first, so a high
// priority task added behind queued low priority work still runs before it.
// Out-of-range priorities are rejected with ErrInvalidPriority.
//
// # Cancellation
//
// ClearQueue settles every still-queued task with ErrQueueCleared and
// empties the queue. Cancellation is all or nothing: there is no per-task
// cancellation, and batches already in flight run to completion. Wait blocks
// until dispatched batches finish, which makes shutdown deterministic.
//
// # Error Handling
//
// Validation failure is not a settlement error: the future resolves with a
// Result whose Valid field is false. Settlement errors are reserved for the
// queue being cleared (ErrQueueCleared) and for rules that panic.
package batch
