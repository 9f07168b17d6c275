package batch

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/guardkit/pkg/async"
	"github.com/dmitrymomot/guardkit/pkg/guard"
)

// Processor drains a priority-ordered queue of validation tasks in batches,
// with a bounded number of batches in flight at once. Dispatch is demand
// driven: adding a task starts draining immediately when a concurrency slot
// is free, and each finishing batch re-drives the queue.
type Processor struct {
	mu       sync.Mutex
	queue    []*Task
	inFlight int
	wg       sync.WaitGroup

	batchSize      int
	maxConcurrency int
	logger         *slog.Logger
}

// New creates a batch processor
func New(opts ...Option) *Processor {
	options := &processorOptions{
		batchSize:      DefaultBatchSize,
		maxConcurrency: DefaultMaxConcurrency,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Processor{
		batchSize:      options.batchSize,
		maxConcurrency: options.maxConcurrency,
		logger:         options.logger,
	}
}

// AddTask queues a value for validation against g and returns the future
// that settles with the outcome. Tasks are drained in descending priority
// order; equal priorities keep their arrival order.
func (p *Processor) AddTask(value any, g guard.Guard, priority Priority) (*async.Future[guard.Result[any]], error) {
	if g == nil {
		return nil, ErrNilGuard
	}
	return p.add(value, guard.FromGuard[any](g), priority)
}

// AddDetailedTask queues a value for validation against a detailed rule.
// Scheduling is identical to AddTask; the future carries the rule's full
// result, errors included.
func (p *Processor) AddDetailedTask(value any, d guard.Validator[any], priority Priority) (*async.Future[guard.Result[any]], error) {
	if d == nil {
		return nil, ErrNilGuard
	}
	return p.add(value, d, priority)
}

func (p *Processor) add(value any, rule guard.Validator[any], priority Priority) (*async.Future[guard.Result[any]], error) {
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	task := &Task{
		ID:         uuid.New(),
		Value:      value,
		Priority:   priority,
		EnqueuedAt: time.Now(),
		rule:       rule,
		future:     async.NewFuture[guard.Result[any]](),
	}

	p.mu.Lock()
	p.insert(task)
	p.mu.Unlock()

	p.dispatch()

	return task.future, nil
}

// insert keeps the queue ordered by descending priority. Scanning for the
// first strictly lower priority preserves arrival order among equals.
// Callers must hold p.mu.
func (p *Processor) insert(task *Task) {
	at := len(p.queue)
	for i, queued := range p.queue {
		if queued.Priority < task.Priority {
			at = i
			break
		}
	}
	p.queue = slices.Insert(p.queue, at, task)
}

// dispatch launches batches while queued work and free concurrency slots remain.
func (p *Processor) dispatch() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.queue) > 0 && p.inFlight < p.maxConcurrency {
		n := min(p.batchSize, len(p.queue))
		tasks := make([]*Task, n)
		copy(tasks, p.queue[:n])
		p.queue = slices.Delete(p.queue, 0, n)

		p.inFlight++
		p.wg.Add(1)

		p.logger.Debug("validation batch dispatched",
			slog.Int("tasks", n),
			slog.Int("in_flight", p.inFlight),
			slog.Int("queued", len(p.queue)))

		go p.runBatch(tasks)
	}
}

// runBatch settles every task in the batch, then releases its concurrency
// slot and re-drives the queue. Tasks settle independently; a failing or
// panicking rule never blocks its batch siblings.
func (p *Processor) runBatch(tasks []*Task) {
	defer p.wg.Done()

	start := time.Now()
	for _, task := range tasks {
		result, err := p.runTask(task)
		task.future.Complete(result, err)
	}

	p.logger.Debug("validation batch drained",
		slog.Int("tasks", len(tasks)),
		slog.Duration("duration", time.Since(start)))

	p.mu.Lock()
	p.inFlight--
	p.mu.Unlock()

	p.dispatch()
}

// runTask executes one task's rule with panic recovery, converting a panic
// into a settlement error.
func (p *Processor) runTask(task *Task) (result guard.Result[any], retErr error) {
	defer func() {
		if r := recover(); r != nil {
			retErr = fmt.Errorf("batch: validation panicked: %v", r)
			p.logger.Error("validation rule panicked",
				slog.String("task_id", task.ID.String()),
				slog.Any("panic", r))
		}
	}()

	return task.rule(task.Value), nil
}

// ClearQueue settles every task still waiting in the queue with
// ErrQueueCleared and empties it. Cancellation is all or nothing: batches
// already in flight run to completion.
func (p *Processor) ClearQueue() {
	p.mu.Lock()
	cleared := p.queue
	p.queue = nil
	p.mu.Unlock()

	for _, task := range cleared {
		task.future.Complete(guard.Result[any]{}, ErrQueueCleared)
	}

	if len(cleared) > 0 {
		p.logger.Info("validation queue cleared",
			slog.Int("tasks", len(cleared)))
	}
}

// QueueLen reports how many tasks are queued but not yet dispatched.
func (p *Processor) QueueLen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// InFlight reports how many batches are currently running.
func (p *Processor) InFlight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inFlight
}

// Wait blocks until every batch dispatched so far has finished. Tasks added
// concurrently with Wait may be dispatched after it returns.
func (p *Processor) Wait() {
	p.wg.Wait()
}
