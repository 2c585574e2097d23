// Package slice holds the client-side state containers of the admin console.
// Every network-backed operation goes through the same three phases: the
// slice's Task turns Pending, the repository call runs without any lock held,
// and the outcome is applied atomically as Succeeded or Failed. Concurrent
// calls are not coalesced; the response that lands last wins.
package slice

import (
	"context"
	"sync"
	"sync/atomic"

	apperrors "adminconsole/pkg/errors"
	"adminconsole/pkg/logger"
)

// Status is the phase of a slice's last async operation.
type Status int

const (
	Idle Status = iota
	Pending
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Task is the outcome of the latest operation of a slice. Loading and the
// error message are derived from it so they can never disagree.
type Task struct {
	Status  Status
	Err     error
	Message string
}

// Loading reports whether an operation is in flight.
func (t Task) Loading() bool {
	return t.Status == Pending
}

// Error returns the user-facing failure message, or "" when the task did not fail.
func (t Task) Error() string {
	if t.Status != Failed {
		return ""
	}
	return t.Message
}

func pendingTask() Task {
	return Task{Status: Pending}
}

func succeededTask() Task {
	return Task{Status: Succeeded}
}

func failedTask(err error, fallback string) Task {
	return Task{Status: Failed, Err: err, Message: failureMessage(err, fallback)}
}

// failureMessage prefers the server's message and falls back when no
// response was received.
func failureMessage(err error, fallback string) string {
	if apperrors.Is(err, apperrors.CodeTransport) {
		return fallback
	}
	return apperrors.Message(err, fallback)
}

// Notifier receives the transient messages shown to the operator.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string) {}
func (nopNotifier) Error(string)   {}

// changeHook lets the Store observe every state change.
type changeHook struct {
	fn atomic.Pointer[func()]
}

func (h *changeHook) set(fn func()) {
	if fn == nil {
		h.fn.Store(nil)
		return
	}
	h.fn.Store(&fn)
}

func (h *changeHook) emit() {
	if fn := h.fn.Load(); fn != nil {
		(*fn)()
	}
}

// base carries the lock, task and notification plumbing shared by the
// collection slices.
type base struct {
	name     string
	mu       sync.RWMutex
	task     Task
	notifier Notifier
	hook     changeHook
}

func (b *base) init(name string, notifier Notifier) {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	b.name = name
	b.notifier = notifier
}

func (b *base) update(fn func()) {
	b.mu.Lock()
	fn()
	b.mu.Unlock()
	b.hook.emit()
}

func (b *base) begin() {
	b.update(func() { b.task = pendingTask() })
}

func (b *base) fail(err error, fallback string) {
	task := failedTask(err, fallback)
	b.update(func() { b.task = task })
	logger.WithFields(map[string]interface{}{
		"slice": b.name,
		"error": err,
	}).Warn(task.Message)
	b.notifier.Error(task.Message)
}

// ClearError drops the last failure and returns the slice to Idle.
func (b *base) ClearError() {
	b.update(func() {
		if b.task.Status == Failed {
			b.task = Task{}
		}
	})
}

// run drives one operation through its lifecycle. apply runs under the
// slice lock and must only patch state.
func run[T any](ctx context.Context, b *base, fallback string, call func(context.Context) (T, error), apply func(T)) (T, error) {
	b.begin()

	v, err := call(ctx)
	if err != nil {
		b.fail(err, fallback)
		var zero T
		return zero, err
	}

	b.update(func() {
		apply(v)
		b.task = succeededTask()
	})
	return v, nil
}
