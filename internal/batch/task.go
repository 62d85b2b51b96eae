// ============================================================================
// poutil - Path and Number Utilities
// ============================================================================
//
// Package:     batch
// Description: Background tasks and the bounded batch runner
// Author:      Mike Stoffels
// Created:     2026-10-07
// License:     MIT
// ============================================================================

package batch

import (
	"context"
	"fmt"
	"runtime/debug"

	poerr "github.com/msto63/poutil/foundation/core/error"
)

// Task is a function running on its own goroutine
type Task struct {
	done chan struct{}
	err  error
}

// Go starts fn in a new goroutine. A panic in fn is returned by Wait as an
// error.
func Go(fn func() error) *Task {
	t := &Task{done: make(chan struct{})}

	go func() {
		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				t.err = poerr.New(fmt.Sprintf("task panicked: %v", r)).
					WithCode(poerr.CodeInternal).
					WithDetail("stack", string(debug.Stack()))
			}
		}()

		t.err = fn()
	}()

	return t
}

// Done is closed when the task has finished
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task has finished and returns its error
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// WaitContext is like Wait but gives up when ctx is done. The task keeps
// running in that case.
func (t *Task) WaitContext(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
