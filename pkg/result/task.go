package result

import "errors"

// Task is the deferred counterpart of Result: a computation started by Go
// whose Result becomes available through Await. A Task settles exactly once.
type Task[T any] struct {
	done chan struct{}
	res  Result[T]
}

// Go starts fn in its own goroutine and returns the Task that will carry its
// Result.
func Go[T any](fn func() Result[T]) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		t.res = fn()
		close(t.done)
	}()
	return t
}

// Await blocks until the Task settles and returns its Result. Await may be
// called any number of times; every call yields the same Result.
func (t *Task[T]) Await() Result[T] {
	<-t.done
	return t.res
}

// All waits for every task to settle. If any failed it yields only the first
// failure in input order; otherwise it yields the success values in input
// order.
func All[T any](tasks []*Task[T]) *Task[[]T] {
	return Go(func() Result[[]T] {
		values := make([]T, len(tasks))
		var firstErr error
		for i, task := range tasks {
			r := task.Await()
			if r.IsErr() {
				if firstErr == nil {
					firstErr = r.err
				}
				continue
			}
			values[i] = r.value
		}
		if firstErr != nil {
			return Err[[]T](firstErr)
		}
		return Ok(values)
	})
}

// AllSettled waits for every task to settle regardless of failures. It
// yields the ordered success values only when nothing failed; otherwise it
// yields every failure, joined in input order, and drops the successes. The
// joined error unwraps to the individual failures via errors.Join semantics.
func AllSettled[T any](tasks []*Task[T]) *Task[[]T] {
	return Go(func() Result[[]T] {
		values := make([]T, 0, len(tasks))
		var errs []error
		for _, task := range tasks {
			r := task.Await()
			if r.IsErr() {
				errs = append(errs, r.err)
				continue
			}
			values = append(values, r.value)
		}
		if len(errs) > 0 {
			return Err[[]T](errors.Join(errs...))
		}
		return Ok(values)
	})
}
