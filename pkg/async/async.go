package async

import (
	"context"
	"time"
)

// Future holds the eventual result of a function started with Go.
type Future[T any] struct {
	value T
	err   error
	done  chan struct{}
}

// Await blocks until the future completes and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitTimeout waits for completion or the given duration, whichever comes
// first. On timeout it returns the zero value and ErrTimeout; the
// underlying goroutine keeps running to completion.
func (f *Future[T]) AwaitTimeout(d time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-time.After(d):
		var zero T
		return zero, ErrTimeout
	}
}

// Go starts fn in its own goroutine and returns a future for its result.
// A context canceled before the work starts resolves the future with the
// context's error without invoking fn.
func Go[In, Out any](ctx context.Context, in In, fn func(context.Context, In) (Out, error)) *Future[Out] {
	f := &Future[Out]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.value, f.err = fn(ctx, in)
	}()

	return f
}

// All waits for every future and returns their results in argument order.
// All futures are always drained; the first error encountered (in order) is
// returned alongside the complete result slice, so one failure does not
// hide sibling results.
func All[T any](futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))

	var firstErr error
	for i, f := range futures {
		value, err := f.Await()
		results[i] = value
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return results, firstErr
}
