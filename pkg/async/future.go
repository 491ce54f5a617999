package async

import (
	"context"
	"sync"
	"time"
)

// Future represents the result of an asynchronous computation producing a
// value of type U. Handler methods may return one; the response then waits
// for the value and serializes it as if the method had returned it directly.
type Future[U any] struct {
	value U
	err   error
	once  sync.Once
	done  chan struct{}
}

// Await blocks until the computation completes and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout blocks until completion or the timeout elapses. On
// timeout it returns the zero value and ErrTimeout; the computation keeps
// running and a later Await still yields its result.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports completion without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async runs fn on its own goroutine and returns a Future for its result.
// A context canceled before fn starts resolves the future with the context's
// error without running fn.
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		value, err := fn(ctx, param)
		f.once.Do(func() {
			f.value = value
			f.err = err
		})
	}()

	return f
}

// WaitAll waits for every future and returns their values in order. The
// first error encountered is returned with a nil slice.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	for i, future := range futures {
		value, err := future.Await()
		if err != nil {
			return nil, err
		}
		results[i] = value
	}
	return results, nil
}

// WaitAny waits for the first future to complete and returns its index,
// value, and error. Spawns one goroutine per future; each exits when its
// future finishes.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	var zero U
	if len(futures) == 0 {
		return -1, zero, ErrNoFutures
	}

	type completion struct {
		index int
		value U
		err   error
	}
	done := make(chan completion)

	for i, future := range futures {
		go func(index int, f *Future[U]) {
			value, err := f.Await()
			select {
			case done <- completion{index, value, err}:
			default:
			}
		}(i, future)
	}

	res := <-done
	return res.index, res.value, res.err
}
