package async

import (
	"context"
	"sync"
	"time"
)

// ExecFuture represents a bare asynchronous completion: a computation that
// finishes with an error or nothing. Handler methods may return one to signal
// work the response must wait for without producing a body.
type ExecFuture struct {
	err  error
	once sync.Once
	done chan struct{}
}

// Await blocks until the computation completes and returns its error.
func (f *ExecFuture) Await() error {
	<-f.done
	return f.err
}

// AwaitWithTimeout blocks until completion or the timeout elapses, returning
// ErrTimeout in the latter case.
func (f *ExecFuture) AwaitWithTimeout(timeout time.Duration) error {
	select {
	case <-f.done:
		return f.err
	case <-time.After(timeout):
		return ErrTimeout
	}
}

// IsComplete reports completion without blocking.
func (f *ExecFuture) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Exec runs fn on its own goroutine and returns an ExecFuture for its
// completion. A context canceled before fn starts resolves the future with
// the context's error without running fn.
func Exec[T any](ctx context.Context, param T, fn func(context.Context, T) error) *ExecFuture {
	f := &ExecFuture{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		err := fn(ctx, param)
		f.once.Do(func() {
			f.err = err
		})
	}()

	return f
}

// ExecAll waits for every future and returns the first error encountered.
func ExecAll(futures ...*ExecFuture) error {
	for _, future := range futures {
		if err := future.Await(); err != nil {
			return err
		}
	}
	return nil
}

// ExecAny waits for the first future to complete and returns its index and
// error. Spawns one goroutine per future; each exits when its future
// finishes.
func ExecAny(futures ...*ExecFuture) (int, error) {
	if len(futures) == 0 {
		return -1, ErrNoFutures
	}

	done := make(chan struct {
		index int
		err   error
	})

	for i, future := range futures {
		go func(index int, f *ExecFuture) {
			err := f.Await()
			select {
			case done <- struct {
				index int
				err   error
			}{index, err}:
			default:
			}
		}(i, future)
	}

	res := <-done
	return res.index, res.err
}
