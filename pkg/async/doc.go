// Package async provides utilities for asynchronous programming with Go generics.
//
// The package implements two future shapes with timeout support and
// coordination utilities, plus the deferred result shapes the dispatch
// compiler recognizes: a handler method may return a *Future[U] or an
// *ExecFuture and the response is produced only after it resolves.
//
// # Core Types
//
// Future[U] represents the result of an asynchronous computation producing a
// value. ExecFuture represents a bare completion carrying only an error.
// Both provide Await, AwaitWithTimeout, and IsComplete.
//
// # Usage
//
// Value-producing operation:
//
//	func fetchUser(ctx context.Context, userID int) (User, error) {
//		return store.Find(ctx, userID)
//	}
//
//	future := async.Async(ctx, 123, fetchUser)
//
//	// Do other work...
//
//	user, err := future.Await()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Bare completion:
//
//	future := async.Exec(ctx, event, publishEvent)
//	if err := future.Await(); err != nil {
//		log.Fatal(err)
//	}
//
// Using timeout:
//
//	user, err := future.AwaitWithTimeout(50 * time.Millisecond)
//	if errors.Is(err, async.ErrTimeout) {
//		log.Println("operation timed out")
//	}
//
// # Coordination Utilities
//
// WaitAll waits for all futures to complete and returns their results:
//
//	futures := []*async.Future[User]{
//		async.Async(ctx, 1, fetchUser),
//		async.Async(ctx, 2, fetchUser),
//	}
//	users, err := async.WaitAll(futures...)
//
// WaitAny returns as soon as any future completes:
//
//	index, user, err := async.WaitAny(futures...)
//
// ExecAll and ExecAny are the ExecFuture counterparts.
//
// # Error Handling
//
// The package defines two errors:
//   - ErrTimeout: returned when AwaitWithTimeout exceeds its duration
//   - ErrNoFutures: returned when WaitAny or ExecAny is called with no futures
//
// # Concurrency
//
// All operations are safe for concurrent use; completion is guarded by
// sync.Once. Every Async and Exec call spawns exactly one goroutine, and a
// context canceled before the function starts resolves the future with the
// context's error without running it.
package async
